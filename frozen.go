package valijson

import "math"

// Frozen is a deep, Document-independent copy of a subtree. It owns its
// storage outright — no references back into the source Document survive —
// so it can outlive the Document it was copied from and move freely across
// goroutine and lifetime boundaries. Its structure is strictly hierarchical,
// so teardown is ordinary garbage collection of a tree.
//
// Frozen implements Value and carries the strictness flag of the backend it
// was frozen from, so it keeps behaving like that backend in later
// comparisons against documents produced elsewhere. Numeric subtypes
// (signed, unsigned, floating) are preserved so strict comparisons stay
// meaningful.
type Frozen struct {
	kind     Kind
	strict   bool
	b        bool
	i        int64
	u        uint64
	unsigned bool
	f        float64
	s        string
	arr      []*Frozen
	obj      []FrozenMember
}

// FrozenMember pairs a member name with its frozen value. Member order is
// the order observed at freeze time.
type FrozenMember struct {
	Name  string
	Value *Frozen
}

// Freezer builds Frozen values tagged with one backend's strictness flag.
// Backends keep a Freezer and call it from their recursive copy.
type Freezer struct {
	Strict bool
}

func (fr Freezer) Null() *Frozen       { return &Frozen{kind: KindNull, strict: fr.Strict} }
func (fr Freezer) Bool(v bool) *Frozen { return &Frozen{kind: KindBool, strict: fr.Strict, b: v} }
func (fr Freezer) Int(v int64) *Frozen { return &Frozen{kind: KindInteger, strict: fr.Strict, i: v} }
func (fr Freezer) String(v string) *Frozen {
	return &Frozen{kind: KindString, strict: fr.Strict, s: v}
}

// Uint preserves the unsigned subtype so values above the int64 range
// survive a freeze without loss.
func (fr Freezer) Uint(v uint64) *Frozen {
	return &Frozen{kind: KindInteger, strict: fr.Strict, u: v, unsigned: true}
}

func (fr Freezer) Double(v float64) *Frozen {
	return &Frozen{kind: KindDouble, strict: fr.Strict, f: v}
}

func (fr Freezer) Array(elems []*Frozen) *Frozen {
	return &Frozen{kind: KindArray, strict: fr.Strict, arr: elems}
}

func (fr Freezer) Object(members []FrozenMember) *Frozen {
	return &Frozen{kind: KindObject, strict: fr.Strict, obj: members}
}

// Clone returns an independent duplicate of f.
func (f *Frozen) Clone() *Frozen {
	c := *f
	if f.arr != nil {
		c.arr = make([]*Frozen, len(f.arr))
		for i, e := range f.arr {
			c.arr[i] = e.Clone()
		}
	}
	if f.obj != nil {
		c.obj = make([]FrozenMember, len(f.obj))
		for i, m := range f.obj {
			c.obj[i] = FrozenMember{Name: m.Name, Value: m.Value.Clone()}
		}
	}
	return &c
}

// EqualTo compares f against a live value using the shared Equal semantics.
func (f *Frozen) EqualTo(other Value, strict bool) bool {
	return Equal(f, other, strict)
}

// Kind reports the frozen node's kind under the source backend's typing
// discipline: a loose-typed Frozen reports every number as KindDouble.
func (f *Frozen) Kind() Kind {
	if !f.strict && f.kind == KindInteger {
		return KindDouble
	}
	return f.kind
}

func (f *Frozen) IsNull() bool   { return f.kind == KindNull }
func (f *Frozen) IsBool() bool   { return f.kind == KindBool }
func (f *Frozen) IsNumber() bool { return f.kind == KindInteger || f.kind == KindDouble }
func (f *Frozen) IsString() bool { return f.kind == KindString }
func (f *Frozen) IsArray() bool  { return f.kind == KindArray }
func (f *Frozen) IsObject() bool { return f.kind == KindObject }

func (f *Frozen) IsInteger() bool {
	if f.kind == KindInteger {
		return true
	}
	return !f.strict && f.kind == KindDouble && isWhole(f.f)
}

func (f *Frozen) IsDouble() bool {
	if f.kind == KindDouble {
		return true
	}
	return !f.strict && f.kind == KindInteger
}

func (f *Frozen) GetBool() (bool, bool) {
	return f.b, f.kind == KindBool
}

func (f *Frozen) GetInteger() (int64, bool) {
	switch f.kind {
	case KindInteger:
		if f.unsigned {
			if f.u > math.MaxInt64 {
				return 0, false
			}
			return int64(f.u), true
		}
		return f.i, true
	case KindDouble:
		if !f.strict && isWhole(f.f) && f.f >= math.MinInt64 && f.f < math.MaxInt64 {
			return int64(f.f), true
		}
	}
	return 0, false
}

func (f *Frozen) GetDouble() (float64, bool) {
	switch f.kind {
	case KindDouble:
		return f.f, true
	case KindInteger:
		if !f.strict {
			n, _ := f.GetNumber()
			return n, true
		}
	}
	return 0, false
}

func (f *Frozen) GetNumber() (float64, bool) {
	switch f.kind {
	case KindDouble:
		return f.f, true
	case KindInteger:
		if f.unsigned {
			return float64(f.u), true
		}
		return float64(f.i), true
	}
	return 0, false
}

func (f *Frozen) GetString() (string, bool) {
	return f.s, f.kind == KindString
}

func (f *Frozen) GetArray() (Array, bool) {
	if f.kind != KindArray {
		return nil, false
	}
	return frozenArrayView{elems: f.arr}, true
}

func (f *Frozen) GetObject() (Object, bool) {
	if f.kind != KindObject {
		return nil, false
	}
	return frozenObjectView{members: f.obj}, true
}

func (f *Frozen) ArraySize() (int, bool) {
	if f.kind != KindArray {
		return 0, false
	}
	return len(f.arr), true
}

func (f *Frozen) ObjectSize() (int, bool) {
	if f.kind != KindObject {
		return 0, false
	}
	return len(f.obj), true
}

func (f *Frozen) StrictTypes() bool { return f.strict }

// Freeze on an already-frozen value is a clone.
func (f *Frozen) Freeze() (*Frozen, error) { return f.Clone(), nil }

type frozenArrayView struct {
	elems []*Frozen
}

func (a frozenArrayView) Len() int       { return len(a.elems) }
func (a frozenArrayView) At(i int) Value { return a.elems[i] }

type frozenObjectView struct {
	members []FrozenMember
}

func (o frozenObjectView) Len() int { return len(o.members) }

func (o frozenObjectView) MemberAt(i int) Member {
	m := o.members[i]
	return Member{Name: m.Name, Value: m.Value}
}

func (o frozenObjectView) FindIndex(name string) (int, bool) {
	for i, m := range o.members {
		if m.Name == name {
			return i, true
		}
	}
	return 0, false
}
