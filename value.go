package valijson

import "math"

// Value is the capability contract every backend satisfies for one node of a
// parsed document tree. A Value is a non-owning view: it stays valid only
// while the Document that produced it is alive, and it never mutates the
// underlying tree. Concurrent read-only use of Values over a shared Document
// is safe.
type Value interface {
	// Kind reports the representational kind of the node. Backends with
	// loose typing report KindDouble for every number; use IsInteger to
	// test for whole-valued numbers on those backends.
	Kind() Kind

	IsNull() bool
	IsBool() bool
	IsInteger() bool
	IsDouble() bool
	IsNumber() bool
	IsString() bool
	IsArray() bool
	IsObject() bool

	// Scalar getters report ok=false when the node cannot produce the
	// requested representation. That outcome is expected and local; it is
	// never surfaced as an error. GetInteger unifies the backend's native
	// integer encodings into int64 and fails rather than truncate when the
	// source is fractional or out of range.
	GetBool() (bool, bool)
	GetInteger() (int64, bool)
	GetDouble() (float64, bool)
	GetString() (string, bool)
	// GetNumber returns any numeric node as a float64.
	GetNumber() (float64, bool)

	// GetArray and GetObject return a view when the node is of the
	// matching kind; they are the speculative-descent form. ArraySize and
	// ObjectSize report counts without materializing iteration.
	GetArray() (Array, bool)
	GetObject() (Object, bool)
	ArraySize() (int, bool)
	ObjectSize() (int, bool)

	// StrictTypes reports whether the backend distinguishes integer from
	// floating-point at the representation level. The flag is uniform for
	// every Value a backend produces and governs Equal and Satisfies.
	StrictTypes() bool

	// Freeze deep-copies the referenced subtree into a Frozen value with
	// independent lifetime. It fails with ErrUnsupportedValue when the
	// subtree contains a node outside the backend contract.
	Freeze() (*Frozen, error)
}

// AsArray returns an array view over v, or an ErrTypeMismatch when v is not
// an array. Callers probing speculatively use Value.GetArray instead.
func AsArray(v Value) (Array, error) {
	if a, ok := v.GetArray(); ok {
		return a, nil
	}
	return nil, TypeMismatch(KindArray, v.Kind())
}

// AsObject returns an object view over v, or an ErrTypeMismatch when v is
// not an object.
func AsObject(v Value) (Object, error) {
	if o, ok := v.GetObject(); ok {
		return o, nil
	}
	return nil, TypeMismatch(KindObject, v.Kind())
}

// Satisfies reports whether v can stand for the declared kind k, honoring
// the backend's strictness flag: on a loose backend a whole-valued
// floating-point number satisfies KindInteger, on a strict backend it does
// not.
func Satisfies(v Value, k Kind) bool {
	switch k {
	case KindNull:
		return v.IsNull()
	case KindBool:
		return v.IsBool()
	case KindInteger:
		if v.IsInteger() {
			return true
		}
		if v.StrictTypes() || !v.IsNumber() {
			return false
		}
		d, ok := v.GetNumber()
		return ok && isWhole(d)
	case KindDouble:
		return v.IsDouble() || (!v.StrictTypes() && v.IsNumber())
	case KindString:
		return v.IsString()
	case KindArray:
		return v.IsArray()
	case KindObject:
		return v.IsObject()
	}
	return false
}

func isWhole(d float64) bool {
	return !math.IsInf(d, 0) && !math.IsNaN(d) && d == math.Trunc(d)
}
