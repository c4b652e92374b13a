package valijson

// Array is a non-owning view over a value already known to be an array. A
// view holds a single reference to the backend's native container, so copying
// one is O(1). Children materialize lazily through At.
type Array interface {
	Len() int
	// At returns a view of the i-th element. It panics when i is out of
	// range, mirroring slice indexing.
	At(i int) Value
}

// Object is a non-owning view over a value already known to be an object.
// Member order is the backend's insertion order when it preserves one,
// otherwise unspecified but stable for the Document's lifetime; callers must
// not assume more.
type Object interface {
	Len() int
	// MemberAt returns the i-th member. It panics when i is out of range.
	MemberAt(i int) Member
	// FindIndex reports the position of the member with the given name, or
	// ok=false when absent.
	FindIndex(name string) (int, bool)
}

// Member pairs an owned member name with a non-owning value view.
type Member struct {
	Name  string
	Value Value
}

// ArrayIter is a bidirectional cursor over an Array view. Obtain cursors from
// ArrayBegin and ArrayEnd; each call to ArrayBegin yields an independent
// cursor over the same data. A cursor is not safe to advance from multiple
// goroutines; each goroutine takes its own. Cursors from different views must
// not be compared.
type ArrayIter struct {
	arr Array
	pos int
}

// ArrayBegin returns a cursor positioned at the first element of a.
func ArrayBegin(a Array) ArrayIter { return ArrayIter{arr: a} }

// ArrayEnd returns a cursor positioned one past the last element of a.
func ArrayEnd(a Array) ArrayIter { return ArrayIter{arr: a, pos: a.Len()} }

// Value dereferences the cursor. Valid only while the cursor is not at end.
func (it ArrayIter) Value() Value { return it.arr.At(it.pos) }

func (it *ArrayIter) Next() { it.pos++ }
func (it *ArrayIter) Prev() { it.pos-- }

// AtEnd reports whether the cursor sits one past the last element.
func (it ArrayIter) AtEnd() bool { return it.pos >= it.arr.Len() }

// Equal reports whether two cursors over the same view sit at the same
// position.
func (it ArrayIter) Equal(other ArrayIter) bool { return it.pos == other.pos }

// Distance returns the signed element count from it to other.
func (it ArrayIter) Distance(other ArrayIter) int { return other.pos - it.pos }

// ObjectIter is a bidirectional cursor over an Object view, with the same
// contract as ArrayIter.
type ObjectIter struct {
	obj Object
	pos int
}

// ObjectBegin returns a cursor positioned at the first member of o.
func ObjectBegin(o Object) ObjectIter { return ObjectIter{obj: o} }

// ObjectEnd returns a cursor positioned one past the last member of o.
func ObjectEnd(o Object) ObjectIter { return ObjectIter{obj: o, pos: o.Len()} }

// Member dereferences the cursor. Valid only while the cursor is not at end.
func (it ObjectIter) Member() Member { return it.obj.MemberAt(it.pos) }

func (it *ObjectIter) Next() { it.pos++ }
func (it *ObjectIter) Prev() { it.pos-- }

// AtEnd reports whether the cursor sits one past the last member.
func (it ObjectIter) AtEnd() bool { return it.pos >= it.obj.Len() }

// Equal reports whether two cursors over the same view sit at the same
// position.
func (it ObjectIter) Equal(other ObjectIter) bool { return it.pos == other.pos }

// Distance returns the signed member count from it to other.
func (it ObjectIter) Distance(other ObjectIter) int { return other.pos - it.pos }

// Find returns a cursor positioned at the member of o with the given name,
// or ObjectEnd(o) when absent. Because cursors are positions within one view,
// "not found" on an empty object is that object's own end, never another
// view's.
func Find(o Object, name string) ObjectIter {
	if i, ok := o.FindIndex(name); ok {
		return ObjectIter{obj: o, pos: i}
	}
	return ObjectEnd(o)
}
