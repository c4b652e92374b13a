// Package gojson adapts document trees decoded by goccy/go-json.
//
// Documents are plain interface trees (map[string]any, []any, json.Number,
// string, bool, nil) decoded with UseNumber, so integer and floating-point
// inputs stay lexically distinct and the backend reports strict typing.
package gojson

import (
	"bytes"
	"io"
	"sort"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	valijson "github.com/shsfre09/valijson"
)

// Name identifies this backend in diagnostics.
const Name = "go-json"

// Document is the native root produced by Parse.
type Document = any

var fz = valijson.Freezer{Strict: true}

// Parse decodes data into a Document, keeping numbers as json.Number.
func Parse(data []byte) (Document, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader decodes a stream into a Document, keeping numbers as
// json.Number.
func ParseReader(r io.Reader) (Document, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Wrap adapts a caller-owned document root into a Value view. The document
// must stay alive and unmodified while views over it are in use.
func Wrap(doc Document) valijson.Value { return Value{v: doc} }

// Driver binds this backend to the generic loading utilities.
type Driver struct{}

func (Driver) Name() string                              { return Name }
func (Driver) Parse(data []byte) (Document, error)       { return Parse(data) }
func (Driver) ParseReader(r io.Reader) (Document, error) { return ParseReader(r) }
func (Driver) Wrap(doc Document) valijson.Value          { return Wrap(doc) }

// Value is a non-owning view of one node in a go-json document tree. The
// zero value views null.
type Value struct {
	v any
}

func (v Value) Kind() valijson.Kind {
	switch n := v.v.(type) {
	case nil:
		return valijson.KindNull
	case bool:
		return valijson.KindBool
	case j.Number:
		if numberIsInt(n) {
			return valijson.KindInteger
		}
		return valijson.KindDouble
	case string:
		return valijson.KindString
	case []any:
		return valijson.KindArray
	case map[string]any:
		return valijson.KindObject
	default:
		return valijson.KindInvalid
	}
}

func (v Value) IsNull() bool { return v.v == nil }

func (v Value) IsBool() bool {
	_, ok := v.v.(bool)
	return ok
}

func (v Value) IsInteger() bool {
	n, ok := v.v.(j.Number)
	return ok && numberIsInt(n)
}

func (v Value) IsDouble() bool {
	n, ok := v.v.(j.Number)
	return ok && !numberIsInt(n)
}

func (v Value) IsNumber() bool {
	_, ok := v.v.(j.Number)
	return ok
}

func (v Value) IsString() bool {
	_, ok := v.v.(string)
	return ok
}

func (v Value) IsArray() bool {
	_, ok := v.v.([]any)
	return ok
}

func (v Value) IsObject() bool {
	_, ok := v.v.(map[string]any)
	return ok
}

func (v Value) GetBool() (bool, bool) {
	b, ok := v.v.(bool)
	return b, ok
}

// GetInteger reads an integer-formed number as int64. It fails on fractional
// or exponent forms and on values outside the int64 range; it never
// truncates.
func (v Value) GetInteger() (int64, bool) {
	n, ok := v.v.(j.Number)
	if !ok || !numberIsInt(n) {
		return 0, false
	}
	i, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

func (v Value) GetDouble() (float64, bool) {
	n, ok := v.v.(j.Number)
	if !ok || numberIsInt(n) {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

func (v Value) GetNumber() (float64, bool) {
	n, ok := v.v.(j.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

func (v Value) GetString() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

func (v Value) GetArray() (valijson.Array, bool) {
	if e, ok := v.v.([]any); ok {
		return ArrayView{elems: e}, true
	}
	return nil, false
}

func (v Value) GetObject() (valijson.Object, bool) {
	if m, ok := v.v.(map[string]any); ok {
		return newObjectView(m), true
	}
	return nil, false
}

func (v Value) ArraySize() (int, bool) {
	if e, ok := v.v.([]any); ok {
		return len(e), true
	}
	return 0, false
}

func (v Value) ObjectSize() (int, bool) {
	if m, ok := v.v.(map[string]any); ok {
		return len(m), true
	}
	return 0, false
}

func (v Value) StrictTypes() bool { return true }

func (v Value) Freeze() (*valijson.Frozen, error) { return freeze(v.v) }

// ArrayView is a non-owning view over a native []any. The zero value views
// an empty array.
type ArrayView struct {
	elems []any
}

// NewArrayView builds an array view over v, failing with ErrTypeMismatch
// when v does not reference an array.
func NewArrayView(v Value) (ArrayView, error) {
	e, ok := v.v.([]any)
	if !ok {
		return ArrayView{}, valijson.TypeMismatch(valijson.KindArray, v.Kind())
	}
	return ArrayView{elems: e}, nil
}

func (a ArrayView) Len() int                { return len(a.elems) }
func (a ArrayView) At(i int) valijson.Value { return Value{v: a.elems[i]} }

// ObjectView is a non-owning view over a native map[string]any. It snapshots
// a sorted key order at construction: Go randomizes map iteration per pass,
// so the sort is what keeps member order stable for the document's lifetime
// and makes independent cursors agree. The zero value views an empty object.
type ObjectView struct {
	m    map[string]any
	keys []string
}

// NewObjectView builds an object view over v, failing with ErrTypeMismatch
// when v does not reference an object.
func NewObjectView(v Value) (ObjectView, error) {
	m, ok := v.v.(map[string]any)
	if !ok {
		return ObjectView{}, valijson.TypeMismatch(valijson.KindObject, v.Kind())
	}
	return newObjectView(m), nil
}

func newObjectView(m map[string]any) ObjectView {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return ObjectView{m: m, keys: keys}
}

func (o ObjectView) Len() int { return len(o.keys) }

func (o ObjectView) MemberAt(i int) valijson.Member {
	k := o.keys[i]
	return valijson.Member{Name: k, Value: Value{v: o.m[k]}}
}

func (o ObjectView) FindIndex(name string) (int, bool) {
	i := sort.SearchStrings(o.keys, name)
	if i < len(o.keys) && o.keys[i] == name {
		return i, true
	}
	return 0, false
}

func numberIsInt(n j.Number) bool {
	return !strings.ContainsAny(n.String(), ".eE")
}

func freeze(n any) (*valijson.Frozen, error) {
	switch x := n.(type) {
	case nil:
		return fz.Null(), nil
	case bool:
		return fz.Bool(x), nil
	case j.Number:
		if numberIsInt(x) {
			if i, err := strconv.ParseInt(x.String(), 10, 64); err == nil {
				return fz.Int(i), nil
			}
			if u, err := strconv.ParseUint(x.String(), 10, 64); err == nil {
				return fz.Uint(u), nil
			}
		}
		f, err := x.Float64()
		if err != nil {
			return nil, valijson.UnsupportedValue(Name, x)
		}
		return fz.Double(f), nil
	case string:
		return fz.String(x), nil
	case []any:
		elems := make([]*valijson.Frozen, len(x))
		for i, e := range x {
			fe, err := freeze(e)
			if err != nil {
				return nil, err
			}
			elems[i] = fe
		}
		return fz.Array(elems), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]valijson.FrozenMember, len(keys))
		for i, k := range keys {
			fv, err := freeze(x[k])
			if err != nil {
				return nil, err
			}
			members[i] = valijson.FrozenMember{Name: k, Value: fv}
		}
		return fz.Object(members), nil
	default:
		return nil, valijson.UnsupportedValue(Name, x)
	}
}
