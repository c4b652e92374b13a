// Package native adapts plain Go interface trees — map[string]any, []any and
// scalar values — as produced by ordinary decoders. Its driver decodes with
// goccy/go-yaml, which covers JSON input as well.
//
// Numeric typing is loose: the backend conflates integer and floating-point
// into one numeric kind, so every number reports IsDouble and whole-valued
// numbers additionally report IsInteger.
package native

import (
	"io"
	"math"
	"sort"

	"github.com/goccy/go-yaml"

	valijson "github.com/shsfre09/valijson"
)

// Name identifies this backend in diagnostics.
const Name = "native"

// Document is the native root: any combination of map[string]any, []any,
// string, bool, nil and Go numeric types.
type Document = any

var fz = valijson.Freezer{Strict: false}

// Parse decodes YAML or JSON input into a plain interface tree.
func Parse(data []byte) (Document, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseReader decodes a stream into a plain interface tree.
func ParseReader(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Wrap adapts a caller-owned interface tree into a Value view. The tree must
// stay alive and unmodified while views over it are in use.
func Wrap(doc Document) valijson.Value { return Value{v: doc} }

// Driver binds this backend to the generic loading utilities.
type Driver struct{}

func (Driver) Name() string                              { return Name }
func (Driver) Parse(data []byte) (Document, error)       { return Parse(data) }
func (Driver) ParseReader(r io.Reader) (Document, error) { return ParseReader(r) }
func (Driver) Wrap(doc Document) valijson.Value          { return Wrap(doc) }

// Value is a non-owning view of one node in a plain interface tree. The zero
// value views null.
type Value struct {
	v any
}

func (v Value) Kind() valijson.Kind {
	switch v.v.(type) {
	case nil:
		return valijson.KindNull
	case bool:
		return valijson.KindBool
	case string:
		return valijson.KindString
	case []any:
		return valijson.KindArray
	case map[string]any:
		return valijson.KindObject
	}
	if _, ok := floatOf(v.v); ok {
		// Loose typing: one conflated numeric kind.
		return valijson.KindDouble
	}
	return valijson.KindInvalid
}

func (v Value) IsNull() bool { return v.v == nil }

func (v Value) IsBool() bool {
	_, ok := v.v.(bool)
	return ok
}

// IsInteger reports whether the node is a whole-valued number. The backend
// has no distinct integer representation, so this is a value test, not a
// representation test.
func (v Value) IsInteger() bool {
	f, ok := floatOf(v.v)
	return ok && f == math.Trunc(f) && !math.IsInf(f, 0)
}

func (v Value) IsDouble() bool { return v.IsNumber() }

func (v Value) IsNumber() bool {
	_, ok := floatOf(v.v)
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

// GetInteger reads any whole-valued number as int64, unifying the signed,
// unsigned and floating native encodings. It fails rather than truncate on
// fractional values and on values outside the int64 range.
func (v Value) GetInteger() (int64, bool) {
	switch n := v.v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	}
	return 0, false
}

func (v Value) GetDouble() (float64, bool) { return floatOf(v.v) }
func (v Value) GetNumber() (float64, bool) { return floatOf(v.v) }

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

func (v Value) StrictTypes() bool { return false }

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

// ObjectView is a non-owning view over a native map[string]any with a sorted
// key snapshot, keeping member order stable for the document's lifetime. The
// zero value views an empty object.
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

func floatOf(n any) (float64, bool) {
	switch x := n.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func freeze(n any) (*valijson.Frozen, error) {
	switch x := n.(type) {
	case nil:
		return fz.Null(), nil
	case bool:
		return fz.Bool(x), nil
	case string:
		return fz.String(x), nil
	case uint64:
		// Kept unsigned so values above the int64 range survive.
		return fz.Uint(x), nil
	case uint:
		return fz.Uint(uint64(x)), nil
	case float32:
		return fz.Double(float64(x)), nil
	case float64:
		return fz.Double(x), nil
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
	}
	if i, ok := (Value{v: n}).GetInteger(); ok {
		return fz.Int(i), nil
	}
	return nil, valijson.UnsupportedValue(Name, n)
}
