// Package yamlv3 adapts node trees parsed by gopkg.in/yaml.v3.
//
// The backend wraps *yaml.Node directly: document wrappers and alias nodes
// are resolved on the way in, mapping insertion order is preserved, and the
// !!int / !!float tags keep integer and floating-point representationally
// distinct, so the backend reports strict typing.
package yamlv3

import (
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	valijson "github.com/shsfre09/valijson"
)

// Name identifies this backend in diagnostics.
const Name = "yaml-v3"

// Document is the parsed yaml.v3 node tree.
type Document = *yaml.Node

var fz = valijson.Freezer{Strict: true}

// Empty container singletons handed to default-constructed views. Built once
// per process and never mutated.
var emptySequence = sync.OnceValue(func() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
})

var emptyMapping = sync.OnceValue(func() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
})

// Parse decodes data into a Document.
func Parse(data []byte) (Document, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ParseReader decodes a stream into a Document.
func ParseReader(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Wrap adapts a caller-owned node into a Value view. The node tree must stay
// alive and unmodified while views over it are in use.
func Wrap(doc Document) valijson.Value { return Value{n: resolve(doc)} }

// Driver binds this backend to the generic loading utilities.
type Driver struct{}

func (Driver) Name() string                              { return Name }
func (Driver) Parse(data []byte) (Document, error)       { return Parse(data) }
func (Driver) ParseReader(r io.Reader) (Document, error) { return ParseReader(r) }
func (Driver) Wrap(doc Document) valijson.Value          { return Wrap(doc) }

// resolve unwraps document nodes and follows aliases so views always see the
// underlying scalar or collection node.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// Value is a non-owning view of one node in a yaml.v3 tree. The zero value
// views null, as does an empty document.
type Value struct {
	n *yaml.Node
}

func (v Value) Kind() valijson.Kind {
	n := v.n
	if n == nil || n.Kind == 0 {
		return valijson.KindNull
	}
	switch n.Kind {
	case yaml.SequenceNode:
		return valijson.KindArray
	case yaml.MappingNode:
		return valijson.KindObject
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return valijson.KindNull
		case "!!bool":
			return valijson.KindBool
		case "!!int":
			return valijson.KindInteger
		case "!!float":
			return valijson.KindDouble
		default:
			// !!str plus resolved scalar tags such as !!timestamp
			// and !!binary, which carry string payloads.
			return valijson.KindString
		}
	default:
		return valijson.KindInvalid
	}
}

func (v Value) IsNull() bool    { return v.Kind() == valijson.KindNull }
func (v Value) IsBool() bool    { return v.Kind() == valijson.KindBool }
func (v Value) IsInteger() bool { return v.Kind() == valijson.KindInteger }
func (v Value) IsDouble() bool  { return v.Kind() == valijson.KindDouble }
func (v Value) IsString() bool  { return v.Kind() == valijson.KindString }
func (v Value) IsArray() bool   { return v.Kind() == valijson.KindArray }
func (v Value) IsObject() bool  { return v.Kind() == valijson.KindObject }

func (v Value) IsNumber() bool {
	k := v.Kind()
	return k == valijson.KindInteger || k == valijson.KindDouble
}

func (v Value) GetBool() (bool, bool) {
	if v.Kind() != valijson.KindBool {
		return false, false
	}
	b, err := strconv.ParseBool(v.n.Value)
	if err != nil {
		return false, false
	}
	return b, true
}

// GetInteger reads a !!int scalar as int64, accepting the 0x/0o/0b forms the
// resolver admits. It fails rather than truncate when the value is out of
// range.
func (v Value) GetInteger() (int64, bool) {
	if v.Kind() != valijson.KindInteger {
		return 0, false
	}
	return parseInt(v.n.Value)
}

func (v Value) GetDouble() (float64, bool) {
	if v.Kind() != valijson.KindDouble {
		return 0, false
	}
	return parseFloat(v.n.Value)
}

func (v Value) GetNumber() (float64, bool) {
	switch v.Kind() {
	case valijson.KindInteger:
		if i, ok := parseInt(v.n.Value); ok {
			return float64(i), true
		}
		if u, ok := parseUint(v.n.Value); ok {
			return float64(u), true
		}
		return 0, false
	case valijson.KindDouble:
		return parseFloat(v.n.Value)
	}
	return 0, false
}

func (v Value) GetString() (string, bool) {
	if v.Kind() != valijson.KindString {
		return "", false
	}
	return v.n.Value, true
}

func (v Value) GetArray() (valijson.Array, bool) {
	if v.Kind() != valijson.KindArray {
		return nil, false
	}
	return ArrayView{n: v.n}, true
}

func (v Value) GetObject() (valijson.Object, bool) {
	if v.Kind() != valijson.KindObject {
		return nil, false
	}
	return ObjectView{n: v.n}, true
}

func (v Value) ArraySize() (int, bool) {
	if v.Kind() != valijson.KindArray {
		return 0, false
	}
	return len(v.n.Content), true
}

func (v Value) ObjectSize() (int, bool) {
	if v.Kind() != valijson.KindObject {
		return 0, false
	}
	return len(v.n.Content) / 2, true
}

func (v Value) StrictTypes() bool { return true }

func (v Value) Freeze() (*valijson.Frozen, error) { return freeze(v.n) }

// ArrayView is a non-owning view over a sequence node. The zero value views
// the empty sequence singleton.
type ArrayView struct {
	n *yaml.Node
}

// NewArrayView builds an array view over v, failing with ErrTypeMismatch
// when v does not reference a sequence.
func NewArrayView(v Value) (ArrayView, error) {
	if v.Kind() != valijson.KindArray {
		return ArrayView{}, valijson.TypeMismatch(valijson.KindArray, v.Kind())
	}
	return ArrayView{n: v.n}, nil
}

func (a ArrayView) node() *yaml.Node {
	if a.n != nil {
		return a.n
	}
	return emptySequence()
}

func (a ArrayView) Len() int { return len(a.node().Content) }

func (a ArrayView) At(i int) valijson.Value {
	return Value{n: resolve(a.node().Content[i])}
}

// ObjectView is a non-owning view over a mapping node, whose Content slice
// alternates key and value nodes in insertion order. The zero value views
// the empty mapping singleton.
type ObjectView struct {
	n *yaml.Node
}

// NewObjectView builds an object view over v, failing with ErrTypeMismatch
// when v does not reference a mapping.
func NewObjectView(v Value) (ObjectView, error) {
	if v.Kind() != valijson.KindObject {
		return ObjectView{}, valijson.TypeMismatch(valijson.KindObject, v.Kind())
	}
	return ObjectView{n: v.n}, nil
}

func (o ObjectView) node() *yaml.Node {
	if o.n != nil {
		return o.n
	}
	return emptyMapping()
}

func (o ObjectView) Len() int { return len(o.node().Content) / 2 }

func (o ObjectView) MemberAt(i int) valijson.Member {
	c := o.node().Content
	return valijson.Member{
		Name:  keyString(c[2*i]),
		Value: Value{n: resolve(c[2*i+1])},
	}
}

func (o ObjectView) FindIndex(name string) (int, bool) {
	c := o.node().Content
	for i := 0; i+1 < len(c); i += 2 {
		if keyString(c[i]) == name {
			return i / 2, true
		}
	}
	return 0, false
}

func keyString(k *yaml.Node) string {
	return resolve(k).Value
}

func parseInt(s string) (int64, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	// Hex, octal and binary forms resolve to !!int as well.
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i, true
	}
	return 0, false
}

func parseUint(s string) (uint64, bool) {
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, true
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return u, true
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	switch strings.ToLower(s) {
	case ".inf", "+.inf":
		return math.Inf(1), true
	case "-.inf":
		return math.Inf(-1), true
	case ".nan":
		return math.NaN(), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func freeze(n *yaml.Node) (*valijson.Frozen, error) {
	n = resolve(n)
	if n == nil || n.Kind == 0 {
		return fz.Null(), nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return fz.Null(), nil
		case "!!bool":
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return nil, valijson.UnsupportedValue(Name, n.Value)
			}
			return fz.Bool(b), nil
		case "!!int":
			if i, ok := parseInt(n.Value); ok {
				return fz.Int(i), nil
			}
			if u, ok := parseUint(n.Value); ok {
				return fz.Uint(u), nil
			}
			return nil, valijson.UnsupportedValue(Name, n.Value)
		case "!!float":
			f, ok := parseFloat(n.Value)
			if !ok {
				return nil, valijson.UnsupportedValue(Name, n.Value)
			}
			return fz.Double(f), nil
		default:
			return fz.String(n.Value), nil
		}
	case yaml.SequenceNode:
		elems := make([]*valijson.Frozen, len(n.Content))
		for i, e := range n.Content {
			fe, err := freeze(e)
			if err != nil {
				return nil, err
			}
			elems[i] = fe
		}
		return fz.Array(elems), nil
	case yaml.MappingNode:
		members := make([]valijson.FrozenMember, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			fv, err := freeze(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			members = append(members, valijson.FrozenMember{
				Name:  keyString(n.Content[i]),
				Value: fv,
			})
		}
		return fz.Object(members), nil
	default:
		return nil, valijson.UnsupportedValue(Name, n)
	}
}
