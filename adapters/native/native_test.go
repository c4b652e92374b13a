package native_test

import (
	"errors"
	"math"
	"testing"

	valijson "github.com/shsfre09/valijson"
	"github.com/shsfre09/valijson/adapters/native"
)

func parse(t *testing.T, src string) valijson.Value {
	t.Helper()
	doc, err := native.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse %q: %v", src, err)
	}
	return native.Wrap(doc)
}

func TestParseCoversJSONAndYAML(t *testing.T) {
	j := parse(t, `{"a": [1, 2]}`)
	y := parse(t, "a:\n  - 1\n  - 2\n")
	if !valijson.Equal(j, y, true) {
		t.Fatalf("JSON and YAML forms of the same document differ")
	}
}

func TestLooseTyping(t *testing.T) {
	whole := parse(t, `4`)
	frac := parse(t, `4.5`)
	if whole.StrictTypes() {
		t.Fatalf("backend must report loose typing")
	}
	if !whole.IsNumber() || !whole.IsDouble() || !whole.IsInteger() {
		t.Errorf("whole number predicates: number=%v double=%v integer=%v",
			whole.IsNumber(), whole.IsDouble(), whole.IsInteger())
	}
	if !frac.IsDouble() || frac.IsInteger() {
		t.Errorf("fractional number predicates: double=%v integer=%v",
			frac.IsDouble(), frac.IsInteger())
	}
	if whole.Kind() != valijson.KindDouble {
		t.Errorf("loose numeric Kind = %v, want double", whole.Kind())
	}
}

func TestGetInteger_UnifiesNativeEncodings(t *testing.T) {
	cases := []struct {
		name string
		doc  any
		want int64
	}{
		{"int", int(7), 7},
		{"int32", int32(-9), -9},
		{"int64", int64(math.MaxInt64), math.MaxInt64},
		{"uint16", uint16(12), 12},
		{"uint64 in range", uint64(40), 40},
		{"whole float64", float64(21), 21},
		{"whole float32", float32(8), 8},
	}
	for _, tc := range cases {
		v := native.Wrap(tc.doc)
		if i, ok := v.GetInteger(); !ok || i != tc.want {
			t.Errorf("%s: GetInteger = %d, %v; want %d", tc.name, i, ok, tc.want)
		}
	}
	if _, ok := native.Wrap(uint64(math.MaxUint64)).GetInteger(); ok {
		t.Errorf("GetInteger succeeded above the int64 range")
	}
	if _, ok := native.Wrap(float64(4.5)).GetInteger(); ok {
		t.Errorf("GetInteger succeeded on a fractional float")
	}
	if f, ok := native.Wrap(int8(3)).GetNumber(); !ok || f != 3 {
		t.Errorf("GetNumber(int8) = %v, %v", f, ok)
	}
}

func TestHandBuiltTrees(t *testing.T) {
	doc := map[string]any{
		"limits": []any{int32(1), uint8(2), float64(3)},
		"label":  "pump",
	}
	v := native.Wrap(doc)
	o, err := valijson.AsObject(v)
	if err != nil {
		t.Fatalf("AsObject: %v", err)
	}
	it := valijson.Find(o, "limits")
	if it.AtEnd() {
		t.Fatalf(`member "limits" not found`)
	}
	a, err := valijson.AsArray(it.Member().Value)
	if err != nil {
		t.Fatalf("AsArray: %v", err)
	}
	if a.Len() != 3 {
		t.Fatalf("array size = %d, want 3", a.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if got, ok := a.At(i).GetInteger(); !ok || got != int64(i+1) {
			t.Errorf("element %d = %d, %v", i, got, ok)
		}
	}
}

func TestViewConstructors_TypeMismatch(t *testing.T) {
	obj := native.Wrap(map[string]any{"a": 1}).(native.Value)
	if _, err := native.NewArrayView(obj); !errors.Is(err, valijson.ErrTypeMismatch) {
		t.Fatalf("NewArrayView over object: err = %v", err)
	}
	arr := native.Wrap([]any{1}).(native.Value)
	if _, err := native.NewObjectView(arr); !errors.Is(err, valijson.ErrTypeMismatch) {
		t.Fatalf("NewObjectView over array: err = %v", err)
	}
}

func TestFreeze_PreservesNativeSubtypes(t *testing.T) {
	doc := map[string]any{
		"big":   uint64(math.MaxUint64),
		"neg":   int64(-5),
		"float": 2.5,
	}
	v := native.Wrap(doc)
	f, err := v.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	if f.StrictTypes() {
		t.Fatalf("frozen value gained strict typing from a loose backend")
	}
	if !f.EqualTo(v, true) {
		t.Fatalf("frozen tree differs from source")
	}
	obj, _ := f.GetObject()
	big := valijson.Find(obj, "big").Member().Value
	if _, ok := big.GetInteger(); ok {
		t.Fatalf("frozen uint64 above int64 range read as int64")
	}
	if n, _ := big.GetNumber(); n != float64(math.MaxUint64) {
		t.Fatalf("frozen uint64 GetNumber = %v", n)
	}
}

func TestFreeze_UnsupportedValue(t *testing.T) {
	v := native.Wrap(map[string]any{"ch": make(chan int)})
	if _, err := v.Freeze(); !errors.Is(err, valijson.ErrUnsupportedValue) {
		t.Fatalf("Freeze error = %v, want ErrUnsupportedValue", err)
	}
	if k := native.Wrap(struct{}{}).Kind(); k != valijson.KindInvalid {
		t.Fatalf("struct Kind = %v, want invalid", k)
	}
}

func TestZeroValueViews(t *testing.T) {
	var a native.ArrayView
	if a.Len() != 0 {
		t.Fatalf("zero ArrayView Len = %d", a.Len())
	}
	var o native.ObjectView
	if o.Len() != 0 {
		t.Fatalf("zero ObjectView Len = %d", o.Len())
	}
}
