package valijson_test

import (
	"testing"

	valijson "github.com/shsfre09/valijson"
	"github.com/shsfre09/valijson/adapters/gojson"
	"github.com/shsfre09/valijson/adapters/native"
	"github.com/shsfre09/valijson/adapters/yamlv3"
)

func mustJSON(t *testing.T, src string) valijson.Value {
	t.Helper()
	v, err := valijson.Load(gojson.Driver{}, []byte(src))
	if err != nil {
		t.Fatalf("gojson parse %q: %v", src, err)
	}
	return v
}

func mustYAML(t *testing.T, src string) valijson.Value {
	t.Helper()
	v, err := valijson.Load(yamlv3.Driver{}, []byte(src))
	if err != nil {
		t.Fatalf("yamlv3 parse %q: %v", src, err)
	}
	return v
}

func mustNative(t *testing.T, src string) valijson.Value {
	t.Helper()
	v, err := valijson.Load(native.Driver{}, []byte(src))
	if err != nil {
		t.Fatalf("native parse %q: %v", src, err)
	}
	return v
}

func mustObject(t *testing.T, v valijson.Value) valijson.Object {
	t.Helper()
	o, err := valijson.AsObject(v)
	if err != nil {
		t.Fatalf("AsObject: %v", err)
	}
	return o
}

func mustArray(t *testing.T, v valijson.Value) valijson.Array {
	t.Helper()
	a, err := valijson.AsArray(v)
	if err != nil {
		t.Fatalf("AsArray: %v", err)
	}
	return a
}
