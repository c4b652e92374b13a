package valijson_test

import (
	"strings"
	"testing"

	valijson "github.com/shsfre09/valijson"
	"github.com/shsfre09/valijson/adapters/gojson"
	"github.com/shsfre09/valijson/adapters/native"
	"github.com/shsfre09/valijson/adapters/yamlv3"
)

func TestDriver_Names(t *testing.T) {
	if got := (gojson.Driver{}).Name(); got != "go-json" {
		t.Errorf("gojson driver name = %q", got)
	}
	if got := (yamlv3.Driver{}).Name(); got != "yaml-v3" {
		t.Errorf("yamlv3 driver name = %q", got)
	}
	if got := (native.Driver{}).Name(); got != "native" {
		t.Errorf("native driver name = %q", got)
	}
}

func TestLoad_AgreesAcrossBackends(t *testing.T) {
	const doc = `{"name":"pump","limits":[1,2,3]}`
	j, err := valijson.Load(gojson.Driver{}, []byte(doc))
	if err != nil {
		t.Fatalf("Load gojson: %v", err)
	}
	y, err := valijson.Load(yamlv3.Driver{}, []byte(doc))
	if err != nil {
		t.Fatalf("Load yamlv3: %v", err)
	}
	n, err := valijson.Load(native.Driver{}, []byte(doc))
	if err != nil {
		t.Fatalf("Load native: %v", err)
	}
	if !valijson.Equal(j, y, true) {
		t.Errorf("gojson and yamlv3 disagree on %s", doc)
	}
	if !valijson.Equal(j, n, false) {
		t.Errorf("gojson and native disagree on %s", doc)
	}
}

func TestLoadReader(t *testing.T) {
	v, err := valijson.LoadReader(gojson.Driver{}, strings.NewReader(`[true]`))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	a := mustArray(t, v)
	if a.Len() != 1 || !a.At(0).IsBool() {
		t.Fatalf("unexpected contents after LoadReader")
	}
}

func TestLoad_ParseErrorPropagates(t *testing.T) {
	if _, err := valijson.Load(gojson.Driver{}, []byte(`{"broken"`)); err == nil {
		t.Fatalf("Load accepted malformed JSON")
	}
}
