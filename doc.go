package valijson

// Package valijson provides:
//
// - A uniform read-only view (Value) over already-parsed JSON-like trees, independent of the parser
// - Structural comparison with strict/loose numeric typing (Equal)
// - Detached deep copies with independent lifetime (Frozen)
// - A driver SPI binding each backend to its native document type (Driver, Load)
//
// Design policy:
// - Keep the generic contract and shared semantics in the root package; put per-backend glue under adapters/.
// - Values, views and iterators are borrows: they never own or mutate the Document and must not outlive it.
// - Expected conversion failures are comma-ok results; contract violations are error values.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  v, err := valijson.Load(gojson.Driver{}, data)
//  obj, err := valijson.AsObject(v)
//  it := valijson.Find(obj, "x")
//  frozen, err := it.Member().Value.Freeze()
