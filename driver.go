package valijson

import "io"

// Driver ties a backend to its native document type D for generic loading
// utilities and diagnostics. Drivers are stateless values; the binding
// resolves at the call site through the type parameter, so there is no
// runtime registry and no registration step.
type Driver[D any] interface {
	// Name identifies the backend in diagnostics.
	Name() string
	// Parse decodes raw input into the backend's native document type.
	Parse(data []byte) (D, error)
	// ParseReader decodes a stream into the backend's native document type.
	ParseReader(r io.Reader) (D, error)
	// Wrap adapts a caller-owned document root into a Value view in O(1).
	// The document must stay alive and unmodified while views over it are
	// in use.
	Wrap(doc D) Value
}

// Load parses data with drv and wraps the resulting document root. The
// returned Value borrows the parsed document, which stays reachable for as
// long as views over it are held.
func Load[D any](drv Driver[D], data []byte) (Value, error) {
	doc, err := drv.Parse(data)
	if err != nil {
		return nil, err
	}
	return drv.Wrap(doc), nil
}

// LoadReader parses a stream with drv and wraps the resulting document root.
func LoadReader[D any](drv Driver[D], r io.Reader) (Value, error) {
	doc, err := drv.ParseReader(r)
	if err != nil {
		return nil, err
	}
	return drv.Wrap(doc), nil
}
