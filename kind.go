package valijson

// Kind identifies the JSON-like kind of a value exposed by an adapter.
type Kind int

const (
	// KindInvalid marks a native node outside the backend contract.
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInteger
	KindDouble
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	"invalid",
	"null",
	"bool",
	"integer",
	"double",
	"string",
	"array",
	"object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}
