package treewrap

import "fmt"

// Kind classifies the value held at a tree position. A bound position
// holds exactly one kind at any time; integers and booleans are
// distinct kinds even in representations that store both as integral.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntegerKind
	DoubleKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:    "Null",
		BoolKind:    "Bool",
		IntegerKind: "Integer",
		DoubleKind:  "Double",
		StringKind:  "String",
		ArrayKind:   "Array",
		ObjectKind:  "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":    NullKind,
		"Bool":    BoolKind,
		"Integer": IntegerKind,
		"Double":  DoubleKind,
		"String":  StringKind,
		"Array":   ArrayKind,
		"Object":  ObjectKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		IntegerKind,
		DoubleKind,
		StringKind,
		ArrayKind,
		ObjectKind,
	}
}

// IsNumber reports whether k is Integer or Double. Bool is never a
// number.
func (k Kind) IsNumber() bool {
	return k == IntegerKind || k == DoubleKind
}

func (k Kind) IsScalar() bool {
	switch k {
	case ArrayKind, ObjectKind:
		return false
	default:
		return true
	}
}

func (k Kind) IsComposite() bool {
	return !k.IsScalar()
}
