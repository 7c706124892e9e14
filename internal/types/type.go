// Package types is the closed type system of the language: int, string
// and boolean, plus unknown for expressions whose type cannot be resolved.
package types

type Type interface {
	Type() string
	SameAs(other Type) bool
}

var (
	Int     Type = &IntType{}
	String  Type = &StringType{}
	Boolean Type = &BoolType{}
	Unknown Type = &UnknownType{}
)

// FromKeyword maps a declaration keyword to its type.
func FromKeyword(keyword string) (Type, bool) {
	switch keyword {
	case "int":
		return Int, true
	case "string":
		return String, true
	case "boolean":
		return Boolean, true
	}

	return Unknown, false
}

func IsKnown(t Type) bool {
	if t == nil {
		return false
	}
	_, unknown := t.(*UnknownType)
	return !unknown
}
