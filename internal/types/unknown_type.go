package types

// UnknownType is never the same as any type, itself included, so a failed
// resolution cannot satisfy a type check by accident.
type UnknownType struct{}

func (*UnknownType) Type() string {
	return "unknown"
}

func (*UnknownType) SameAs(Type) bool {
	return false
}
