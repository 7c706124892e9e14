package types

type IntType struct{}

func (*IntType) Type() string {
	return "int"
}

func (*IntType) SameAs(other Type) bool {
	_, ok := other.(*IntType)
	return ok
}
