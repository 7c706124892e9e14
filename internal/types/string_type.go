package types

type StringType struct{}

func (*StringType) Type() string {
	return "string"
}

func (*StringType) SameAs(other Type) bool {
	_, ok := other.(*StringType)
	return ok
}
