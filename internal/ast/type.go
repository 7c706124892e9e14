package ast

// NewVarType holds the declared type keyword of a VarDeclaration.
func NewVarType(keyword string) *Node { return newNode(VarTypeNode, keyword) }
