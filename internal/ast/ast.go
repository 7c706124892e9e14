// Package ast holds the abstract syntax tree produced by the builder.
//
// Every node is a *Node tagged with a Kind. A node exclusively owns its
// ordered children; nothing points back to a parent.
package ast

import "fmt"

type Kind int

const (
	ProgramNode Kind = iota
	EOFNode
	BlockNode
	LeftBraceNode
	RightBraceNode
	LeftParenthesisNode
	RightParenthesisNode

	VarDeclarationNode
	VarTypeNode
	AssignStatementNode
	IfStatementNode
	WhileStatementNode
	PrintStatementNode

	IntExprNode
	IntegerLiteralNode
	IntOpNode
	BoolExprNode
	BoolOpNode
	BoolValNode
	StringExprNode
	StringLiteralNode
	IdentifierNode
)

func (k Kind) String() string {
	switch k {
	case ProgramNode:
		return "Program"
	case EOFNode:
		return "EOF"
	case BlockNode:
		return "Block"
	case LeftBraceNode:
		return "LeftBrace"
	case RightBraceNode:
		return "RightBrace"
	case LeftParenthesisNode:
		return "LeftParenthesis"
	case RightParenthesisNode:
		return "RightParenthesis"
	case VarDeclarationNode:
		return "VarDeclaration"
	case VarTypeNode:
		return "VarType"
	case AssignStatementNode:
		return "AssignStatement"
	case IfStatementNode:
		return "IfStatement"
	case WhileStatementNode:
		return "WhileStatement"
	case PrintStatementNode:
		return "PrintStatement"
	case IntExprNode:
		return "IntExpr"
	case IntegerLiteralNode:
		return "IntegerLiteral"
	case IntOpNode:
		return "IntOp"
	case BoolExprNode:
		return "BoolExpr"
	case BoolOpNode:
		return "BoolOp"
	case BoolValNode:
		return "BoolVal"
	case StringExprNode:
		return "StringExpr"
	case StringLiteralNode:
		return "StringLiteral"
	case IdentifierNode:
		return "Identifier"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Node struct {
	Kind Kind
	// Value is the kind specific payload: literal text, operator symbol,
	// type keyword or identifier name. Empty for purely structural nodes.
	Value    string
	Children []*Node
}

func newNode(kind Kind, value string) *Node {
	return &Node{
		Kind:     kind,
		Value:    value,
		Children: make([]*Node, 0),
	}
}

// AddChild appends child; nil children from failed sub-rules are dropped.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// Label is the display string used by the tree dump.
func (n *Node) Label() string {
	switch n.Kind {
	case EOFNode:
		return "$"
	case LeftBraceNode:
		return "{"
	case RightBraceNode:
		return "}"
	case LeftParenthesisNode:
		return "("
	case RightParenthesisNode:
		return ")"
	case VarTypeNode:
		return "Type: " + n.Value
	case IntegerLiteralNode:
		return "Number: " + n.Value
	case IntOpNode:
		return "IntOp: " + n.Value
	case BoolOpNode:
		return "BoolOp: " + n.Value
	case BoolValNode:
		return "BoolVal: " + n.Value
	case StringExprNode:
		return "StrgExpr"
	case StringLiteralNode:
		return "String: " + n.Value
	case IdentifierNode:
		return "ID: " + n.Value
	default:
		return n.Kind.String()
	}
}

// Walk visits n and its descendants depth first, passing each node's depth.
func Walk(n *Node, visit func(node *Node, depth int)) {
	walk(n, 0, visit)
}

func walk(n *Node, depth int, visit func(node *Node, depth int)) {
	if n == nil {
		return
	}
	visit(n, depth)
	for _, child := range n.Children {
		walk(child, depth+1, visit)
	}
}
