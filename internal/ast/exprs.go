package ast

func NewIntExpr() *Node                    { return newNode(IntExprNode, "") }
func NewIntegerLiteral(digit string) *Node { return newNode(IntegerLiteralNode, digit) }
func NewIntOp() *Node                      { return newNode(IntOpNode, "+") }
func NewBoolExpr() *Node                   { return newNode(BoolExprNode, "") }
func NewBoolOp(op string) *Node            { return newNode(BoolOpNode, op) }
func NewBoolVal(value string) *Node        { return newNode(BoolValNode, value) }
func NewStringExpr() *Node                 { return newNode(StringExprNode, "") }
func NewStringLiteral(value string) *Node  { return newNode(StringLiteralNode, value) }
func NewIdentifier(name string) *Node      { return newNode(IdentifierNode, name) }
