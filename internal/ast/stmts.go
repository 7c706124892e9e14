package ast

func NewProgram() *Node { return newNode(ProgramNode, "") }
func NewEOF() *Node     { return newNode(EOFNode, "$") }
func NewBlock() *Node   { return newNode(BlockNode, "") }

func NewLeftBrace() *Node        { return newNode(LeftBraceNode, "{") }
func NewRightBrace() *Node       { return newNode(RightBraceNode, "}") }
func NewLeftParenthesis() *Node  { return newNode(LeftParenthesisNode, "(") }
func NewRightParenthesis() *Node { return newNode(RightParenthesisNode, ")") }

func NewVarDeclaration() *Node  { return newNode(VarDeclarationNode, "") }
func NewAssignStatement() *Node { return newNode(AssignStatementNode, "") }
func NewIfStatement() *Node     { return newNode(IfStatementNode, "") }
func NewWhileStatement() *Node  { return newNode(WhileStatementNode, "") }
func NewPrintStatement() *Node  { return newNode(PrintStatementNode, "") }
