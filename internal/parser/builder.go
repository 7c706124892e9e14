package parser

import (
	"log/slog"

	"github.com/kievzenit/blockc/internal/ast"
	"github.com/kievzenit/blockc/internal/compiler_errors"
	"github.com/kievzenit/blockc/internal/lexer"
	"github.com/kievzenit/blockc/internal/logging"
	sa "github.com/kievzenit/blockc/internal/semantic_analyzer"
)

// Builder constructs the tree for one compilation unit. It never stops
// early: every malformed construct is recorded and skipped, and Build
// always returns a Program node.
type Builder struct {
	scanner lexer.TokenScanner
	eh      compiler_errors.ErrorHandler

	analyzer *sa.SemanticAnalyzer
	resolver *sa.TypeResolver

	curr *lexer.Token
	root *ast.Node

	logger *slog.Logger
}

func NewBuilder(tokens []lexer.Token, logger *slog.Logger) *Builder {
	scanner := lexer.NewTokenScanner(tokens)
	analyzer := sa.NewSemanticAnalyzer(logger)

	return &Builder{
		scanner: scanner,
		eh:      compiler_errors.NewErrorHandler(),

		analyzer: analyzer,
		resolver: sa.NewTypeResolver(analyzer),

		curr: scanner.Read(),

		logger: logging.Component(logger, "builder"),
	}
}

// Build parses the whole unit. Later calls return the first tree.
func (b *Builder) Build() *ast.Node {
	if b.root != nil {
		return b.root
	}

	b.root = b.buildProgram()
	b.logger.Debug("tree built",
		slog.Int("errors", len(b.eh.Errors())),
		slog.Int("symbols", b.analyzer.SymbolTable().Len()))

	return b.root
}

func (b *Builder) Errors() []compiler_errors.CompilerError {
	return b.eh.Errors()
}

func (b *Builder) HasErrors() bool {
	return b.eh.HasErrors()
}

func (b *Builder) SymbolTable() *sa.SymbolTable {
	return b.analyzer.SymbolTable()
}

func (b *Builder) buildProgram() *ast.Node {
	program := ast.NewProgram()
	program.AddChild(b.buildBlock())

	b.expect(lexer.EOF)
	program.AddChild(ast.NewEOF())

	return program
}

func (b *Builder) buildBlock() *ast.Node {
	block := ast.NewBlock()

	b.expect(lexer.LEFT_BRACE)
	block.AddChild(ast.NewLeftBrace())

	b.analyzer.EnterScope()
	b.buildStatementList(block)
	b.analyzer.ExitScope()

	b.expect(lexer.RIGHT_BRACE)
	block.AddChild(ast.NewRightBrace())

	return block
}

func (b *Builder) buildStatementList(block *ast.Node) {
	for b.curr != nil && !b.isCurrAny(lexer.RIGHT_BRACE, lexer.EOF) {
		block.AddChild(b.buildStatement())
	}
}

func (b *Builder) buildStatement() *ast.Node {
	if b.curr.IsTypeKeyword() {
		return b.buildVarDeclaration()
	}

	switch b.curr.Kind {
	case lexer.ID:
		return b.buildAssignStatement()
	case lexer.IF:
		return b.buildIfStatement()
	case lexer.WHILE:
		return b.buildWhileStatement()
	case lexer.PRINT:
		return b.buildPrintStatement()
	case lexer.LEFT_BRACE:
		return b.buildBlock()
	default:
		b.unexpected()
		b.read()
		return nil
	}
}

func (b *Builder) buildVarDeclaration() *ast.Node {
	decl := ast.NewVarDeclaration()

	keyword := b.read()
	decl.AddChild(ast.NewVarType(keyword.Value))

	if !b.isCurr(lexer.ID) {
		b.expect(lexer.ID)
		return decl
	}

	index := b.index()
	name := b.read()
	decl.AddChild(ast.NewIdentifier(name.Value))

	t, _ := b.resolver.GetBuiltInType(keyword.Value)
	if err := b.analyzer.DeclareVar(name.Value, t, name.Line); err != nil {
		b.semanticError(err, index, name.Line)
	}

	return decl
}

func (b *Builder) buildAssignStatement() *ast.Node {
	assign := ast.NewAssignStatement()

	index := b.index()
	target := b.read()
	assign.AddChild(ast.NewIdentifier(target.Value))

	b.expect(lexer.ASSIGN)

	value := b.buildExpression()
	assign.AddChild(value)

	if err := b.analyzer.CheckAssign(target.Value, b.resolver.ExprType(value)); err != nil {
		b.semanticError(err, index, target.Line)
	}

	return assign
}

func (b *Builder) buildIfStatement() *ast.Node {
	stmt := ast.NewIfStatement()

	b.read()
	stmt.AddChild(b.buildBooleanExpression())
	stmt.AddChild(b.buildBlock())

	return stmt
}

func (b *Builder) buildWhileStatement() *ast.Node {
	stmt := ast.NewWhileStatement()

	b.read()
	stmt.AddChild(b.buildBooleanExpression())
	stmt.AddChild(b.buildBlock())

	return stmt
}

func (b *Builder) buildPrintStatement() *ast.Node {
	stmt := ast.NewPrintStatement()

	b.read()
	b.expect(lexer.LEFT_PARENTHESIS)
	stmt.AddChild(b.buildExpression())
	b.expect(lexer.RIGHT_PARENTHESIS)

	return stmt
}

// buildExpression returns nil without consuming anything when the current
// token cannot start an expression.
func (b *Builder) buildExpression() *ast.Node {
	if b.curr == nil {
		b.expect(lexer.ID)
		return nil
	}

	switch b.curr.Kind {
	case lexer.ID:
		return b.buildIdentifier()
	case lexer.DIGIT:
		return b.buildIntegerExpression()
	case lexer.BOOLEAN_VAL:
		return ast.NewBoolVal(b.read().Value)
	case lexer.LEFT_PARENTHESIS:
		return b.buildBooleanExpression()
	case lexer.CHAR:
		return b.buildStringExpression()
	default:
		b.unexpected()
		return nil
	}
}

func (b *Builder) buildIdentifier() *ast.Node {
	index := b.index()
	token := b.read()

	if _, ok := b.analyzer.Resolve(token.Value); !ok {
		b.semanticError(&sa.UndeclaredError{Name: token.Value, InExpression: true}, index, token.Line)
	}

	return ast.NewIdentifier(token.Value)
}

func (b *Builder) buildIntegerExpression() *ast.Node {
	expr := ast.NewIntExpr()

	digit := b.read()
	expr.AddChild(ast.NewIntegerLiteral(digit.Value))

	if b.isCurr(lexer.INT_OP) {
		b.read()
		expr.AddChild(ast.NewIntOp())
		expr.AddChild(b.buildExpression())
	}

	return expr
}

func (b *Builder) buildBooleanExpression() *ast.Node {
	expr := ast.NewBoolExpr()

	switch {
	case b.isCurr(lexer.BOOLEAN_VAL):
		expr.AddChild(ast.NewBoolVal(b.read().Value))

	case b.isCurr(lexer.LEFT_PARENTHESIS):
		b.read()
		expr.AddChild(ast.NewLeftParenthesis())
		expr.AddChild(b.buildExpression())

		if b.isCurr(lexer.BOOLEAN_OP) {
			expr.AddChild(ast.NewBoolOp(b.read().Value))
		} else {
			b.expect(lexer.BOOLEAN_OP)
		}

		expr.AddChild(b.buildExpression())
		b.expect(lexer.RIGHT_PARENTHESIS)
		expr.AddChild(ast.NewRightParenthesis())

	case b.curr == nil:
		b.expect(lexer.LEFT_PARENTHESIS)

	default:
		b.unexpected()
	}

	return expr
}

func (b *Builder) buildStringExpression() *ast.Node {
	expr := ast.NewStringExpr()
	expr.AddChild(ast.NewStringLiteral(b.read().Value))
	return expr
}

func (b *Builder) read() *lexer.Token {
	token := b.curr
	b.curr = b.scanner.Read()
	return token
}

// index is the position of curr in the token sequence. Positional
// diagnostics name the offending token itself, not the cursor after it
// has been consumed.
func (b *Builder) index() int {
	if b.curr == nil {
		return b.scanner.Pos()
	}
	return b.scanner.Pos() - 1
}

func (b *Builder) line() int {
	if b.curr == nil {
		return 0
	}
	return b.curr.Line
}

func (b *Builder) isCurr(kind lexer.TokenKind) bool {
	return b.curr != nil && b.curr.Kind == kind
}

func (b *Builder) isCurrAny(kinds ...lexer.TokenKind) bool {
	for _, kind := range kinds {
		if b.isCurr(kind) {
			return true
		}
	}
	return false
}

// expect consumes curr when it has the given kind. On a mismatch it
// records the error and still consumes curr, except that an EOF token is
// left in place so the program rule can match it.
func (b *Builder) expect(kind lexer.TokenKind) {
	if b.isCurr(kind) {
		b.read()
		return
	}

	err := &UnexpectedExpectedError{
		Expected: kind,

		Index: b.index(),
		Line:  b.line(),
	}
	if b.curr != nil {
		got := b.curr.Kind
		err.Got = &got
	}
	b.eh.AddError(err)

	if b.curr != nil && b.curr.Kind != lexer.EOF {
		b.read()
	}
}

func (b *Builder) unexpected() {
	b.eh.AddError(&UnexpectedError{
		Unexpected: b.curr.Kind,

		Index: b.index(),
		Line:  b.curr.Line,
	})
}

func (b *Builder) semanticError(err error, index, line int) {
	b.logger.Debug("semantic error", slog.String("error", err.Error()), slog.Int("line", line))
	b.eh.AddError(&SemanticError{
		Err: err,

		Index: index,
		Line:  line,
	})
}
