package parser

import (
	"fmt"
	"log/slog"

	"github.com/kievzenit/blockc/internal/compiler_errors"
	"github.com/kievzenit/blockc/internal/lexer"
	"github.com/kievzenit/blockc/internal/logging"
)

const ParsingFinished = "Parsing finished."

var statementStarters = []lexer.TokenKind{
	lexer.LEFT_BRACE,
	lexer.PRINT,
	lexer.WHILE,
	lexer.IF,
	lexer.ID,
	lexer.INT,
	lexer.STRING,
	lexer.BOOLEAN,
}

// Validator recognizes the grammar without building anything. Only the
// first error is kept; once it is set the statement list stops.
type Validator struct {
	tokens []lexer.Token
	pos    int

	eh *compiler_errors.LatchedErrorHandler

	logger *slog.Logger
}

func NewValidator(tokens []lexer.Token, logger *slog.Logger) *Validator {
	return &Validator{
		tokens: tokens,
		pos:    0,

		eh: compiler_errors.NewLatchedErrorHandler(),

		logger: logging.Component(logger, "validator"),
	}
}

// Validate reports whether the token sequence is a well formed program.
func (v *Validator) Validate() bool {
	v.trace("parseProgram")
	v.parseBlock()

	if !v.eh.HasErrors() && !v.isAtEnd() {
		v.consume(lexer.EOF, "Expected '$' to end")
	}

	v.logger.Debug("validation finished", slog.Bool("ok", !v.eh.HasErrors()))

	return !v.eh.HasErrors()
}

// Error returns the latched diagnostic, or "" when validation passed.
func (v *Validator) Error() string {
	errs := v.eh.Errors()
	if len(errs) == 0 {
		return ""
	}
	return errs[0].GetMessage()
}

func (v *Validator) Errors() []compiler_errors.CompilerError {
	return v.eh.Errors()
}

// Verdict is the closing line of a validation run.
func (v *Validator) Verdict() string {
	if v.eh.HasErrors() {
		return fmt.Sprintf("Error:\n%s", v.Error())
	}
	return ParsingFinished
}

func (v *Validator) parseBlock() {
	v.trace("parseBlock")
	v.consume(lexer.LEFT_BRACE, "Expected statement to start with left brace")
	v.parseStatementList()
	v.consume(lexer.RIGHT_BRACE, "Expected statement to end at right brace")
}

func (v *Validator) parseStatementList() {
	v.trace("parseStatementList")
	for !v.eh.HasErrors() && !v.check(lexer.RIGHT_BRACE) && !v.isAtEnd() {
		if !v.checkAny(statementStarters...) {
			v.error(fmt.Sprintf("Cannot start statement with '%s'", v.tokens[v.pos].Kind))
			return
		}
		v.parseStatement()
	}
}

func (v *Validator) parseStatement() {
	v.trace("parseStatement")
	switch {
	case !v.isAtEnd() && v.tokens[v.pos].IsTypeKeyword():
		v.parseVarDecl()
	case v.match(lexer.ID):
		v.parseAssignmentStatement()
	case v.match(lexer.PRINT):
		v.parsePrintStatement()
	case v.match(lexer.IF):
		v.parseIfStatement()
	case v.match(lexer.WHILE):
		v.parseWhileStatement()
	case v.check(lexer.LEFT_BRACE):
		v.parseBlock()
	default:
		v.error("Expected a statement")
	}
}

func (v *Validator) parseVarDecl() {
	v.trace("parseVarDecl")
	v.parseType()
	v.consume(lexer.ID, "Expected identifier after type")
}

func (v *Validator) parseType() {
	v.trace("parseType")
	if !v.match(lexer.INT, lexer.BOOLEAN, lexer.STRING) {
		v.error("Expected type")
	}
}

func (v *Validator) parseAssignmentStatement() {
	v.trace("parseAssignmentStatement")
	v.consume(lexer.ASSIGN, "Expected '=' after identifier")
	v.parseExpr()
}

func (v *Validator) parseIfStatement() {
	v.trace("parseIfStatement")
	v.parseBooleanExpr()
	v.parseBlock()
}

func (v *Validator) parseWhileStatement() {
	v.trace("parseWhileStatement")
	v.parseBooleanExpr()
	v.parseBlock()
}

func (v *Validator) parsePrintStatement() {
	v.trace("parsePrintStatement")
	v.consume(lexer.LEFT_PARENTHESIS, "Expected '(' after 'print'")
	v.parseExpr()
	v.consume(lexer.RIGHT_PARENTHESIS, "Expected ')' after expression")
}

func (v *Validator) parseExpr() {
	v.trace("parseExpr")
	switch {
	case v.check(lexer.ID):
		v.advance()
	case v.check(lexer.DIGIT):
		v.parseIntExpr()
	case v.checkAny(lexer.LEFT_PARENTHESIS, lexer.BOOLEAN_VAL):
		v.parseBooleanExpr()
	case v.check(lexer.CHAR):
		v.parseStringExpr()
	default:
		v.error("Expected expression")
	}
}

func (v *Validator) parseIntExpr() {
	v.trace("parseIntExpr")
	if !v.match(lexer.DIGIT) {
		v.error("Expected integer expression")
		return
	}

	if v.check(lexer.INT_OP) {
		v.parseIntOp()
		v.parseExpr()
	}
}

func (v *Validator) parseIntOp() {
	v.trace("parseIntOp")
	if !v.match(lexer.INT_OP) {
		v.error("Expected integer operator")
	}
}

func (v *Validator) parseBooleanExpr() {
	v.trace("parseBooleanExpr")
	if v.match(lexer.BOOLEAN_VAL) {
		return
	}

	if v.match(lexer.LEFT_PARENTHESIS) {
		v.parseExpr()
		v.parseBoolOp()
		v.parseExpr()
		v.consume(lexer.RIGHT_PARENTHESIS, "Expected ')' after boolean expression")
		return
	}

	v.error("Expected boolean expression")
}

func (v *Validator) parseBoolOp() {
	v.trace("parseBoolOp")
	if !v.match(lexer.BOOLEAN_OP) {
		v.error("Expected boolean operator")
	}
}

func (v *Validator) parseStringExpr() {
	v.trace("parseStringExpr")
	if !v.match(lexer.CHAR) {
		v.error("Expected string expression")
	}
}

func (v *Validator) match(kinds ...lexer.TokenKind) bool {
	for _, kind := range kinds {
		if v.check(kind) {
			v.advance()
			return true
		}
	}
	return false
}

func (v *Validator) consume(kind lexer.TokenKind, message string) {
	if v.check(kind) {
		v.advance()
		return
	}
	v.error(message)
}

func (v *Validator) error(message string) {
	if v.eh.HasErrors() {
		return
	}
	v.logger.Debug("validation error", slog.String("message", message), slog.Int("index", v.pos))
	v.eh.AddError(&ValidationError{
		Message: message,
		Index:   v.pos,
	})
}

func (v *Validator) advance() {
	if !v.isAtEnd() {
		v.pos++
	}
}

// check is false at the end of the sequence, whatever kind is asked for.
func (v *Validator) check(kind lexer.TokenKind) bool {
	if v.isAtEnd() {
		return false
	}
	return v.tokens[v.pos].Kind == kind
}

func (v *Validator) checkAny(kinds ...lexer.TokenKind) bool {
	for _, kind := range kinds {
		if v.check(kind) {
			return true
		}
	}
	return false
}

func (v *Validator) isAtEnd() bool {
	return v.pos >= len(v.tokens) || v.tokens[v.pos].Kind == lexer.EOF
}

func (v *Validator) trace(rule string) {
	v.logger.Debug("rule", slog.String("rule", rule), slog.Int("pos", v.pos))
}
