// Package parser holds the two independent passes over a token sequence:
// the Validator, a recognizer that stops at its first error, and the
// Builder, which constructs the tree, tracks scope and type checks
// assignments while accumulating every diagnostic it finds.
package parser

import (
	"fmt"

	"github.com/kievzenit/blockc/internal/lexer"
)

// UnexpectedExpectedError is the canonical missing-token diagnostic.
// Got is nil when the sequence ran out.
type UnexpectedExpectedError struct {
	Expected lexer.TokenKind
	Got      *lexer.TokenKind

	Index int
	Line  int
}

func (e *UnexpectedExpectedError) GetMessage() string {
	got := "EOF"
	if e.Got != nil {
		got = e.Got.String()
	}
	return fmt.Sprintf("Expected '%s' but got '%s' at token index %d", e.Expected, got, e.Index)
}

type UnexpectedError struct {
	Unexpected lexer.TokenKind

	Index int
	Line  int
}

func (e *UnexpectedError) GetMessage() string {
	return fmt.Sprintf("Unexpected token: %s at token index %d", e.Unexpected, e.Index)
}

// SemanticError positions a scope or type error from the semantic analyzer.
type SemanticError struct {
	Err error

	Index int
	Line  int
}

func (e *SemanticError) GetMessage() string {
	return fmt.Sprintf("%s at token index %d", e.Err.Error(), e.Index)
}

func (e *SemanticError) Unwrap() error {
	return e.Err
}

func (e *SemanticError) Error() string {
	return e.GetMessage()
}

// ValidationError is the single latched diagnostic of the Validator.
type ValidationError struct {
	Message string

	Index int
}

func (e *ValidationError) GetMessage() string {
	return fmt.Sprintf("%s at token index %d", e.Message, e.Index)
}
