package lexer

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota
	UNKNOWN

	PRINT
	IF
	ELSE
	WHILE
	FOR
	INT
	STRING
	BOOLEAN

	ID
	DIGIT
	CHAR
	BOOLEAN_VAL

	ASSIGN     // =
	INT_OP     // +
	BOOLEAN_OP // == !=

	LEFT_PARENTHESIS  // (
	RIGHT_PARENTHESIS // )
	LEFT_BRACE        // {
	RIGHT_BRACE       // }
)

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case UNKNOWN:
		return "UNKNOWN"
	case PRINT:
		return "PRINT"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case WHILE:
		return "WHILE"
	case FOR:
		return "FOR"
	case INT:
		return "INT"
	case STRING:
		return "STRING"
	case BOOLEAN:
		return "BOOLEAN"
	case ID:
		return "ID"
	case DIGIT:
		return "DIGIT"
	case CHAR:
		return "CHAR"
	case BOOLEAN_VAL:
		return "BOOLEAN_VAL"
	case ASSIGN:
		return "ASSIGN"
	case INT_OP:
		return "INT_OP"
	case BOOLEAN_OP:
		return "BOOLEAN_OP"
	case LEFT_PARENTHESIS:
		return "LEFT_PARENTHESIS"
	case RIGHT_PARENTHESIS:
		return "RIGHT_PARENTHESIS"
	case LEFT_BRACE:
		return "LEFT_BRACE"
	case RIGHT_BRACE:
		return "RIGHT_BRACE"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(tk))
	}
}

// keywords are matched greedily inside identifier runs, see processIdentifier.
var keywords = map[string]TokenKind{
	"print":   PRINT,
	"if":      IF,
	"else":    ELSE,
	"while":   WHILE,
	"int":     INT,
	"for":     FOR,
	"boolean": BOOLEAN,
	"string":  STRING,
	"true":    BOOLEAN_VAL,
	"false":   BOOLEAN_VAL,
}

// Token is immutable once the lexer has produced it; pass it by value.
type Token struct {
	Kind  TokenKind
	Value string
	Line  int
}

func (t Token) IsTypeKeyword() bool {
	switch t.Kind {
	case INT, STRING, BOOLEAN:
		return true
	}

	return false
}

func (t Token) String() string {
	return fmt.Sprintf("Token [type=%s, value=%s, line=%d]", t.Kind, t.Value, t.Line)
}
