package lexer

// TokenScanner is a cursor over an already materialized token sequence.
// Every pass creates its own scanner, so passes never share position.
type TokenScanner interface {
	// Read consumes and returns the current token, or nil past the end.
	Read() *Token
	Pos() int
	HasTokens() bool
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) Read() *Token {
	if !s.HasTokens() {
		return nil
	}

	token := &s.tokens[s.pos]
	s.pos++

	return token
}

func (s *SimpleTokenScanner) Pos() int {
	return s.pos
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.pos < len(s.tokens)
}
