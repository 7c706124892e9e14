package lexer

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/kievzenit/blockc/internal/compiler_errors"
	"github.com/kievzenit/blockc/internal/logging"
)

const MissingEOFWarning = "Missing '$' at the end of the code. Automatically adding '$'."

type LexerError struct {
	Message string
	Line    int
}

func newUnknownError(unknown rune, line int) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("Unknown token '%s' at line %d", string(unknown), line),
		Line:    line,
	}
}

func newLineBreakInStringError(line, position int) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("Line break found in a string at line %d, position %d", line, position),
		Line:    line,
	}
}

func newNumberInStringError(line, position int) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("Numbers are not allowed in a string at line %d, position %d", line, position),
		Line:    line,
	}
}

func (e *LexerError) GetMessage() string {
	return e.Message
}

type Lexer struct {
	buf []rune
	pos int

	line int

	eh     compiler_errors.ErrorHandler
	logger *slog.Logger
}

func NewLexer(source string, eh compiler_errors.ErrorHandler, logger *slog.Logger) *Lexer {
	return &Lexer{
		buf: []rune(source),
		pos: 0,

		line: 1,

		eh:     eh,
		logger: logging.Component(logger, "lexer"),
	}
}

// Tokenize scans one compilation unit and returns its tokens. Diagnostics
// go to the error handler; an unknown character stops the scan, and a
// missing '$' is healed with a synthetic EOF token plus a warning.
func Tokenize(source string) ([]Token, []string, []string) {
	eh := compiler_errors.NewErrorHandler()
	tokens := NewLexer(source, eh, nil).Tokenize()

	return tokens, compiler_errors.Messages(eh.Errors()), compiler_errors.Messages(eh.Warnings())
}

func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0)

scan:
	for l.hasChars() {
		switch {
		case l.isCurrSkippable():
			if l.read() == '\n' {
				l.line++
			}
			l.advance()

		case l.isCurrLineComment():
			l.skipLineComment()

		case l.isCurrBlockComment():
			l.skipBlockComment()

		case unicode.IsLetter(l.read()):
			tokens = append(tokens, l.processIdentifier()...)

		case unicode.IsDigit(l.read()):
			tokens = append(tokens, l.token(DIGIT, string(l.read())))
			l.advance()

		case l.read() == '"':
			tokens = append(tokens, l.processStringLiteral())

		default:
			token, ok := l.processPunctuation()
			if !ok {
				l.eh.AddError(newUnknownError(l.read(), l.line))
				tokens = append(tokens, token)
				l.logger.Debug("scan stopped on unknown character",
					slog.String("char", token.Value),
					slog.Int("line", l.line))
				break scan
			}
			tokens = append(tokens, token)
		}
	}

	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		l.eh.AddWarning(compiler_errors.Message(MissingEOFWarning))
		tokens = append(tokens, l.token(EOF, "$"))
	}

	l.logger.Debug("tokenized", slog.Int("tokens", len(tokens)), slog.Int("lines", l.line))

	return tokens
}

func (l *Lexer) token(kind TokenKind, value string) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Line:  l.line,
	}
}

func (l *Lexer) isCurrSkippable() bool {
	return unicode.IsSpace(l.read())
}

func (l *Lexer) isCurrLineComment() bool {
	return l.read() == '/' && l.hasNext() && l.next() == '/'
}

func (l *Lexer) isCurrBlockComment() bool {
	return l.read() == '/' && l.hasNext() && l.next() == '*'
}

func (l *Lexer) isCurrIdentifier() bool {
	return unicode.IsLetter(l.read()) || unicode.IsDigit(l.read()) || l.read() == '_'
}

// skipLineComment stops before the newline so the main loop counts it.
func (l *Lexer) skipLineComment() {
	l.pos += 2
	for l.hasChars() && l.read() != '\n' {
		l.advance()
	}
}

// skipBlockComment consumes to end of input when the comment is not closed.
func (l *Lexer) skipBlockComment() {
	l.pos += 2
	for l.hasChars() {
		if l.read() == '*' && l.hasNext() && l.next() == '/' {
			l.pos += 2
			return
		}
		if l.read() == '\n' {
			l.line++
		}
		l.advance()
	}
}

// processIdentifier reads a run of letters, digits and underscores and
// splits it left to right: the longest keyword starting at the current
// offset wins, otherwise a single character becomes an ID token.
func (l *Lexer) processIdentifier() []Token {
	start := l.pos
	for l.hasChars() && l.isCurrIdentifier() {
		l.advance()
	}
	run := l.buf[start:l.pos]

	tokens := make([]Token, 0, len(run))
	for offset := 0; offset < len(run); {
		keyword, kind, ok := longestKeyword(run[offset:])
		if ok {
			tokens = append(tokens, l.token(kind, keyword))
			offset += len([]rune(keyword))
			continue
		}

		tokens = append(tokens, l.token(ID, string(run[offset])))
		offset++
	}

	return tokens
}

func longestKeyword(run []rune) (string, TokenKind, bool) {
	var (
		best     string
		bestKind TokenKind
		found    bool
	)
	for keyword, kind := range keywords {
		kw := []rune(keyword)
		if len(kw) > len(run) || len(kw) <= len([]rune(best)) {
			continue
		}
		if string(run[:len(kw)]) == keyword {
			best, bestKind, found = keyword, kind, true
		}
	}

	return best, bestKind, found
}

// processStringLiteral copies characters up to the closing quote or a
// newline. Comments inside the literal are skipped, digits are reported
// but kept. The character after the loop is consumed unconditionally, so
// an unterminated literal swallows the newline that ended it.
func (l *Lexer) processStringLiteral() Token {
	l.advance()
	start := l.pos

	var hasNumber bool
	stringBuf := make([]rune, 0)
	for l.hasChars() && l.read() != '"' {
		if l.read() == '\n' {
			l.eh.AddError(newLineBreakInStringError(l.line, start))
			break
		}

		if unicode.IsDigit(l.read()) {
			hasNumber = true
		}

		if l.isCurrLineComment() {
			l.skipLineComment()
			continue
		}

		if l.isCurrBlockComment() {
			l.skipBlockComment()
			continue
		}

		stringBuf = append(stringBuf, l.read())
		l.advance()
	}

	if hasNumber {
		l.eh.AddError(newNumberInStringError(l.line, start))
	}

	token := l.token(CHAR, string(stringBuf))

	if l.hasChars() && l.read() == '\n' {
		l.line++
	}
	l.advance()

	return token
}

func (l *Lexer) processEquality() (Token, bool) {
	curr := l.read()
	if l.hasNext() && l.next() == '=' {
		l.pos += 2
		return l.token(BOOLEAN_OP, string(curr)+"="), true
	}

	if curr == '=' {
		l.advance()
		return l.token(ASSIGN, "="), true
	}

	return l.token(UNKNOWN, string(curr)), false
}

// processPunctuation returns false with an UNKNOWN token when the current
// character is not part of the language.
func (l *Lexer) processPunctuation() (Token, bool) {
	var kind TokenKind
	switch l.read() {
	case '=', '!':
		return l.processEquality()
	case '+':
		kind = INT_OP
	case '(':
		kind = LEFT_PARENTHESIS
	case ')':
		kind = RIGHT_PARENTHESIS
	case '{':
		kind = LEFT_BRACE
	case '}':
		kind = RIGHT_BRACE
	case '$':
		kind = EOF
	default:
		return l.token(UNKNOWN, string(l.read())), false
	}

	token := l.token(kind, string(l.read()))
	l.advance()
	return token, true
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) hasNext() bool {
	return l.pos+1 < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) next() rune { return l.buf[l.pos+1] }
func (l *Lexer) read() rune { return l.buf[l.pos] }
