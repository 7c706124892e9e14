package lexer

import (
	"reflect"
	"strings"
	"testing"
)

func kindsOf(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, 0, len(tokens))
	for _, token := range tokens {
		kinds = append(kinds, token.Kind)
	}
	return kinds
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Single character identifiers",
			input: "ab$",
			expected: []Token{
				{Kind: ID, Value: "a", Line: 1},
				{Kind: ID, Value: "b", Line: 1},
				{Kind: EOF, Value: "$", Line: 1},
			},
		},
		{
			name:  "Keyword greediness",
			input: "iffy$",
			expected: []Token{
				{Kind: IF, Value: "if", Line: 1},
				{Kind: ID, Value: "f", Line: 1},
				{Kind: ID, Value: "y", Line: 1},
				{Kind: EOF, Value: "$", Line: 1},
			},
		},
		{
			name:  "Keywords glued together",
			input: "intx stringtrue$",
			expected: []Token{
				{Kind: INT, Value: "int", Line: 1},
				{Kind: ID, Value: "x", Line: 1},
				{Kind: STRING, Value: "string", Line: 1},
				{Kind: BOOLEAN_VAL, Value: "true", Line: 1},
				{Kind: EOF, Value: "$", Line: 1},
			},
		},
		{
			name:  "Digits and underscores inside a run",
			input: "a1_$",
			expected: []Token{
				{Kind: ID, Value: "a", Line: 1},
				{Kind: ID, Value: "1", Line: 1},
				{Kind: ID, Value: "_", Line: 1},
				{Kind: EOF, Value: "$", Line: 1},
			},
		},
		{
			name:  "Multi digit numbers split",
			input: "x = 12 + 3$",
			expected: []Token{
				{Kind: ID, Value: "x", Line: 1},
				{Kind: ASSIGN, Value: "=", Line: 1},
				{Kind: DIGIT, Value: "1", Line: 1},
				{Kind: DIGIT, Value: "2", Line: 1},
				{Kind: INT_OP, Value: "+", Line: 1},
				{Kind: DIGIT, Value: "3", Line: 1},
				{Kind: EOF, Value: "$", Line: 1},
			},
		},
		{
			name:  "Boolean operators",
			input: "(a == b) (c != d)$",
			expected: []Token{
				{Kind: LEFT_PARENTHESIS, Value: "(", Line: 1},
				{Kind: ID, Value: "a", Line: 1},
				{Kind: BOOLEAN_OP, Value: "==", Line: 1},
				{Kind: ID, Value: "b", Line: 1},
				{Kind: RIGHT_PARENTHESIS, Value: ")", Line: 1},
				{Kind: LEFT_PARENTHESIS, Value: "(", Line: 1},
				{Kind: ID, Value: "c", Line: 1},
				{Kind: BOOLEAN_OP, Value: "!=", Line: 1},
				{Kind: ID, Value: "d", Line: 1},
				{Kind: RIGHT_PARENTHESIS, Value: ")", Line: 1},
				{Kind: EOF, Value: "$", Line: 1},
			},
		},
		{
			name:  "Comments and lines",
			input: "{ // note\n/* multi\nline */ print(\"hi\") }$",
			expected: []Token{
				{Kind: LEFT_BRACE, Value: "{", Line: 1},
				{Kind: PRINT, Value: "print", Line: 3},
				{Kind: LEFT_PARENTHESIS, Value: "(", Line: 3},
				{Kind: CHAR, Value: "hi", Line: 3},
				{Kind: RIGHT_PARENTHESIS, Value: ")", Line: 3},
				{Kind: RIGHT_BRACE, Value: "}", Line: 3},
				{Kind: EOF, Value: "$", Line: 3},
			},
		},
		{
			name:  "Comment inside string is dropped",
			input: "\"a/*x*/b\"$",
			expected: []Token{
				{Kind: CHAR, Value: "ab", Line: 1},
				{Kind: EOF, Value: "$", Line: 1},
			},
		},
		{
			name:  "Scanning continues after the marker",
			input: "{}${}$",
			expected: []Token{
				{Kind: LEFT_BRACE, Value: "{", Line: 1},
				{Kind: RIGHT_BRACE, Value: "}", Line: 1},
				{Kind: EOF, Value: "$", Line: 1},
				{Kind: LEFT_BRACE, Value: "{", Line: 1},
				{Kind: RIGHT_BRACE, Value: "}", Line: 1},
				{Kind: EOF, Value: "$", Line: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs, warnings := Tokenize(tt.input)
			if len(errs) != 0 {
				t.Errorf("unexpected errors: %v", errs)
			}
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Tokenize(%q)\n got  %v\n want %v", tt.input, tokens, tt.expected)
			}
		})
	}
}

func TestTokenize_MissingEOFIsHealed(t *testing.T) {
	tokens, errs, warnings := Tokenize("{\nint a\n}")

	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
	if len(warnings) != 1 || warnings[0] != MissingEOFWarning {
		t.Fatalf("expected exactly one missing marker warning, got %v", warnings)
	}

	last := tokens[len(tokens)-1]
	if last.Kind != EOF || last.Value != "$" || last.Line != 3 {
		t.Errorf("expected synthetic EOF on line 3, got %v", last)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	tokens, errs, warnings := Tokenize("")

	if len(errs) != 0 || len(warnings) != 1 {
		t.Errorf("errors = %v, warnings = %v", errs, warnings)
	}
	if !reflect.DeepEqual(kindsOf(tokens), []TokenKind{EOF}) {
		t.Errorf("tokens = %v, want a single EOF", tokens)
	}
}

func TestTokenize_UnknownCharacterStopsScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []TokenKind
		char  string
	}{
		{
			name:  "Unknown symbol",
			input: "{ a = 1 ; b = 2 }$",
			kinds: []TokenKind{LEFT_BRACE, ID, ASSIGN, DIGIT, UNKNOWN, EOF},
			char:  ";",
		},
		{
			name:  "Lone bang",
			input: "{ !a }$",
			kinds: []TokenKind{LEFT_BRACE, UNKNOWN, EOF},
			char:  "!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs, warnings := Tokenize(tt.input)

			if !reflect.DeepEqual(kindsOf(tokens), tt.kinds) {
				t.Errorf("kinds = %v, want %v", kindsOf(tokens), tt.kinds)
			}
			if len(errs) != 1 {
				t.Fatalf("expected one error, got %v", errs)
			}
			want := "Unknown token '" + tt.char + "' at line 1"
			if errs[0] != want {
				t.Errorf("error = %q, want %q", errs[0], want)
			}
			if len(warnings) != 1 {
				t.Errorf("expected the synthetic EOF warning, got %v", warnings)
			}
		})
	}
}

func TestTokenize_StringDiagnostics(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		value     string
		errPrefix string
		nextKinds []TokenKind
	}{
		{
			name:      "Digit inside string",
			input:     "\"a1\"$",
			value:     "a1",
			errPrefix: "Numbers are not allowed in a string at line 1, position 1",
			nextKinds: []TokenKind{EOF},
		},
		{
			name:      "Line break inside string",
			input:     "\"ab\n}$",
			value:     "ab",
			errPrefix: "Line break found in a string at line 1, position 1",
			nextKinds: []TokenKind{RIGHT_BRACE, EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs, _ := Tokenize(tt.input)

			if tokens[0].Kind != CHAR || tokens[0].Value != tt.value {
				t.Errorf("first token = %v, want CHAR(%s)", tokens[0], tt.value)
			}
			if len(errs) != 1 || !strings.HasPrefix(errs[0], tt.errPrefix) {
				t.Errorf("errors = %v, want one starting with %q", errs, tt.errPrefix)
			}
			if got := kindsOf(tokens[1:]); !reflect.DeepEqual(got, tt.nextKinds) {
				t.Errorf("following kinds = %v, want %v", got, tt.nextKinds)
			}
		})
	}
}

func TestTokenize_UnterminatedStringSwallowsNextCharacter(t *testing.T) {
	tokens, _, _ := Tokenize("\"ab\n}$")

	// the newline that ended the literal is consumed but still counted
	if tokens[1].Kind != RIGHT_BRACE || tokens[1].Line != 2 {
		t.Errorf("token after string = %v, want RIGHT_BRACE on line 2", tokens[1])
	}
}

func TestTokenize_UnterminatedStringKeepsItsLine(t *testing.T) {
	tokens, errs, _ := Tokenize("{\n\"ab\n}$")

	if len(errs) != 1 || errs[0] != "Line break found in a string at line 2, position 3" {
		t.Errorf("errors = %v", errs)
	}

	want := []Token{
		{Kind: LEFT_BRACE, Value: "{", Line: 1},
		{Kind: CHAR, Value: "ab", Line: 2},
		{Kind: RIGHT_BRACE, Value: "}", Line: 3},
		{Kind: EOF, Value: "$", Line: 3},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens\n got  %v\n want %v", tokens, want)
	}
}

func TestTokenize_UnterminatedBlockComment(t *testing.T) {
	tokens, errs, warnings := Tokenize("{ /* never closed\n }$")

	if len(errs) != 0 {
		t.Errorf("unterminated block comment must not be an error, got %v", errs)
	}
	if len(warnings) != 1 {
		t.Errorf("expected missing marker warning, got %v", warnings)
	}
	if !reflect.DeepEqual(kindsOf(tokens), []TokenKind{LEFT_BRACE, EOF}) {
		t.Errorf("kinds = %v", kindsOf(tokens))
	}
}

func TestToken_String(t *testing.T) {
	token := Token{Kind: ID, Value: "a", Line: 4}
	if got := token.String(); got != "Token [type=ID, value=a, line=4]" {
		t.Errorf("String() = %q", got)
	}
}

func TestTokenScanner(t *testing.T) {
	tokens, _, _ := Tokenize("{}$")
	scanner := NewTokenScanner(tokens)

	if !scanner.HasTokens() || scanner.Pos() != 0 {
		t.Fatalf("new scanner should start at 0")
	}
	if tok := scanner.Read(); tok == nil || tok.Kind != LEFT_BRACE || scanner.Pos() != 1 {
		t.Fatalf("first Read() = %v, pos %d", tok, scanner.Pos())
	}
	scanner.Read()
	if tok := scanner.Read(); tok == nil || tok.Kind != EOF {
		t.Fatalf("third Read() = %v, want EOF", tok)
	}
	if scanner.HasTokens() || scanner.Read() != nil {
		t.Error("scanner past the end should return nil")
	}
	if scanner.Pos() != 3 {
		t.Errorf("Pos() = %d, want 3", scanner.Pos())
	}
}

func TestToken_IsTypeKeyword(t *testing.T) {
	tokens, _, _ := Tokenize("int string boolean true x$")

	want := []bool{true, true, true, false, false, false}
	for i, token := range tokens {
		if got := token.IsTypeKeyword(); got != want[i] {
			t.Errorf("%v.IsTypeKeyword() = %v, want %v", token, got, want[i])
		}
	}
}
