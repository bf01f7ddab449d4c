package compiler

import (
	"strings"

	"collage/pkg/diagnostics"

	"github.com/rivo/uniseg"
)

// Lexer holds all mutable state for a single scanning pass over src.
// The source is pre-split into grapheme clusters so that a multi-byte
// character (or an emoji sequence) advances the cursor by exactly one.
type Lexer struct {
	src   []string // grapheme clusters
	pos   int      // index of the next cluster to consume
	line  int      // current 1-based source line
	col   int      // current 1-based column, in clusters
	diags *diagnostics.Bag
}

func newLexer(src string, diags *diagnostics.Bag) *Lexer {
	var clusters []string
	gr := uniseg.NewGraphemes(src)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return &Lexer{src: clusters, line: 1, col: 1, diags: diags}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

// at returns the cluster at index i, or "" past the end.
func (l *Lexer) at(i int) string {
	if i < 0 || i >= len(l.src) {
		return ""
	}
	return l.src[i]
}

// peek returns the cluster at the current position without advancing.
func (l *Lexer) peek() string {
	return l.at(l.pos)
}

// advance consumes one cluster and returns it.
func (l *Lexer) advance() string {
	if l.atEnd() {
		return ""
	}
	c := l.src[l.pos]
	l.pos++
	if strings.Contains(c, "\n") {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) text(start, end int) string {
	return strings.Join(l.src[start:end], "")
}

// isWhitespace accepts space, tab, CR and LF, and clusters made only of
// them ("\r\n" segments as one cluster).
func isWhitespace(c string) bool {
	if c == "" {
		return false
	}
	for _, r := range c {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func isDigit(c string) bool {
	return len(c) == 1 && c[0] >= '0' && c[0] <= '9'
}

// operatorAt reports the operator or punctuation token starting at cluster i
// and how many clusters it spans.
func (l *Lexer) operatorAt(i int) (TokenType, int, bool) {
	next := l.at(i + 1)
	switch l.at(i) {
	case "+":
		return PLUS, 1, true
	case "-":
		if next == ">" {
			return ARROW, 2, true
		}
		return MINUS, 1, true
	case "*":
		return STAR, 1, true
	case "/":
		return SLASH, 1, true
	case "%":
		return PERCENT, 1, true
	case "(":
		return LPAREN, 1, true
	case ")":
		return RPAREN, 1, true
	case "~":
		return TILDE, 1, true
	case "!":
		if next == "=" {
			return NOT_EQ, 2, true
		}
		return BANG, 1, true
	case "|":
		if next == "|" {
			return OR_LOGICAL, 2, true
		}
		return PIPE, 1, true
	case "&":
		if next == "&" {
			return AND_LOGICAL, 2, true
		}
	case "=":
		if next == "=" {
			return EQUALS, 2, true
		}
	case "<":
		if next == "=" {
			return LESS_EQ, 2, true
		}
		return LESS, 1, true
	case ">":
		if next == "=" {
			return GREATER_EQ, 2, true
		}
		return GREATER, 1, true
	case ":":
		if next == ":" {
			return DOUBLE_COLON, 2, true
		}
	}
	return EOF, 0, false
}

// scanString collects a string literal "...". There are no escapes; an
// unterminated literal runs to the end of input without a diagnostic.
func (l *Lexer) scanString() Token {
	line, col := l.line, l.col
	l.advance() // consume opening "
	start := l.pos
	for !l.atEnd() && l.peek() != `"` {
		l.advance()
	}
	lexeme := l.text(start, l.pos)
	if !l.atEnd() {
		l.advance() // consume closing "
	}
	return Token{Type: LITERAL, Lexeme: lexeme, Line: line, Column: col}
}

// scanNumber collects digits and dots. A second dot is reported once but the
// whole run is still emitted as one NUMBER.
func (l *Lexer) scanNumber() Token {
	line, col := l.line, l.col
	start := l.pos
	dots := 0
	for !l.atEnd() {
		c := l.peek()
		if c == "." {
			dots++
			if dots == 2 {
				l.diags.Error("only one dot is allowed for float numbers")
			}
		} else if !isDigit(c) {
			break
		}
		l.advance()
	}
	return Token{Type: NUMBER, Lexeme: l.text(start, l.pos), Line: line, Column: col}
}

// scanIdent collects a maximal run of non-whitespace clusters. Operators,
// parentheses and quotes inside the run belong to the identifier.
func (l *Lexer) scanIdent() Token {
	line, col := l.line, l.col
	start := l.pos
	l.advance()
	for !l.atEnd() && !isWhitespace(l.peek()) {
		l.advance()
	}
	return Token{Type: IDENTIFIER, Lexeme: l.text(start, l.pos), Line: line, Column: col}
}

// nextToken consumes input and returns the next Token. ok is false when the
// consumed input produced no token (whitespace, or a lone ':').
func (l *Lexer) nextToken() (tok Token, ok bool) {
	ch := l.peek()
	line, col := l.line, l.col

	switch {
	case isWhitespace(ch):
		l.advance()
		return Token{}, false
	case ch == `"`:
		return l.scanString(), true
	case isDigit(ch):
		return l.scanNumber(), true
	}

	if tt, width, found := l.operatorAt(l.pos); found {
		start := l.pos
		for i := 0; i < width; i++ {
			l.advance()
		}
		return Token{Type: tt, Lexeme: l.text(start, l.pos), Line: line, Column: col}, true
	}

	// A ':' that is not part of '::' is dropped without a token or a diagnostic.
	if ch == ":" {
		l.advance()
		return Token{}, false
	}

	return l.scanIdent(), true
}

// Lex tokenises src into grapheme-aware tokens. It never aborts: malformed
// number literals are reported to diags and every token that could be
// produced is returned. No EOF token is appended.
func Lex(src string, diags *diagnostics.Bag) []Token {
	l := newLexer(src, diags)
	var tokens []Token
	for !l.atEnd() {
		if tok, ok := l.nextToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
