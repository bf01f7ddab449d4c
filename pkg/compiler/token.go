package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input, synthesised by the parser only

	// Literals
	IDENTIFIER // any other run of characters, including true/false
	LITERAL    // string literal "...", lexeme excludes the quotes
	NUMBER     // digits with at most one '.'

	// Arithmetic operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %

	// Logical operators
	BANG        // !
	AND_LOGICAL // &&
	OR_LOGICAL  // ||

	// Comparison
	EQUALS     // ==
	NOT_EQ     // !=
	LESS       // <
	LESS_EQ    // <=
	GREATER    // >
	GREATER_EQ // >=

	// Paired delimiters
	LPAREN // (
	RPAREN // )

	// Punctuation with no expression meaning yet
	DOUBLE_COLON // ::
	ARROW        // ->
	TILDE        // ~
	PIPE         // |
)

var tokenNames = [...]string{
	EOF:          "EOF",
	IDENTIFIER:   "IDENTIFIER",
	LITERAL:      "LITERAL",
	NUMBER:       "NUMBER",
	PLUS:         "PLUS",
	MINUS:        "MINUS",
	STAR:         "STAR",
	SLASH:        "SLASH",
	PERCENT:      "PERCENT",
	BANG:         "BANG",
	AND_LOGICAL:  "AND_LOGICAL",
	OR_LOGICAL:   "OR_LOGICAL",
	EQUALS:       "EQUALS",
	NOT_EQ:       "NOT_EQ",
	LESS:         "LESS",
	LESS_EQ:      "LESS_EQ",
	GREATER:      "GREATER",
	GREATER_EQ:   "GREATER_EQ",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	DOUBLE_COLON: "DOUBLE_COLON",
	ARROW:        "ARROW",
	TILDE:        "TILDE",
	PIPE:         "PIPE",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
// Line and Column are 1-based and count grapheme clusters, not bytes.
type Token struct {
	Type   TokenType
	Lexeme string // source text; for LITERAL the text between the quotes
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%-12s %-14q  %d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}
