package compiler

import (
	"fmt"

	"collage/pkg/diagnostics"
)

// Parser consumes the flat token slice produced by the Lexer and builds a
// syntax tree by precedence climbing.
//
// Grammar:
//
//	expression = unary_op expression | primary (binary_op expression)*
//	primary    = NUMBER | LITERAL | IDENTIFIER | "(" expression ")"?
//
// Precedence (higher binds tighter):
//
//	6  unary + - !
//	5  * / %
//	4  + -
//	3  && ||
//	2  == != < <= > >=
//
// Within one level binary operators associate to the left.
type Parser struct {
	tokens []Token
	pos    int
	diags  *diagnostics.Bag

	// halted is set by the first syntax error; nothing after it is parsed.
	halted bool
}

func NewParser(tokens []Token, diags *diagnostics.Bag) *Parser {
	return &Parser{tokens: tokens, diags: diags}
}

var unaryOperators = map[TokenType]UnaryOperator{
	PLUS:  Positive,
	MINUS: Negative,
	BANG:  Not,
}

var binaryOperators = map[TokenType]BinaryOperator{
	STAR:        Mul,
	SLASH:       Div,
	PERCENT:     Rem,
	PLUS:        Add,
	MINUS:       Sub,
	AND_LOGICAL: And,
	OR_LOGICAL:  Or,
	EQUALS:      Equal,
	NOT_EQ:      NotEqual,
	LESS:        Less,
	LESS_EQ:     LessEqual,
	GREATER:     Greater,
	GREATER_EQ:  GreaterEqual,
}

// unaryPrecedence returns 0 for tokens that are not prefix operators.
func unaryPrecedence(tt TokenType) int {
	switch tt {
	case PLUS, MINUS, BANG:
		return 6
	}
	return 0
}

// binaryPrecedence returns 0 for tokens that are not infix operators.
func binaryPrecedence(tt TokenType) int {
	switch tt {
	case STAR, SLASH, PERCENT:
		return 5
	case PLUS, MINUS:
		return 4
	case AND_LOGICAL, OR_LOGICAL:
		return 3
	case EQUALS, NOT_EQ, LESS, LESS_EQ, GREATER, GREATER_EQ:
		return 2
	}
	return 0
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// fail reports a syntax error at tok and stops the parse.
func (p *Parser) fail(tok Token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if tok.Type == EOF {
		p.diags.Error(msg)
	} else {
		p.diags.Errorf("%s (line %d, column %d)", msg, tok.Line, tok.Column)
	}
	p.halted = true
}

// parseExpression parses an expression whose binary operators all bind
// tighter than minPrec.
func (p *Parser) parseExpression(minPrec int) Expr {
	var left Expr
	if prec := unaryPrecedence(p.peek().Type); prec != 0 && prec >= minPrec {
		opTok := p.advance()
		operand := p.parseExpression(prec)
		left = &UnaryExpr{Op: unaryOperators[opTok.Type], Token: opTok, Operand: operand}
	} else {
		left = p.parsePrimary()
	}

	for !p.halted {
		prec := binaryPrecedence(p.peek().Type)
		if prec == 0 || prec <= minPrec {
			break
		}
		opTok := p.advance()
		right := p.parseExpression(prec)
		left = &BinaryExpr{Op: binaryOperators[opTok.Type], Token: opTok, Left: left, Right: right}
	}
	return left
}

// parsePrimary handles literals, identifiers and parenthesised expressions.
func (p *Parser) parsePrimary() Expr {
	tok := p.peek()
	switch tok.Type {
	case LPAREN:
		p.advance()
		inner := p.parseExpression(0)
		// A missing ')' is tolerated without a diagnostic.
		if !p.halted && p.peek().Type == RPAREN {
			p.advance()
		}
		return &ParenExpr{Inner: inner}

	case NUMBER:
		p.advance()
		return &NumberLiteral{Token: tok}

	case LITERAL:
		p.advance()
		return &StringLiteral{Token: tok}

	case IDENTIFIER:
		p.advance()
		if tok.Lexeme == "true" || tok.Lexeme == "false" {
			return &BoolLiteral{Token: tok}
		}
		return &Identifier{Token: tok}

	case EOF:
		p.fail(tok, "Unexpected end of input, expected expression")
		return &MissingExpr{Token: tok}

	default:
		p.fail(tok, "Unexpected token %s %q, expected expression", tok.Type, tok.Lexeme)
		return &MissingExpr{Token: tok}
	}
}

// Parse builds the tree for the whole token slice.
func (p *Parser) Parse() *Tree {
	if len(p.tokens) == 0 {
		return &Tree{}
	}
	root := p.parseExpression(0)
	if !p.halted && p.pos < len(p.tokens) {
		tok := p.peek()
		p.fail(tok, "Unexpected token %s %q after expression", tok.Type, tok.Lexeme)
	}
	return &Tree{Root: root}
}

// Parse is a convenience wrapper around NewParser(tokens, diags).Parse().
// Syntax errors are reported to diags; the returned tree is always non-nil
// and may contain MissingExpr leaves.
func Parse(tokens []Token, diags *diagnostics.Bag) *Tree {
	return NewParser(tokens, diags).Parse()
}
