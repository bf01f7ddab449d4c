package compiler

import "fmt"

//  Expression nodes

// Expr is implemented by every node of the untyped syntax tree.
type Expr interface {
	exprNode()
	String() string
}

// Tree is the parser's output. Root is nil only when the input held no tokens.
type Tree struct {
	Root Expr
}

// StringLiteral is a quoted string.
//
//	"Hi"
//	^^^^  StringLiteral{Token: {LITERAL, "Hi"}}
type StringLiteral struct {
	Token Token
}

func (*StringLiteral) exprNode()        {}
func (s *StringLiteral) String() string { return fmt.Sprintf("%q", s.Token.Lexeme) }

// BoolLiteral is an identifier spelled exactly true or false.
type BoolLiteral struct {
	Token Token
}

func (*BoolLiteral) exprNode()        {}
func (b *BoolLiteral) String() string { return b.Token.Lexeme }

// NumberLiteral keeps the literal text; it is converted to a float64 only
// during evaluation.
type NumberLiteral struct {
	Token Token
}

func (*NumberLiteral) exprNode()        {}
func (n *NumberLiteral) String() string { return n.Token.Lexeme }

// Identifier is recognised syntactically but never resolved.
type Identifier struct {
	Token Token
}

func (*Identifier) exprNode()        {}
func (i *Identifier) String() string { return i.Token.Lexeme }

// MissingExpr stands in for an operand that a syntax error prevented the
// parser from building. Token is where the parser expected the expression.
type MissingExpr struct {
	Token Token
}

func (*MissingExpr) exprNode()      {}
func (*MissingExpr) String() string { return "<missing>" }

// UnaryOperator is the prefix operator of a UnaryExpr.
type UnaryOperator int

const (
	Positive UnaryOperator = iota // +x
	Negative                      // -x
	Not                           // !x
)

func (op UnaryOperator) String() string {
	switch op {
	case Positive:
		return "+"
	case Negative:
		return "-"
	case Not:
		return "!"
	}
	return fmt.Sprintf("UnaryOperator(%d)", int(op))
}

// UnaryExpr represents Op Operand.
//
//	-1
//	^^  UnaryExpr{Op: Negative, Operand: NumberLiteral{1}}
type UnaryExpr struct {
	Op      UnaryOperator
	Token   Token
	Operand Expr
}

func (*UnaryExpr) exprNode()        {}
func (u *UnaryExpr) String() string { return fmt.Sprintf("(%s %s)", u.Op, u.Operand) }

// BinaryOperator is the infix operator of a BinaryExpr.
type BinaryOperator int

const (
	And BinaryOperator = iota
	Or
	Add
	Sub
	Mul
	Div
	Rem
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
)

var binaryOperatorNames = [...]string{
	And:          "&&",
	Or:           "||",
	Add:          "+",
	Sub:          "-",
	Mul:          "*",
	Div:          "/",
	Rem:          "%",
	Equal:        "==",
	NotEqual:     "!=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
}

func (op BinaryOperator) String() string {
	if int(op) >= 0 && int(op) < len(binaryOperatorNames) {
		return binaryOperatorNames[op]
	}
	return fmt.Sprintf("BinaryOperator(%d)", int(op))
}

// BinaryExpr represents a binary operation: Left Op Right.
//
//	x + 1
//	^ ^ ^
//	| | |
//	| | Right
//	| Op
//	Left
type BinaryExpr struct {
	Op    BinaryOperator
	Token Token
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// ParenExpr keeps explicit grouping in the tree so that the bound tree stays
// node-for-node parallel with the source.
type ParenExpr struct {
	Inner Expr
}

func (*ParenExpr) exprNode()        {}
func (p *ParenExpr) String() string { return fmt.Sprintf("[%s]", p.Inner) }
