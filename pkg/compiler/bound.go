package compiler

import "fmt"

// BoundType is the static type the binder assigns to a node.
type BoundType int

const (
	// Unidentified is the type of unresolved identifiers and missing
	// operands. It never satisfies an operator, so one bad leaf is always
	// reported rather than silently accepted.
	Unidentified BoundType = iota
	String
	Bool
	Number
)

func (t BoundType) String() string {
	switch t {
	case Unidentified:
		return "unidentified"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Number:
		return "number"
	}
	return fmt.Sprintf("BoundType(%d)", int(t))
}

// BoundExpr is implemented by every node of the typed tree.
type BoundExpr interface {
	boundNode()
	Type() BoundType
	String() string
}

// BoundStringLiteral keeps the unquoted text of a string literal.
type BoundStringLiteral struct {
	Text string
}

func (*BoundStringLiteral) boundNode()       {}
func (*BoundStringLiteral) Type() BoundType  { return String }
func (b *BoundStringLiteral) String() string { return fmt.Sprintf("%q", b.Text) }

// BoundBoolLiteral keeps "true" or "false"; parsing waits for evaluation.
type BoundBoolLiteral struct {
	Text string
}

func (*BoundBoolLiteral) boundNode()       {}
func (*BoundBoolLiteral) Type() BoundType  { return Bool }
func (b *BoundBoolLiteral) String() string { return b.Text }

// BoundNumberLiteral keeps the literal text, e.g. "1." or "2.50".
type BoundNumberLiteral struct {
	Text string
}

func (*BoundNumberLiteral) boundNode()       {}
func (*BoundNumberLiteral) Type() BoundType  { return Number }
func (b *BoundNumberLiteral) String() string { return b.Text }

type BoundIdentifier struct {
	Name string
}

func (*BoundIdentifier) boundNode()       {}
func (*BoundIdentifier) Type() BoundType  { return Unidentified }
func (b *BoundIdentifier) String() string { return b.Name }

// BoundMissing mirrors a MissingExpr.
type BoundMissing struct{}

func (*BoundMissing) boundNode()      {}
func (*BoundMissing) Type() BoundType { return Unidentified }
func (*BoundMissing) String() string  { return "<missing>" }

// BoundUnaryKind is the resolved operation of a BoundUnary.
type BoundUnaryKind int

const (
	Identity BoundUnaryKind = iota
	Negation
	LogicalNot
)

func (k BoundUnaryKind) String() string {
	switch k {
	case Identity:
		return "Identity"
	case Negation:
		return "Negation"
	case LogicalNot:
		return "LogicalNot"
	}
	return fmt.Sprintf("BoundUnaryKind(%d)", int(k))
}

type BoundUnary struct {
	Kind    BoundUnaryKind
	Operand BoundExpr
}

func (*BoundUnary) boundNode() {}

// Type is fixed by the operator, whatever the operand turned out to be.
func (b *BoundUnary) Type() BoundType {
	if b.Kind == LogicalNot {
		return Bool
	}
	return Number
}

func (b *BoundUnary) String() string { return fmt.Sprintf("%s(%s)", b.Kind, b.Operand) }

// BoundBinaryKind is the resolved operation of a BoundBinary.
type BoundBinaryKind int

const (
	LogicalAnd BoundBinaryKind = iota
	LogicalOr
	Addition
	Subtraction
	Multiplication
	Division
	Remainder
	Equality
	Inequality
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

var boundBinaryKindNames = [...]string{
	LogicalAnd:         "LogicalAnd",
	LogicalOr:          "LogicalOr",
	Addition:           "Addition",
	Subtraction:        "Subtraction",
	Multiplication:     "Multiplication",
	Division:           "Division",
	Remainder:          "Remainder",
	Equality:           "Equality",
	Inequality:         "Inequality",
	LessThan:           "LessThan",
	LessThanOrEqual:    "LessThanOrEqual",
	GreaterThan:        "GreaterThan",
	GreaterThanOrEqual: "GreaterThanOrEqual",
}

func (k BoundBinaryKind) String() string {
	if int(k) >= 0 && int(k) < len(boundBinaryKindNames) {
		return boundBinaryKindNames[k]
	}
	return fmt.Sprintf("BoundBinaryKind(%d)", int(k))
}

type BoundBinary struct {
	Kind  BoundBinaryKind
	Left  BoundExpr
	Right BoundExpr
}

func (*BoundBinary) boundNode() {}

// Type is Number for arithmetic and Bool for everything else.
func (b *BoundBinary) Type() BoundType {
	switch b.Kind {
	case Addition, Subtraction, Multiplication, Division, Remainder:
		return Number
	}
	return Bool
}

func (b *BoundBinary) String() string {
	return fmt.Sprintf("%s(%s, %s)", b.Kind, b.Left, b.Right)
}

type BoundParen struct {
	Inner BoundExpr
}

func (*BoundParen) boundNode()        {}
func (b *BoundParen) Type() BoundType { return b.Inner.Type() }
func (b *BoundParen) String() string  { return fmt.Sprintf("[%s]", b.Inner) }
