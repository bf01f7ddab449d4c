package compiler

import (
	"fmt"

	"collage/pkg/diagnostics"
)

// operandRule describes what an operator accepts and how it is named in
// diagnostics ("Cannot apply <name> on type ...").
type operandRule struct {
	name    string
	accepts func(left, right BoundType) bool
}

func both(t BoundType) func(left, right BoundType) bool {
	return func(left, right BoundType) bool { return left == t && right == t }
}

// bothIdentified accepts operands of any known types, matching or not.
func bothIdentified(left, right BoundType) bool {
	return left != Unidentified && right != Unidentified
}

var unaryRules = map[UnaryOperator]struct {
	kind    BoundUnaryKind
	name    string
	operand BoundType
}{
	Positive: {Identity, "positive", Number},
	Negative: {Negation, "negative", Number},
	Not:      {LogicalNot, "logical NOT", Bool},
}

var binaryRules = map[BinaryOperator]struct {
	kind BoundBinaryKind
	rule operandRule
}{
	And:          {LogicalAnd, operandRule{"logical AND", both(Bool)}},
	Or:           {LogicalOr, operandRule{"logical OR", both(Bool)}},
	Add:          {Addition, operandRule{"addition", both(Number)}},
	Sub:          {Subtraction, operandRule{"subtraction", both(Number)}},
	Mul:          {Multiplication, operandRule{"multiplication", both(Number)}},
	Div:          {Division, operandRule{"division", both(Number)}},
	Rem:          {Remainder, operandRule{"remainder", both(Number)}},
	Equal:        {Equality, operandRule{"equality", bothIdentified}},
	NotEqual:     {Inequality, operandRule{"inequality", bothIdentified}},
	Less:         {LessThan, operandRule{"less than", both(Number)}},
	LessEqual:    {LessThanOrEqual, operandRule{"less than or equal", both(Number)}},
	Greater:      {GreaterThan, operandRule{"greater than", both(Number)}},
	GreaterEqual: {GreaterThanOrEqual, operandRule{"greater than or equal", both(Number)}},
}

// Binder walks an untyped tree and produces the parallel typed tree,
// reporting every operator/operand mismatch it finds.
type Binder struct {
	diags *diagnostics.Bag
}

func NewBinder(diags *diagnostics.Bag) *Binder {
	return &Binder{diags: diags}
}

// Bind returns nil when earlier stages already reported a problem or when
// there is nothing to bind. Type errors are reported but never stop the
// tree from being built, so one pass surfaces all of them.
func (b *Binder) Bind(expr Expr) BoundExpr {
	if !b.diags.Success() || expr == nil {
		return nil
	}
	return b.bindExpr(expr)
}

func (b *Binder) bindExpr(expr Expr) BoundExpr {
	switch e := expr.(type) {
	case *StringLiteral:
		return &BoundStringLiteral{Text: e.Token.Lexeme}
	case *BoolLiteral:
		return &BoundBoolLiteral{Text: e.Token.Lexeme}
	case *NumberLiteral:
		return &BoundNumberLiteral{Text: e.Token.Lexeme}
	case *Identifier:
		return &BoundIdentifier{Name: e.Token.Lexeme}
	case *MissingExpr:
		return &BoundMissing{}
	case *UnaryExpr:
		return b.bindUnary(e)
	case *BinaryExpr:
		return b.bindBinary(e)
	case *ParenExpr:
		return &BoundParen{Inner: b.bindOperand(e.Inner)}
	default:
		panic(fmt.Sprintf("binder: unhandled syntax node %T", expr))
	}
}

// bindOperand maps an absent operand to BoundMissing so that hand-built
// trees with nil slots still bind.
func (b *Binder) bindOperand(expr Expr) BoundExpr {
	if expr == nil {
		return &BoundMissing{}
	}
	return b.bindExpr(expr)
}

func (b *Binder) bindUnary(e *UnaryExpr) BoundExpr {
	rule, ok := unaryRules[e.Op]
	if !ok {
		panic(fmt.Sprintf("binder: unknown unary operator %v", e.Op))
	}
	operand := b.bindOperand(e.Operand)
	if t := operand.Type(); t != rule.operand {
		b.diags.Errorf("Cannot apply %s on type %q", rule.name, t)
	}
	return &BoundUnary{Kind: rule.kind, Operand: operand}
}

func (b *Binder) bindBinary(e *BinaryExpr) BoundExpr {
	entry, ok := binaryRules[e.Op]
	if !ok {
		panic(fmt.Sprintf("binder: unknown binary operator %v", e.Op))
	}
	left := b.bindOperand(e.Left)
	right := b.bindOperand(e.Right)
	lt, rt := left.Type(), right.Type()
	if !entry.rule.accepts(lt, rt) {
		b.diags.Errorf("Cannot apply %s on type %q and %q", entry.rule.name, lt, rt)
	}
	return &BoundBinary{Kind: entry.kind, Left: left, Right: right}
}

// Bind is a convenience wrapper around NewBinder(diags).Bind(expr).
func Bind(expr Expr, diags *diagnostics.Bag) BoundExpr {
	return NewBinder(diags).Bind(expr)
}
