package runtime

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"collage/pkg/compiler"
	"collage/pkg/diagnostics"
)

var (
	// ErrNotEvaluated is returned when earlier stages reported diagnostics.
	ErrNotEvaluated = errors.New("expression not evaluated: compilation has diagnostics")
	// ErrInternal marks a bound tree the binder should never have produced.
	ErrInternal = errors.New("internal evaluator error")
)

func internalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}

// Evaluate computes the value of a bound tree. Nothing is evaluated unless
// status reports success.
func Evaluate(expr compiler.BoundExpr, status diagnostics.Status) (Value, error) {
	if !status.Success() {
		return nil, ErrNotEvaluated
	}
	if expr == nil {
		return nil, internalf("nothing to evaluate")
	}
	return eval(expr)
}

func eval(expr compiler.BoundExpr) (Value, error) {
	switch e := expr.(type) {
	case *compiler.BoundStringLiteral:
		return StringValue(e.Text), nil

	case *compiler.BoundBoolLiteral:
		switch e.Text {
		case "true":
			return BoolValue(true), nil
		case "false":
			return BoolValue(false), nil
		}
		return nil, internalf("bad bool literal %q", e.Text)

	case *compiler.BoundNumberLiteral:
		// Literals too large for a float64 evaluate to inf.
		f, err := strconv.ParseFloat(e.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, internalf("bad number literal %q: %v", e.Text, err)
		}
		return NumberValue(f), nil

	case *compiler.BoundIdentifier:
		return nil, internalf("unresolved identifier %q", e.Name)

	case *compiler.BoundMissing:
		return nil, internalf("missing operand")

	case *compiler.BoundParen:
		if e.Inner == nil {
			return nil, internalf("empty parenthesis")
		}
		return eval(e.Inner)

	case *compiler.BoundUnary:
		return evalUnary(e)

	case *compiler.BoundBinary:
		return evalBinary(e)

	case nil:
		return nil, internalf("nil node")
	}
	return nil, internalf("unhandled bound node %T", expr)
}

func evalUnary(e *compiler.BoundUnary) (Value, error) {
	if e.Operand == nil {
		return nil, internalf("%s without operand", e.Kind)
	}
	operand, err := eval(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Kind {
	case compiler.Identity, compiler.Negation:
		n, ok := operand.(NumberValue)
		if !ok {
			return nil, internalf("%s on %s", e.Kind, operand.Kind())
		}
		if e.Kind == compiler.Negation {
			return -n, nil
		}
		return n, nil
	case compiler.LogicalNot:
		b, ok := operand.(BoolValue)
		if !ok {
			return nil, internalf("%s on %s", e.Kind, operand.Kind())
		}
		return !b, nil
	}
	return nil, internalf("unknown unary kind %s", e.Kind)
}

// evalBinary evaluates both operands, left first, before applying the
// operator; && and || do not short-circuit.
func evalBinary(e *compiler.BoundBinary) (Value, error) {
	if e.Left == nil || e.Right == nil {
		return nil, internalf("%s without operand", e.Kind)
	}
	left, err := eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Kind {
	case compiler.Equality:
		return BoolValue(left.String() == right.String()), nil
	case compiler.Inequality:
		return BoolValue(left.String() != right.String()), nil

	case compiler.LogicalAnd, compiler.LogicalOr:
		l, lok := left.(BoolValue)
		r, rok := right.(BoolValue)
		if !lok || !rok {
			return nil, internalf("%s on %s and %s", e.Kind, left.Kind(), right.Kind())
		}
		if e.Kind == compiler.LogicalAnd {
			return l && r, nil
		}
		return l || r, nil
	}

	l, lok := left.(NumberValue)
	r, rok := right.(NumberValue)
	if !lok || !rok {
		return nil, internalf("%s on %s and %s", e.Kind, left.Kind(), right.Kind())
	}
	switch e.Kind {
	case compiler.Addition:
		return l + r, nil
	case compiler.Subtraction:
		return l - r, nil
	case compiler.Multiplication:
		return l * r, nil
	case compiler.Division:
		return l / r, nil
	case compiler.Remainder:
		return NumberValue(math.Mod(float64(l), float64(r))), nil
	case compiler.LessThan:
		return BoolValue(l < r), nil
	case compiler.LessThanOrEqual:
		return BoolValue(l <= r), nil
	case compiler.GreaterThan:
		return BoolValue(l > r), nil
	case compiler.GreaterThanOrEqual:
		return BoolValue(l >= r), nil
	}
	return nil, internalf("unknown binary kind %s", e.Kind)
}
