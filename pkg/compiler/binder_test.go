package compiler

import (
	"testing"

	"collage/pkg/diagnostics"
)

// bindSource runs the front end over src and returns the bound tree.
func bindSource(t *testing.T, src string) (BoundExpr, *diagnostics.Bag) {
	t.Helper()
	tree, diags := parseSource(t, src)
	if !diags.Success() {
		t.Fatalf("Parse failed: %v", diags.Err())
	}
	return Bind(tree.Root, diags), diags
}

func TestBind(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		typ      BoundType
	}{
		{"1", "1", Number},
		{"1.", "1.", Number},
		{`"Hi"`, `"Hi"`, String},
		{"true", "true", Bool},
		{"+1", "Identity(1)", Number},
		{"-1", "Negation(1)", Number},
		{"!false", "LogicalNot(false)", Bool},
		{"1 + 2 * 3", "Addition(1, Multiplication(2, 3))", Number},
		{"7 - 2 / 1 % 3", "Subtraction(7, Remainder(Division(2, 1), 3))", Number},
		{"true && false || true", "LogicalOr(LogicalAnd(true, false), true)", Bool},
		{"(1 + 2)", "[Addition(1, 2)]", Number},
		{`"a" == "b"`, `Equality("a", "b")`, Bool},
		{"true != false", "Inequality(true, false)", Bool},
		{"1 < 2", "LessThan(1, 2)", Bool},
		{"1 <= 2", "LessThanOrEqual(1, 2)", Bool},
		{"1 > 2", "GreaterThan(1, 2)", Bool},
		{"1 >= 2", "GreaterThanOrEqual(1, 2)", Bool},
		{"1 + 1 == 2", "Equality(Addition(1, 1), 2)", Bool},
		{"(1 < 2) == true", "Equality([LessThan(1, 2)], true)", Bool},
		{`1 == "1"`, `Equality(1, "1")`, Bool},
		{"1 != true", "Inequality(1, true)", Bool},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			bound, diags := bindSource(t, tt.input)
			if !diags.Success() {
				t.Fatalf("Bind failed: %v", diags.Err())
			}
			if got := bound.String(); got != tt.expected {
				t.Errorf("Bind(%q) = %s, want %s", tt.input, got, tt.expected)
			}
			if got := bound.Type(); got != tt.typ {
				t.Errorf("Bind(%q).Type() = %s, want %s", tt.input, got, tt.typ)
			}
		})
	}
}

func TestBindTypeErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"1 || true", []string{`Cannot apply logical OR on type "number" and "bool"`}},
		{"1 && 2", []string{`Cannot apply logical AND on type "number" and "number"`}},
		{`"a" + "b"`, []string{`Cannot apply addition on type "string" and "string"`}},
		{"true - 1", []string{`Cannot apply subtraction on type "bool" and "number"`}},
		{`2 * "x"`, []string{`Cannot apply multiplication on type "number" and "string"`}},
		{"1 / true", []string{`Cannot apply division on type "number" and "bool"`}},
		{"false % 2", []string{`Cannot apply remainder on type "bool" and "number"`}},
		{`"a" < "b"`, []string{`Cannot apply less than on type "string" and "string"`}},
		{"true <= 1", []string{`Cannot apply less than or equal on type "bool" and "number"`}},
		{"1 > false", []string{`Cannot apply greater than on type "number" and "bool"`}},
		{`1 >= ""`, []string{`Cannot apply greater than or equal on type "number" and "string"`}},
		{"+true", []string{`Cannot apply positive on type "bool"`}},
		{`-"a"`, []string{`Cannot apply negative on type "string"`}},
		{"!1", []string{`Cannot apply logical NOT on type "number"`}},
		{"x + 1", []string{`Cannot apply addition on type "unidentified" and "number"`}},
		{"x == x", []string{`Cannot apply equality on type "unidentified" and "unidentified"`}},
		{"x != 1", []string{`Cannot apply inequality on type "unidentified" and "number"`}},
		{"-y", []string{`Cannot apply negative on type "unidentified"`}},
		{
			"(true || 1) + !2",
			[]string{
				`Cannot apply logical OR on type "bool" and "number"`,
				`Cannot apply logical NOT on type "number"`,
				`Cannot apply addition on type "bool" and "bool"`,
			},
		},
		{
			"-true == !1",
			[]string{
				`Cannot apply negative on type "bool"`,
				`Cannot apply logical NOT on type "number"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			bound, diags := bindSource(t, tt.input)
			if bound == nil {
				t.Fatal("expected a bound tree even with type errors")
			}
			got := diags.Diagnostics()
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d diagnostics, got %d: %v", len(tt.expected), len(got), got)
			}
			for i, want := range tt.expected {
				if got[i].Severity != diagnostics.Error || got[i].Message != want {
					t.Errorf("diagnostic %d\nGot:      %v\nExpected: Error: %s", i, got[i], want)
				}
			}
		})
	}
}

func TestBindSkipsAfterEarlierFailure(t *testing.T) {
	diags := diagnostics.New()
	diags.Error("earlier failure")
	expr := &NumberLiteral{Token: Token{Type: NUMBER, Lexeme: "1", Line: 1, Column: 1}}

	if bound := Bind(expr, diags); bound != nil {
		t.Errorf("expected nil bound tree, got %v", bound)
	}
	if diags.Len() != 1 {
		t.Errorf("binder added diagnostics: %v", diags.Diagnostics())
	}
}

func TestBindNilRoot(t *testing.T) {
	diags := diagnostics.New()
	if bound := Bind(nil, diags); bound != nil {
		t.Errorf("expected nil, got %v", bound)
	}
	if !diags.Success() {
		t.Errorf("unexpected diagnostics: %v", diags.Err())
	}
}

func TestBindNilOperandBecomesMissing(t *testing.T) {
	diags := diagnostics.New()
	expr := &BinaryExpr{
		Op:    Add,
		Right: &NumberLiteral{Token: Token{Type: NUMBER, Lexeme: "2"}},
	}
	bound := Bind(expr, diags)

	bin, ok := bound.(*BoundBinary)
	if !ok {
		t.Fatalf("expected *BoundBinary, got %T", bound)
	}
	if _, ok := bin.Left.(*BoundMissing); !ok {
		t.Errorf("expected *BoundMissing left operand, got %T", bin.Left)
	}
	want := `Error: Cannot apply addition on type "unidentified" and "number"`
	if got := diags.Err(); got == nil || got.Error() != want {
		t.Errorf("diagnostics = %v, want %s", got, want)
	}
}
