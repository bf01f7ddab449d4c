package compiler

import (
	"fmt"
	"io"
)

// FprintTree writes the syntax tree rooted at expr, one node per line:
//
//	└── BinaryExpr +
//	    ├── NumberLiteral 1
//	    └── NumberLiteral 2
func FprintTree(w io.Writer, expr Expr) error {
	if expr == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	return printNode(w, expr, syntaxNode, "", true)
}

// FprintBoundTree is FprintTree for the typed tree; each line carries the
// node's BoundType.
func FprintBoundTree(w io.Writer, expr BoundExpr) error {
	if expr == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	return printNode(w, expr, boundNode, "", true)
}

type describeFunc[T any] func(T) (label string, children []T)

func printNode[T any](w io.Writer, node T, describe describeFunc[T], indent string, last bool) error {
	marker, childIndent := "├── ", "│   "
	if last {
		marker, childIndent = "└── ", "    "
	}
	label, children := describe(node)
	if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, marker, label); err != nil {
		return err
	}
	for i, child := range children {
		if err := printNode(w, child, describe, indent+childIndent, i == len(children)-1); err != nil {
			return err
		}
	}
	return nil
}

func syntaxNode(expr Expr) (string, []Expr) {
	switch e := expr.(type) {
	case *StringLiteral:
		return fmt.Sprintf("StringLiteral %q", e.Token.Lexeme), nil
	case *BoolLiteral:
		return "BoolLiteral " + e.Token.Lexeme, nil
	case *NumberLiteral:
		return "NumberLiteral " + e.Token.Lexeme, nil
	case *Identifier:
		return "Identifier " + e.Token.Lexeme, nil
	case *MissingExpr:
		return "Missing", nil
	case *UnaryExpr:
		return "UnaryExpr " + e.Op.String(), []Expr{orMissing(e.Operand)}
	case *BinaryExpr:
		return "BinaryExpr " + e.Op.String(), []Expr{orMissing(e.Left), orMissing(e.Right)}
	case *ParenExpr:
		return "ParenExpr", []Expr{orMissing(e.Inner)}
	}
	return fmt.Sprintf("%T", expr), nil
}

func orMissing(expr Expr) Expr {
	if expr == nil {
		return &MissingExpr{}
	}
	return expr
}

func boundNode(expr BoundExpr) (string, []BoundExpr) {
	switch e := expr.(type) {
	case *BoundStringLiteral:
		return fmt.Sprintf("Literal %q : %s", e.Text, e.Type()), nil
	case *BoundBoolLiteral:
		return fmt.Sprintf("Bool %s : %s", e.Text, e.Type()), nil
	case *BoundNumberLiteral:
		return fmt.Sprintf("Number %s : %s", e.Text, e.Type()), nil
	case *BoundIdentifier:
		return fmt.Sprintf("Identifier %s : %s", e.Name, e.Type()), nil
	case *BoundMissing:
		return fmt.Sprintf("Missing : %s", e.Type()), nil
	case *BoundUnary:
		return fmt.Sprintf("%s : %s", e.Kind, e.Type()), []BoundExpr{e.Operand}
	case *BoundBinary:
		return fmt.Sprintf("%s : %s", e.Kind, e.Type()), []BoundExpr{e.Left, e.Right}
	case *BoundParen:
		return fmt.Sprintf("Parenthesis : %s", e.Type()), []BoundExpr{e.Inner}
	}
	return fmt.Sprintf("%T", expr), nil
}
