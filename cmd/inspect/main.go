package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"collage/pkg/compilation"
	"collage/pkg/compiler"
	"collage/pkg/runtime"
	"collage/pkg/utils"
)

const testSource = `(1 + 2) * 3 >= -4 == !false`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		data, fullPath, err := utils.ReadSource(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		fmt.Printf("File: %s\n", fullPath)
		src = data
	}
	os.Exit(inspect(os.Stdout, src))
}

// inspect dumps every stage of the pipeline for src and returns the exit
// status: 0 when a value was produced, 1 otherwise.
func inspect(w io.Writer, src string) int {
	c := compilation.New(src)
	fmt.Fprintf(w, "Source:\n%s\n\n", c.Source())

	tree := c.LexParse()

	fmt.Fprintf(w, "Tokens (%d)\n", len(c.Tokens()))
	for _, tok := range c.Tokens() {
		fmt.Fprintln(w, " ", tok)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Syntax tree")
	_ = compiler.FprintTree(w, tree.Root)
	fmt.Fprintln(w)

	bound := c.Bind(tree)
	fmt.Fprintln(w, "Bound tree")
	_ = compiler.FprintBoundTree(w, bound)
	fmt.Fprintln(w)

	v, err := c.Evaluate(bound)

	fmt.Fprintf(w, "Diagnostics (%d)\n", c.Diagnostics().Len())
	fmt.Fprint(w, c.Diagnostics())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Result")
	switch {
	case errors.Is(err, runtime.ErrNotEvaluated):
		fmt.Fprintln(w, "  <not evaluated>")
		return 1
	case err != nil:
		fmt.Fprintln(w, " ", err)
		return 1
	}
	fmt.Fprintf(w, "  %s (%s)\n", v, v.Kind())
	return 0
}
