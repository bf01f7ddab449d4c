package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"collage/pkg/compilation"
	"collage/pkg/config"
	"collage/pkg/runtime"
	"collage/pkg/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run evaluates one expression and returns the exit status: 0 on success,
// 1 when the expression could not be evaluated, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("collage", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (default $COLLAGE_CONFIG or ~/.collage.yml)")
	verbose := fs.Bool("v", false, "trace each pipeline stage to stderr")
	expr := fs.String("e", "", "expression to evaluate")
	inPath := fs.String("in", "", "file containing the expression to evaluate")
	initPath := fs.String("init-config", "", "write the effective config to this path and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: collage [-config path] [-v] [-e expr | -in file | expr...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if *initPath != "" {
		if err := cfg.Write(*initPath); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s\n", *initPath)
		return 0
	}

	sources := 0
	for _, set := range []bool{*expr != "", *inPath != "", fs.NArg() > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		fmt.Fprintln(stderr, "nothing to do: provide exactly one of -e, -in or an expression")
		fs.Usage()
		return 2
	}

	var src string
	switch {
	case *expr != "":
		src = *expr
	case *inPath != "":
		data, _, err := utils.ReadSource(*inPath)
		if err != nil {
			fmt.Fprintf(stderr, "failed to read input file %q: %v\n", *inPath, err)
			return 1
		}
		src = data
	default:
		src = strings.Join(fs.Args(), " ")
	}

	var opts []compilation.Option
	if *verbose || cfg.Verbose {
		opts = append(opts, compilation.WithLogger(log.New(stderr, "collage: ", 0)))
	}
	c := compilation.New(src, opts...)
	v, err := c.Eval()
	switch {
	case errors.Is(err, runtime.ErrNotEvaluated):
		fmt.Fprint(stderr, c.Diagnostics())
		return 1
	case err != nil:
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, v)
	return 0
}
