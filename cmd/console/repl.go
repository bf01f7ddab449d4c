package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"collage/pkg/compilation"
	"collage/pkg/compiler"
	"collage/pkg/config"
)

const helpText = `Commands:
  :help          show this help
  :tokens <expr> print the tokens of <expr>
  :tree <expr>   print the syntax and bound trees of <expr>
  :cls           clear the screen
  :exit          leave the console
Anything else is evaluated as an expression.`

const clearScreen = "\x1b[2J\x1b[1;1H"

// session evaluates console input; it owns no terminal state, so the liner
// loop in main can be replaced by plain writers in tests.
type session struct {
	cfg    *config.Config
	out    io.Writer
	errOut io.Writer
	logger *log.Logger
}

func newSession(cfg *config.Config, out, errOut io.Writer) *session {
	s := &session{cfg: cfg, out: out, errOut: errOut}
	if cfg.Verbose {
		s.logger = log.New(errOut, "trace: ", 0)
	}
	return s
}

func (s *session) yellow(text string) string {
	if !s.cfg.Color {
		return text
	}
	return "\x1b[33m" + text + "\x1b[0m"
}

func (s *session) red(text string) string {
	if !s.cfg.Color {
		return text
	}
	return "\x1b[31m" + text + "\x1b[0m"
}

func (s *session) compile(src string) *compilation.Compilation {
	if s.logger != nil {
		return compilation.New(src, compilation.WithLogger(s.logger))
	}
	return compilation.New(src)
}

// handle processes one input line and reports whether the console should
// exit.
func (s *session) handle(line string) (quit bool) {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	if strings.HasPrefix(input, ":") {
		cmd, arg, _ := strings.Cut(input, " ")
		arg = strings.TrimSpace(arg)
		switch strings.ToLower(cmd) {
		case ":exit":
			return true
		case ":cls":
			fmt.Fprint(s.out, clearScreen)
		case ":help":
			fmt.Fprintln(s.out, helpText)
		case ":tokens":
			s.printTokens(s.compile(arg))
		case ":tree":
			s.printTrees(s.compile(arg))
		default:
			fmt.Fprintln(s.errOut, s.red(fmt.Sprintf("unknown command %s. Type :help for a list.", cmd)))
		}
		return false
	}

	s.eval(input)
	return false
}

func (s *session) eval(src string) {
	c := s.compile(src)
	tree := c.LexParse()
	if s.cfg.ShowTokens {
		s.writeTokens(c)
	}
	bound := c.Bind(tree)
	if s.cfg.ShowTree {
		s.writeTrees(tree, bound)
	}

	v, err := c.Evaluate(bound)
	if !c.Success() {
		s.printDiagnostics(c)
		return
	}
	if err != nil {
		fmt.Fprintln(s.errOut, s.red(err.Error()))
		return
	}
	fmt.Fprintln(s.out, s.yellow(v.String()))
}

func (s *session) printDiagnostics(c *compilation.Compilation) {
	for _, d := range c.Diagnostics().Diagnostics() {
		fmt.Fprintln(s.errOut, s.red(d.String()))
	}
}

func (s *session) printTokens(c *compilation.Compilation) {
	c.LexParse()
	s.writeTokens(c)
	if !c.Success() {
		s.printDiagnostics(c)
	}
}

func (s *session) writeTokens(c *compilation.Compilation) {
	for _, tok := range c.Tokens() {
		fmt.Fprintln(s.out, " ", tok)
	}
}

func (s *session) printTrees(c *compilation.Compilation) {
	tree := c.LexParse()
	s.writeTrees(tree, c.Bind(tree))
	if !c.Success() {
		s.printDiagnostics(c)
	}
}

func (s *session) writeTrees(tree *compiler.Tree, bound compiler.BoundExpr) {
	fmt.Fprintln(s.out, "Syntax tree")
	_ = compiler.FprintTree(s.out, tree.Root)
	fmt.Fprintln(s.out, "Bound tree")
	_ = compiler.FprintBoundTree(s.out, bound)
}
