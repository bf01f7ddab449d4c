// Package compilation runs one source text through the lexer, parser,
// binder and evaluator with a single diagnostics collector.
package compilation

import (
	"log"

	"collage/pkg/compiler"
	"collage/pkg/diagnostics"
	"collage/pkg/runtime"
)

// Compilation is a single request. It is not reused: every New starts from
// an empty collector, so running the same source twice gives the same result.
type Compilation struct {
	source string
	diags  *diagnostics.Bag
	tokens []compiler.Token
	logger *log.Logger
}

type Option func(*Compilation)

// WithLogger traces each stage to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Compilation) {
		c.logger = l
	}
}

func New(source string, opts ...Option) *Compilation {
	c := &Compilation{source: source, diags: diagnostics.New()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Compilation) tracef(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func (c *Compilation) Source() string { return c.source }

// Tokens returns the tokens recorded by the last LexParse.
func (c *Compilation) Tokens() []compiler.Token { return c.tokens }

func (c *Compilation) Diagnostics() *diagnostics.Bag { return c.diags }

func (c *Compilation) Success() bool { return c.diags.Success() }

// LexParse runs the lexer and the parser. The tree is never nil.
func (c *Compilation) LexParse() *compiler.Tree {
	c.tokens = compiler.Lex(c.source, c.diags)
	c.tracef("lex: %d tokens, %d diagnostics", len(c.tokens), c.diags.Len())

	tree := compiler.Parse(c.tokens, c.diags)
	if tree.Root == nil {
		c.tracef("parse: empty")
	} else {
		c.tracef("parse: %s", tree.Root)
	}
	return tree
}

// Bind type-checks tree. It returns nil when earlier stages failed.
func (c *Compilation) Bind(tree *compiler.Tree) compiler.BoundExpr {
	if tree == nil {
		return nil
	}
	bound := compiler.Bind(tree.Root, c.diags)
	if bound != nil {
		c.tracef("bind: %s : %s", bound, bound.Type())
	}
	if !c.diags.Success() {
		c.tracef("bind: %d diagnostics", c.diags.Len())
	}
	return bound
}

func (c *Compilation) Evaluate(bound compiler.BoundExpr) (runtime.Value, error) {
	v, err := runtime.Evaluate(bound, c.diags)
	if err != nil {
		c.tracef("eval: %v", err)
		return nil, err
	}
	c.tracef("eval: %s %s", v.Kind(), v)
	return v, nil
}

// Eval runs every stage. When the source produced diagnostics the error is
// runtime.ErrNotEvaluated and the details are in Diagnostics.
func (c *Compilation) Eval() (runtime.Value, error) {
	return c.Evaluate(c.Bind(c.LexParse()))
}
