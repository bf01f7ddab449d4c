// Package compiler provides the front half of the collage expression
// pipeline: a grapheme-aware lexer, a precedence-climbing parser and a
// binder that type-checks the syntax tree.
//
// Pipeline: source → Lex → Parse → Bind → runtime.Evaluate
//
// Every stage reports problems to a shared *diagnostics.Bag instead of
// returning errors, and keeps going where it can so that one request
// surfaces as many diagnostics as possible.
package compiler
