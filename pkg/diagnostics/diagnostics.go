// Package diagnostics collects the warnings and errors reported while a
// single source string moves through the lexer, parser, binder and evaluator.
package diagnostics

import (
	"errors"
	"fmt"
	"strings"
)

// Severity tags a Diagnostic as a warning or an error.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// String renders the diagnostic the way the front ends print it, e.g.
//
//	Error: only one dot is allowed for float numbers
func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message
}

// Status is the read-only view of a Bag handed to the evaluator.
type Status interface {
	Success() bool
	Diagnostics() []Diagnostic
}

// Bag is an append-only, insertion-ordered log of diagnostics.
// A Bag lives for exactly one compilation request.
type Bag struct {
	items []Diagnostic
}

func New() *Bag {
	return &Bag{}
}

func (b *Bag) Warning(msg string) {
	b.items = append(b.items, Diagnostic{Severity: Warning, Message: msg})
}

func (b *Bag) Warningf(format string, args ...any) {
	b.Warning(fmt.Sprintf(format, args...))
}

func (b *Bag) Error(msg string) {
	b.items = append(b.items, Diagnostic{Severity: Error, Message: msg})
}

func (b *Bag) Errorf(format string, args ...any) {
	b.Error(fmt.Sprintf(format, args...))
}

// Success reports whether nothing has been recorded. Warnings count too.
func (b *Bag) Success() bool {
	return len(b.items) == 0
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Diagnostics returns a copy of the recorded entries in detection order.
func (b *Bag) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// Err folds the bag into a single error, one rendered diagnostic per line.
// It returns nil when the bag is empty.
func (b *Bag) Err() error {
	if b.Success() {
		return nil
	}
	lines := make([]string, len(b.items))
	for i, d := range b.items {
		lines[i] = d.String()
	}
	return errors.New(strings.Join(lines, "\n"))
}

func (b *Bag) String() string {
	var sb strings.Builder
	for _, d := range b.items {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
