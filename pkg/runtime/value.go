// Package runtime holds the values produced by evaluating a bound tree and
// the evaluator itself.
package runtime

import (
	"math"
	"strconv"
)

// Kind names the variant of a Value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the result of evaluation. The set of implementations is closed:
// StringValue, BoolValue and NumberValue.
type Value interface {
	value()
	Kind() Kind
	// String returns the display form used for printing and for equality.
	String() string
}

type StringValue string

type BoolValue bool

type NumberValue float64

func (StringValue) value() {}
func (BoolValue) value()   {}
func (NumberValue) value() {}

func (StringValue) Kind() Kind { return KindString }
func (BoolValue) Kind() Kind   { return KindBool }
func (NumberValue) Kind() Kind { return KindNumber }

func (s StringValue) String() string { return string(s) }

func (b BoolValue) String() string { return strconv.FormatBool(bool(b)) }

// String formats the number in its shortest decimal form: 1, -4, 0.5.
func (n NumberValue) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0" // also -0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
