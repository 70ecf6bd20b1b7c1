// Package value defines the runtime values produced by evaluation.
package value

import (
	"fmt"
	"math"
	"strconv"

	"github.com/KimNorgaard/go-lox/token"
)

// Value is the result of evaluating an expression. The set of
// implementations is closed: Number, String, Boolean and Nil.
type Value interface {
	// String returns the form written by print and used in concatenation.
	String() string
	value()
}

// Number is a double-precision number.
type Number float64

// String is a string.
type String string

// Boolean is true or false.
type Boolean bool

// Nil is the absence of a value.
type Nil struct{}

func (Number) value()  {}
func (String) value()  {}
func (Boolean) value() {}
func (Nil) value()     {}

func (n Number) String() string {
	switch {
	case math.IsInf(float64(n), 1):
		return "inf"
	case math.IsInf(float64(n), -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s String) String() string  { return string(s) }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (Nil) String() string       { return "nil" }

// FromLiteral converts a scanned constant into its runtime value.
func FromLiteral(lit token.Literal) Value {
	switch l := lit.(type) {
	case token.Number:
		return Number(l)
	case token.String:
		return String(l)
	case token.Bool:
		return Boolean(l)
	case token.Nil, nil:
		return Nil{}
	}
	panic(fmt.Sprintf("value: unknown literal %T", lit))
}

// Truthy reports whether v counts as true in a condition. Only nil and false
// are falsy; zero and the empty string are truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	}
	return true
}

// Equal reports whether a and b are the same kind and hold the same value.
// Values of different kinds are never equal.
func Equal(a, b Value) bool {
	return a == b
}
