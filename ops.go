package rpn

import (
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// operator is an entry in the operator vocabulary.
type operator struct {
	name string
	kind Kind
	// Exactly one of these is set, according to kind.
	bin func(a, b float64) float64
	un  func(x float64) float64
	red func(v []float64) float64
	// ident is the result of a reduction over an empty stack.
	ident string
}

// need returns the number of operands the operator pops. Reductions pop
// whatever is present, so they need nothing.
func (op *operator) need() int {
	switch op.kind {
	case Binary:
		return 2
	case Unary, Postfix:
		return 1
	default:
		return 0
	}
}

var operators = map[string]*operator{
	"+": {name: "+", kind: Binary, bin: func(a, b float64) float64 { return a + b }},
	"-": {name: "-", kind: Binary, bin: func(a, b float64) float64 { return a - b }},
	"*": {name: "*", kind: Binary, bin: func(a, b float64) float64 { return a * b }},
	"/": {name: "/", kind: Binary, bin: func(a, b float64) float64 { return a / b }},
	"^": {name: "^", kind: Binary, bin: math.Pow},

	"sqrt": {name: "sqrt", kind: Unary, un: math.Sqrt},
	"log":  {name: "log", kind: Unary, un: math.Log10},
	"abs":  {name: "abs", kind: Unary, un: math.Abs},

	"!": {name: "!", kind: Postfix, un: Factorial},

	"++": {name: "++", kind: Reduction, red: sum[float64], ident: "0"},
	"**": {name: "**", kind: Reduction, red: product[float64], ident: "1"},
}

func lookup(tok string) *operator {
	return operators[tok]
}

// Operators returns the names of all operators in sorted order.
func Operators() []string {
	r := maps.Keys(operators)
	slices.Sort(r)
	return r
}

// Factorial computes the product of the integers from 1 through x truncated
// toward zero. Negative and NaN arguments truncate to zero, so their factorial
// is the empty product 1. Results too large for a float64 are +Inf.
func Factorial(x float64) float64 {
	if !(x >= 2) {
		return 1
	}
	n := math.Trunc(x)
	r := 1.0
	for i := 2.0; i <= n; i++ {
		r *= i
		if math.IsInf(r, 1) {
			break
		}
	}
	return r
}
