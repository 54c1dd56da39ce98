package rpn

import (
	"math"
	"testing"

	"golang.org/x/exp/slices"
)

func TestOperatorsExist(t *testing.T) {
	for name, op := range operators {
		if op.name != name {
			t.Errorf("operator %q has name %q", name, op.name)
		}
		var n int
		for _, f := range []bool{op.bin != nil, op.un != nil, op.red != nil} {
			if f {
				n++
			}
		}
		if n != 1 {
			t.Errorf("operator %q has %d implementations", name, n)
		}
		if (op.kind == Reduction) != (op.ident != "") {
			t.Errorf("operator %q has identity %q", name, op.ident)
		}
	}
}

func TestOperators(t *testing.T) {
	got := Operators()
	want := []string{"!", "*", "**", "+", "++", "-", "/", "^", "abs", "log", "sqrt"}
	if !slices.Equal(got, want) {
		t.Errorf("wrong operators:\n\twant %q\n\tgot  %q", want, got)
	}
}

func TestFactorial(t *testing.T) {
	cases := []struct {
		x, r float64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{5.99, 120},
		{10, 3628800},
		{-1, 1},
		{-0.5, 1},
		{math.NaN(), 1},
		{171, math.Inf(1)},
		{1e9, math.Inf(1)},
		{math.Inf(1), math.Inf(1)},
	}
	for _, c := range cases {
		if r := Factorial(c.x); r != c.r {
			t.Errorf("%g! should be %g, got %g", c.x, c.r, r)
		}
	}
	if r := Factorial(170); math.IsInf(r, 0) || math.Abs(r/7.257415615307999e306-1) > 1e-12 {
		t.Errorf("170! should be finite and about 7.2574e306, got %g", r)
	}
}

func TestIdentities(t *testing.T) {
	for _, name := range []string{"++", "**"} {
		op := operators[name]
		want, _ := parseNum(op.ident)
		if r := op.red(nil); r != want {
			t.Errorf("%s of nothing is %g but renders as %s", name, r, op.ident)
		}
	}
}
