package rpn

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// Calculator is an RPN calculator that records its history. It is not safe to
// use a Calculator concurrently; use a separate Calculator for each session.
type Calculator struct {
	stack stack[float64]
	hist  stack[entry]
}

// Option is an option used when creating a calculator.
type Option interface {
	calcOption()
}

type capopt int

func (capopt) calcOption() {}

// Capacity preallocates room for n values and n history entries.
func Capacity(n int) Option {
	return capopt(n)
}

// New creates a calculator with an empty stack and history.
func New(opts ...Option) *Calculator {
	var c Calculator
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case capopt:
			if opt > 0 {
				c.stack = make(stack[float64], 0, int(opt))
				c.hist = make(stack[entry], 0, int(opt))
			}
		default:
			panic("rpn: unknown option type")
		}
	}
	return &c
}

// Apply applies one token. Numbers are pushed onto the stack; operators
// replace their operands with their result. The token is recorded in the
// history if it is accepted.
//
// If the token is neither an operator nor a number, the error is a
// *TokenError. If an operator needs more operands than the stack holds, the
// error is an *UnderflowError. In either case, the stack and history are left
// as they were. Arithmetic never fails: division by zero and out-of-domain
// arguments produce infinities and NaNs.
func (c *Calculator) Apply(tok string) error {
	c.hist.push(entry{tok: tok})
	op := lookup(tok)
	if op == nil {
		f, ok := parseNum(tok)
		if !ok {
			c.hist.pop()
			return &TokenError{Token: tok}
		}
		c.stack.push(f)
		return nil
	}
	if n := op.need(); len(c.stack) < n {
		c.hist.pop()
		return &UnderflowError{Token: tok, Need: n, Have: len(c.stack)}
	}
	switch op.kind {
	case Binary:
		b := c.stack.pop()
		a := c.stack.pop()
		c.stack.push(op.bin(a, b))
	case Unary, Postfix:
		a := c.stack.pop()
		c.stack.push(op.un(a))
	case Reduction:
		c.hist[len(c.hist)-1].span = len(c.stack)
		r := op.red(c.stack)
		c.stack.clear()
		c.stack.push(r)
	default:
		panic("rpn: invalid operator kind " + op.kind.String())
	}
	return nil
}

// ApplyAll reads whitespace-separated tokens from src and applies each in
// turn. It stops at the first token that fails to apply; the error's Pos is
// the token's position in src. Tokens applied before the failure remain
// applied.
func (c *Calculator) ApplyAll(src io.RuneScanner) error {
	l := lex(src)
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := c.Apply(tok.text); err != nil {
			return setpos(err, tok.pos)
		}
	}
}

// Result returns the value on the stack if there is exactly one. Otherwise,
// the expression is incomplete or empty, and ok is false.
func (c *Calculator) Result() (r float64, ok bool) {
	if len(c.stack) != 1 {
		return 0, false
	}
	return c.stack.top(), true
}

// Len returns the number of values on the stack.
func (c *Calculator) Len() int {
	return len(c.stack)
}

// Stack returns a copy of the stack, bottom first.
func (c *Calculator) Stack() []float64 {
	return slices.Clone(c.stack)
}

// History returns a copy of the accepted tokens in the order they were
// applied.
func (c *Calculator) History() []string {
	r := make([]string, len(c.hist))
	for i, e := range c.hist {
		r[i] = e.tok
	}
	return r
}

// Clone creates an independent copy of the calculator.
func (c *Calculator) Clone() *Calculator {
	return &Calculator{
		stack: slices.Clone(c.stack),
		hist:  slices.Clone(c.hist),
	}
}

// Reset clears the stack and the history.
func (c *Calculator) Reset() {
	c.stack.clear()
	c.hist.clear()
}

// Eval is a shortcut to apply every token in src to a new calculator and
// return its result. If the tokens do not leave exactly one value, the error
// is ErrNoResult.
func Eval(src io.RuneScanner, opts ...Option) (float64, error) {
	c := New(opts...)
	if err := c.ApplyAll(src); err != nil {
		return 0, err
	}
	r, ok := c.Result()
	if !ok {
		return 0, ErrNoResult
	}
	return r, nil
}

// EvalString is a shortcut to evaluate a string of tokens.
func EvalString(src string, opts ...Option) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}
