package rpn

import (
	"math"
	"strings"
)

// node is a node in the expression tree rebuilt from a history.
type node struct {
	// kind is Number for leaves and the operator kind otherwise. Invalid
	// marks an operand missing from the history; it renders as nothing.
	kind Kind
	// name is the literal text or operator name.
	name string
	// args are the operands in the order they were pushed.
	args []*node
}

// Expr is an expression tree reconstructed from a calculator's history.
type Expr struct {
	n *node
}

// Infix renders the expression in fully parenthesized infix notation.
func (e *Expr) Infix() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	e.n.infix(&b)
	return b.String()
}

// LaTeX renders the expression as LaTeX math.
func (e *Expr) LaTeX() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	e.n.latex(&b)
	return b.String()
}

// String is the same as Infix.
func (e *Expr) String() string {
	return e.Infix()
}

// Eval computes the value of the expression. Missing operands evaluate to
// NaN.
func (e *Expr) Eval() float64 {
	if e == nil {
		return math.NaN()
	}
	return e.n.eval()
}

// Tokens returns the postfix tokens that produce the expression.
func (e *Expr) Tokens() []string {
	if e == nil {
		return nil
	}
	return e.n.tokens(nil)
}

func (n *node) infix(b *strings.Builder) {
	switch n.kind {
	case Invalid:
		// Nothing to write.
	case Number:
		b.WriteString(n.name)
	case Binary:
		b.WriteByte('(')
		n.args[0].infix(b)
		b.WriteByte(' ')
		b.WriteString(n.name)
		b.WriteByte(' ')
		n.args[1].infix(b)
		b.WriteByte(')')
	case Postfix:
		b.WriteByte('(')
		n.args[0].infix(b)
		b.WriteString("!)")
	case Unary:
		switch n.name {
		case "log":
			b.WriteString("log10")
		default:
			b.WriteString(n.name)
		}
		b.WriteByte('(')
		n.args[0].infix(b)
		b.WriteByte(')')
	case Reduction:
		if len(n.args) == 0 {
			b.WriteString(operators[n.name].ident)
			return
		}
		sep := " + "
		if n.name == "**" {
			sep = " * "
		}
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(sep)
			}
			a.infix(b)
		}
		b.WriteByte(')')
	default:
		panic("rpn: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) latex(b *strings.Builder) {
	switch n.kind {
	case Invalid:
		// Nothing to write.
	case Number:
		b.WriteString(n.name)
	case Binary:
		b.WriteByte('{')
		switch n.name {
		case "+", "-":
			n.args[0].latex(b)
			b.WriteByte(' ')
			b.WriteString(n.name)
			b.WriteByte(' ')
			n.args[1].latex(b)
		case "*":
			n.args[0].latex(b)
			b.WriteString(` \cdot `)
			n.args[1].latex(b)
		case "/":
			b.WriteString(`\frac{`)
			n.args[0].latex(b)
			b.WriteString("}{")
			n.args[1].latex(b)
			b.WriteByte('}')
		case "^":
			n.args[0].latex(b)
			b.WriteString("^{")
			n.args[1].latex(b)
			b.WriteByte('}')
		default:
			panic("rpn: no LaTeX for binary operator " + n.name)
		}
		b.WriteByte('}')
	case Postfix:
		b.WriteByte('{')
		n.args[0].latex(b)
		b.WriteString("}!")
	case Unary:
		switch n.name {
		case "abs":
			b.WriteString(`\left| {`)
			n.args[0].latex(b)
			b.WriteString(`} \right|`)
		case "sqrt":
			b.WriteString(`\sqrt{`)
			n.args[0].latex(b)
			b.WriteByte('}')
		case "log":
			b.WriteString(`\log_{10} {`)
			n.args[0].latex(b)
			b.WriteByte('}')
		default:
			panic("rpn: no LaTeX for function " + n.name)
		}
	case Reduction:
		if len(n.args) == 0 {
			b.WriteString(operators[n.name].ident)
			return
		}
		sep := " + "
		if n.name == "**" {
			sep = ` \cdot `
		}
		b.WriteByte('{')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(sep)
			}
			a.latex(b)
		}
		b.WriteByte('}')
	default:
		panic("rpn: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) eval() float64 {
	switch n.kind {
	case Number:
		f, _ := parseNum(n.name)
		return f
	case Binary:
		return operators[n.name].bin(n.args[0].eval(), n.args[1].eval())
	case Unary, Postfix:
		return operators[n.name].un(n.args[0].eval())
	case Reduction:
		v := make([]float64, len(n.args))
		for i, a := range n.args {
			v[i] = a.eval()
		}
		return operators[n.name].red(v)
	default:
		return math.NaN()
	}
}

// tokens appends the postfix form of n to r.
func (n *node) tokens(r []string) []string {
	if n.kind == Invalid {
		return r
	}
	for _, a := range n.args {
		r = a.tokens(r)
	}
	return append(r, n.name)
}
