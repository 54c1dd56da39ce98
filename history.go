package rpn

// entry is an accepted token in a calculator's history.
type entry struct {
	tok string
	// span is the number of values a reduction consumed. It is zero for
	// every other token.
	span int
}

// build reconstructs the subexpression whose last token is h[end-1]. It
// returns the subexpression along with the index of its first token, which is
// the end of the subexpression preceding it. Operands that would start before
// the beginning of h are empty.
func build(h []entry, end int) (*node, int) {
	if end <= 0 {
		return &node{kind: Invalid}, 0
	}
	end--
	e := h[end]
	op := lookup(e.tok)
	if op == nil {
		return &node{kind: Number, name: e.tok}, end
	}
	k := op.need()
	if op.kind == Reduction {
		k = e.span
	}
	n := &node{kind: op.kind, name: op.name, args: make([]*node, k)}
	// Operands were pushed left to right, so they are read back right to
	// left.
	for i := k - 1; i >= 0; i-- {
		n.args[i], end = build(h, end)
	}
	return n, end
}

// Exprs reconstructs every complete expression in the history, from the
// bottom of the stack to the top. For a history built only through Apply,
// there is one expression per value on the stack. The history is unchanged.
func (c *Calculator) Exprs() []*Expr {
	var r []*Expr
	for end := len(c.hist); end > 0; {
		var n *node
		n, end = build(c.hist, end)
		r = append(r, &Expr{n: n})
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r
}

// Expr reconstructs the expression which produced the top of the stack. The
// result is nil if the history is empty.
func (c *Calculator) Expr() *Expr {
	if len(c.hist) == 0 {
		return nil
	}
	n, _ := build(c.hist, len(c.hist))
	return &Expr{n: n}
}

// Infix renders the expression which produced the top of the stack in fully
// parenthesized infix notation. The history is unchanged, so Infix may be
// called any number of times.
func (c *Calculator) Infix() string {
	return c.Expr().Infix()
}

// LaTeX renders the expression which produced the top of the stack as LaTeX.
// The history is unchanged.
func (c *Calculator) LaTeX() string {
	return c.Expr().LaTeX()
}

// ReconstructInfix renders the same string as Infix, then discards the
// history. Calling it again without applying more tokens returns the empty
// string. Use Clone first to keep the history.
func (c *Calculator) ReconstructInfix() string {
	r := c.Infix()
	c.drain()
	return r
}

// ReconstructLaTeX renders the same string as LaTeX, then discards the
// history.
func (c *Calculator) ReconstructLaTeX() string {
	r := c.LaTeX()
	c.drain()
	return r
}

func (c *Calculator) drain() {
	c.hist.clear()
}
