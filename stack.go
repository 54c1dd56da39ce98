package rpn

import "golang.org/x/exp/constraints"

// stack is a LIFO over a slice. The top is the last element. Popping an empty
// stack panics; callers check lengths first.
type stack[E any] []E

func (s *stack[E]) push(v E) {
	*s = append(*s, v)
}

func (s *stack[E]) pop() E {
	var zero E
	r := (*s)[len(*s)-1]
	(*s)[len(*s)-1] = zero
	*s = (*s)[:len(*s)-1]
	return r
}

func (s stack[E]) top() E {
	return s[len(s)-1]
}

// clear empties the stack, keeping its storage.
func (s *stack[E]) clear() {
	var zero E
	for i := range *s {
		(*s)[i] = zero
	}
	*s = (*s)[:0]
}

// sum adds every element in order. The sum of nothing is 0.
func sum[F constraints.Float](v []F) F {
	var r F
	for _, x := range v {
		r += x
	}
	return r
}

// product multiplies every element in order. The product of nothing is 1.
func product[F constraints.Float](v []F) F {
	r := F(1)
	for _, x := range v {
		r *= x
	}
	return r
}
