// Package rpn implements a Reverse Polish Notation calculator that remembers
// how it got its answer.
//
// A Calculator consumes one token at a time: numbers are pushed onto a stack
// of float64 values, and operators replace their operands with a result. "3 4
// + 2 *" leaves 14 on the stack. Every accepted token is also recorded in a
// history, and the history can be replayed into an expression tree to render
// the computation as fully parenthesized infix, "((3 + 4) * 2)", or as LaTeX,
// "{{3 + 4} \cdot 2}".
//
// The operators are the binary + - * / ^, the functions sqrt, log (base 10),
// and abs, the postfix factorial !, and the reductions ++ and ** which sum or
// multiply every value on the stack.
package rpn
