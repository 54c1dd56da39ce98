package rpn

import (
	"errors"
	"strconv"
)

// TokenError is an error indicating a token that is neither an operator nor
// a number. It implements InputError.
type TokenError struct {
	// Col is the position of the token, or 0 if it was applied directly
	// rather than read from input.
	Col int
	// Token is the rejected token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid input "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// UnderflowError is an error indicating an operator applied with fewer values
// on the stack than it needs. It implements InputError.
type UnderflowError struct {
	// Col is the position of the operator, or 0 if it was applied directly.
	Col int
	// Token is the operator.
	Token string
	// Need is the number of operands the operator takes.
	Need int
	// Have is the number of values that were on the stack.
	Have int
}

func (err *UnderflowError) Error() string {
	return errpos(err.Col, "insufficient operands for "+strconv.Quote(err.Token)+": need "+strconv.Itoa(err.Need)+", have "+strconv.Itoa(err.Have))
}

func (err *UnderflowError) Pos() int {
	return err.Col
}

// ErrNoResult is returned by Eval when evaluation does not leave exactly one
// value on the stack.
var ErrNoResult = errors.New("no result")

// errpos is a shortcut to create an error message with a position. Position 0
// means unknown and is omitted.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error. It is 0 for
	// tokens passed directly to Apply.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*UnderflowError)(nil)
)

// setpos records the input position of a token in an error from Apply.
func setpos(err error, pos int) error {
	switch err := err.(type) {
	case *TokenError:
		err.Col = pos
	case *UnderflowError:
		err.Col = pos
	}
	return err
}
