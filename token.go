package rpn

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Kind is the classification of a token.
type Kind int8

const (
	// Invalid is a token that is neither an operator nor a number.
	Invalid Kind = iota
	// Number is a floating-point literal.
	Number
	// Binary is an operator taking two operands: + - * / ^.
	Binary
	// Unary is a function of one operand: sqrt log abs.
	Unary
	// Postfix is the factorial operator !.
	Postfix
	// Reduction is an operator consuming the entire stack: ++ **.
	Reduction
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind
//go:generate go mod tidy

// Classify reports the kind of a token. Operators are matched exactly, so
// "SQRT" and " + " are invalid.
func Classify(tok string) Kind {
	if op := lookup(tok); op != nil {
		return op.kind
	}
	if _, ok := parseNum(tok); ok {
		return Number
	}
	return Invalid
}

// IsOperator returns whether k is any kind of operator.
func (k Kind) IsOperator() bool {
	return k >= Binary
}

// parseNum parses a numeric literal. Literals too large in magnitude for a
// float64 become infinities rather than errors.
func parseNum(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && nerr.Err == strconv.ErrRange {
			// ParseFloat returns ±Inf or ±0 with ErrRange, and either is
			// what the literal means at this precision.
			return f, true
		}
		return math.NaN(), false
	}
	return f, true
}

type lexToken struct {
	text string
	pos  int
}

func (t lexToken) String() string {
	return t.text + "@" + strconv.Itoa(t.pos)
}

// lexer splits input into whitespace-separated words. Unlike numbers in
// infix syntax, RPN tokens never need to be split on anything else.
type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// next scans the next token from the input. At the end of input, the result
// is an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) && l.buf.Len() > 0 {
				break
			}
			return lexToken{}, err
		}
		if unicode.IsSpace(r) {
			if l.buf.Len() > 0 {
				break
			}
			tok.pos++
			continue
		}
		l.buf.WriteRune(r)
	}
	tok.text = l.buf.String()
	return tok, nil
}

// Fields splits src into tokens the same way ApplyAll does.
func Fields(src io.RuneScanner) ([]string, error) {
	var r []string
	l := lex(src)
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return r, nil
			}
			return r, err
		}
		r = append(r, tok.text)
	}
}
