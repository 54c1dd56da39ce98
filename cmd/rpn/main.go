package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/rpn"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		quiet, echo  bool
	)
	flag.StringVar(&inname, "in", "-", "input file (- for stdin)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&quiet, "q", false, "suppress the banner and running results")
	flag.BoolVar(&echo, "echo", false, "print the expression so far after each operator")
	flag.Parse()

	in, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	s := session{
		calc:  rpn.New(),
		out:   os.Stdout,
		verb:  verb + "\n",
		quiet: quiet,
		echo:  echo,
	}
	if err := s.run(in); err != nil {
		log.Fatal(err)
	}
}

// session is one interactive calculator session.
type session struct {
	calc  *rpn.Calculator
	out   io.Writer
	verb  string
	quiet bool
	echo  bool
}

func (s *session) run(in io.Reader) error {
	if !s.quiet {
		fmt.Fprintln(s.out, "-----------------------------")
		fmt.Fprintln(s.out, "Welcome to the RPN calculator! Enter numbers and operators separated by spaces or newlines.")
		fmt.Fprintln(s.out, "Operators:", strings.Join(rpn.Operators(), " "))
		fmt.Fprintln(s.out, "Type 'exit' to quit.")
		fmt.Fprintln(s.out, "-----------------------------")
	}
	// Read whole lines so each one is evaluated as soon as it is entered.
	// ReadString has no line length limit.
	r := bufio.NewReader(in)
	for {
		line, rerr := r.ReadString('\n')
		toks, err := rpn.Fields(strings.NewReader(line))
		if err != nil {
			return err
		}
		for _, tok := range toks {
			if strings.EqualFold(tok, "exit") {
				s.finish()
				return nil
			}
			s.apply(tok)
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return rerr
		}
	}
	s.finish()
	return nil
}

// apply applies a single token and reports on it.
func (s *session) apply(tok string) {
	err := s.calc.Apply(tok)
	var (
		terr *rpn.TokenError
		uerr *rpn.UnderflowError
	)
	switch {
	case err == nil: // do nothing
	case errors.As(err, &terr):
		fmt.Fprintf(s.out, "Invalid input %q\n", terr.Token)
		return
	case errors.As(err, &uerr):
		fmt.Fprintf(s.out, "Not enough values for %q: need %d, have %d\n", uerr.Token, uerr.Need, uerr.Have)
		return
	default:
		fmt.Fprintln(s.out, err)
		return
	}
	if s.quiet || !rpn.Classify(tok).IsOperator() {
		return
	}
	if s.echo {
		fmt.Fprintln(s.out, "The current expression is:", s.calc.Infix())
	}
	if r, ok := s.calc.Result(); ok {
		fmt.Fprint(s.out, "The current result is: ")
		fmt.Fprintf(s.out, s.verb, r)
	}
}

// finish prints the reconstructed expression and the final result.
func (s *session) finish() {
	if !s.quiet {
		fmt.Fprintln(s.out, "Exiting RPN Calculator...")
	}
	fmt.Fprintln(s.out, "Your infix calculation is:", s.calc.Clone().ReconstructInfix())
	fmt.Fprintln(s.out, "Your LaTeX calculation is:", s.calc.Clone().ReconstructLaTeX())
	if r, ok := s.calc.Result(); ok {
		fmt.Fprint(s.out, "The final result is: ")
		fmt.Fprintf(s.out, s.verb, r)
	} else {
		fmt.Fprintln(s.out, "No result available.")
	}
}

func infile(inname string) (io.Reader, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, err
	}
	return f, nil
}
