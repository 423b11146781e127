package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/rpn"
)

func main() {
	log.SetFlags(0)
	var (
		inname                   string
		round, prec, jobs        int
		strict, rpow, echo, dump bool
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.IntVar(&round, "round", -1, "round results to this many decimal digits (negative for no rounding)")
	flag.IntVar(&prec, "p", 0, "precision of calculations in bits (0 for float64)")
	flag.IntVar(&jobs, "j", runtime.GOMAXPROCS(0), "maximum number of expressions to evaluate concurrently")
	flag.BoolVar(&strict, "strict", false, "reject unknown characters and unbalanced parentheses")
	flag.BoolVar(&rpow, "right-pow", false, "make ^ right-associative")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.BoolVar(&dump, "dump", false, "dump tokens and postfix forms to stderr")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must not be negative", prec)
	}
	if jobs < 1 {
		log.Fatalf("jobs (%d) must be positive", jobs)
	}

	var opts []rpn.Option
	if round >= 0 {
		opts = append(opts, rpn.Round(uint(round)))
	}
	if prec > 0 {
		opts = append(opts, rpn.Prec(uint(prec)))
	}
	if strict {
		opts = append(opts, rpn.Strict())
	}
	if rpow {
		opts = append(opts, rpn.RightAssoc('^'))
	}
	calc := rpn.NewCalculator(opts...)

	var lines []string
	f, name, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		lines, err = readLines(f, name)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	lines = append(lines, flag.Args()...)

	writeResults(os.Stdout, os.Stderr, run(calc, lines, jobs, echo, dump))
}

// run evaluates each line with at most jobs running at once. The results are
// in the same order as lines.
func run(calc *rpn.Calculator, lines []string, jobs int, echo, dump bool) []result {
	results := make([]result, len(lines))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			results[i] = evaluate(calc, line, echo, dump)
			return nil
		})
	}
	g.Wait()
	return results
}

func writeResults(out, dumps io.Writer, results []result) {
	for _, r := range results {
		if r.dump != "" {
			fmt.Fprint(dumps, r.dump)
		}
		fmt.Fprintln(out, r.out)
	}
}

type result struct {
	out  string
	dump string
}

func evaluate(calc *rpn.Calculator, expr string, echo, dump bool) result {
	var r result
	if dump {
		toks, terr := calc.Tokenize(expr)
		post, perr := calc.Postfix(expr)
		r.dump = spew.Sdump(expr, toks, terr, post, perr)
	}
	v, err := calc.ComputeExpression(expr)
	if err != nil {
		v = "error: " + err.Error()
	}
	r.out = v
	if echo {
		if post, err := calc.Postfix(expr); err == nil {
			r.out = rpn.FormatPostfix(post) + " : " + v
		}
	}
	return r
}

// readLines reads the non-blank lines of r.
func readLines(r io.Reader, name string) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return lines, nil
}

// infile opens the input named by inname. With no name, it gives stdin if std
// is true and nil otherwise.
func infile(inname string, std bool) (io.ReadCloser, string, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, "", errors.Wrap(err, "opening input")
		}
		return f, inname, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	return nil, "", nil
}
