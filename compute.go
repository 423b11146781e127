package rpn

import (
	"math"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// Calculator runs the whole pipeline from infix text to a result. It bundles
// one Registry with a Tokenizer, Parser, and Evaluator that share it. A
// Calculator is safe for concurrent use.
type Calculator struct {
	reg    *Registry
	tok    *Tokenizer
	parser *Parser
	eval   *Evaluator
	// round is the number of digits to round results to, or -1.
	round int
	// prec is the big.Float precision, or 0 to compute with float64.
	prec uint
}

// NewCalculator creates a calculator. It accepts every option.
func NewCalculator(opts ...Option) *Calculator {
	c := configure(opts)
	reg := DefaultRegistry
	if len(c.right) > 0 {
		reg = NewRegistry(opts...)
	}
	return &Calculator{
		reg:    reg,
		tok:    NewTokenizer(opts...),
		parser: NewParser(reg, opts...),
		eval:   NewEvaluator(reg),
		round:  c.round,
		prec:   c.prec,
	}
}

// Registry returns the calculator's operator registry.
func (c *Calculator) Registry() *Registry {
	return c.reg
}

// Tokenize splits expr into infix tokens.
func (c *Calculator) Tokenize(expr string) ([]Token, error) {
	return c.tok.Tokenize(expr)
}

// Postfix tokenizes expr and converts it to postfix order.
func (c *Calculator) Postfix(expr string) ([]Token, error) {
	toks, err := c.tok.Tokenize(expr)
	if err != nil {
		return nil, err
	}
	return c.parser.Parse(toks)
}

// Eval computes the value of expr, rounded if the calculator rounds. Errors
// are those of the individual stages. With Prec, the computation uses
// big.Float and the result is the nearest float64.
func (c *Calculator) Eval(expr string) (float64, error) {
	post, err := c.Postfix(expr)
	if err != nil {
		return 0, err
	}
	if c.prec > 0 {
		r, err := c.eval.EvaluateBig(post, c.prec)
		if err != nil {
			return 0, err
		}
		v, _ := roundBig(r, c.round).Float64()
		return v, nil
	}
	v, err := c.eval.Evaluate(post)
	if err != nil {
		return 0, err
	}
	return roundFloat(v, c.round), nil
}

// EvalBig computes the value of expr with big.Float at the calculator's
// precision, or 64 bits if it has none.
func (c *Calculator) EvalBig(expr string) (*big.Float, error) {
	post, err := c.Postfix(expr)
	if err != nil {
		return nil, err
	}
	prec := c.prec
	if prec == 0 {
		prec = 64
	}
	r, err := c.eval.EvaluateBig(post, prec)
	if err != nil {
		return nil, err
	}
	return roundBig(r, c.round), nil
}

// ComputeExpression computes expr and formats the result as the shortest
// decimal text that represents it, e.g. "3.5", "-4", "+Inf". An error from any
// stage is returned as a plain message.
func (c *Calculator) ComputeExpression(expr string) (string, error) {
	post, err := c.Postfix(expr)
	if err != nil {
		return "", errors.New(err.Error())
	}
	if c.prec > 0 {
		r, err := c.eval.EvaluateBig(post, c.prec)
		if err != nil {
			return "", errors.New(err.Error())
		}
		return roundBig(r, c.round).Text('g', -1), nil
	}
	v, err := c.eval.Evaluate(post)
	if err != nil {
		return "", errors.New(err.Error())
	}
	return strconv.FormatFloat(roundFloat(v, c.round), 'g', -1, 64), nil
}

// ComputeExpression is a shortcut to compute and format an expression with a
// calculator created with opts.
func ComputeExpression(expr string, opts ...Option) (string, error) {
	return NewCalculator(opts...).ComputeExpression(expr)
}

// Eval is a shortcut to compute an expression with a calculator created with
// opts.
func Eval(expr string, opts ...Option) (float64, error) {
	return NewCalculator(opts...).Eval(expr)
}

// roundFloat rounds v to digits decimal places, or returns v if digits is
// negative or v is not finite.
func roundFloat(v float64, digits int) float64 {
	if digits < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		// Formatting a finite float cannot produce unparseable text.
		panic("rpn: rounding " + strconv.FormatFloat(v, 'g', -1, 64) + ": " + err.Error())
	}
	return r
}

// roundBig rounds v in place to digits decimal places at its own precision.
func roundBig(v *big.Float, digits int) *big.Float {
	if digits < 0 || v.IsInf() {
		return v
	}
	if _, ok := v.SetString(v.Text('f', digits)); !ok {
		panic("rpn: rounding " + v.String())
	}
	return v
}
