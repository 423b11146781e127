package rpn

import (
	"math/big"
)

// Evaluator computes the values of postfix token sequences. An Evaluator is
// safe for concurrent use; each call uses its own operand stack.
type Evaluator struct {
	reg *Registry
}

// NewEvaluator creates an evaluator using the operator arities in reg. If reg
// is nil, the evaluator uses DefaultRegistry.
func NewEvaluator(reg *Registry) *Evaluator {
	if reg == nil {
		reg = DefaultRegistry
	}
	return &Evaluator{reg: reg}
}

// Evaluate computes the value of a postfix sequence. If an operator has too
// few operands, or if the sequence does not leave exactly one value, the
// error is an *InvalidExpressionError. Division by zero is not an error; the
// result is an infinity or NaN.
func (ev *Evaluator) Evaluate(postfix []Token) (float64, error) {
	s := make(stack[float64], 0, len(postfix)/2+1)
	for _, t := range postfix {
		switch t.Kind {
		case Number:
			s.push(t.Num)
		case Operator, UnaryMinus:
			e := ev.reg.entryOf(t)
			if len(s) < e.Arity {
				return 0, &InvalidExpressionError{Op: e.Op.Symbol(), Have: len(s), Need: e.Arity}
			}
			var b float64
			if e.Arity == 2 {
				b = s.pop()
			}
			a := s.pop()
			s.push(e.Op.Apply(a, b))
		case Paren:
			// Parsers drop unmatched parentheses rather than emitting them, so
			// one here means the sequence was not converted from infix.
			return 0, &InvalidExpressionError{Unexpected: t.String(), Have: len(s)}
		default:
			panic("rpn: invalid token kind " + t.Kind.String())
		}
	}
	if len(s) != 1 {
		return 0, &InvalidExpressionError{Have: len(s), Need: 1}
	}
	return s[0], nil
}

// EvaluateBig is like Evaluate, but computes with big.Float values of the
// given precision in bits. Number tokens are converted exactly from their
// float64 values. Since big.Float has no NaN, operations which would produce
// one instead return a *DomainError.
func (ev *Evaluator) EvaluateBig(postfix []Token, prec uint) (*big.Float, error) {
	s := make(stack[*big.Float], 0, len(postfix)/2+1)
	for _, t := range postfix {
		switch t.Kind {
		case Number:
			s.push(new(big.Float).SetPrec(prec).SetFloat64(t.Num))
		case Operator, UnaryMinus:
			e := ev.reg.entryOf(t)
			if len(s) < e.Arity {
				return nil, &InvalidExpressionError{Op: e.Op.Symbol(), Have: len(s), Need: e.Arity}
			}
			var b *big.Float
			if e.Arity == 2 {
				b = s.pop()
			}
			a := s.top()
			if err := e.Op.applyBig(a, b); err != nil {
				return nil, err
			}
		case Paren:
			return nil, &InvalidExpressionError{Unexpected: t.String(), Have: len(s)}
		default:
			panic("rpn: invalid token kind " + t.Kind.String())
		}
	}
	if len(s) != 1 {
		return nil, &InvalidExpressionError{Have: len(s), Need: 1}
	}
	return s[0], nil
}

// stack is a LIFO of operands or pending operators.
type stack[T any] []T

func (s *stack[T]) push(v T) {
	*s = append(*s, v)
}

// pop removes and returns the top of the stack. Panics if the stack is empty.
func (s *stack[T]) pop() T {
	old := *s
	v := old[len(old)-1]
	*s = old[:len(old)-1]
	return v
}

// top returns the top of the stack without removing it.
func (s stack[T]) top() T {
	return s[len(s)-1]
}
