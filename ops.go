package rpn

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Operators contains the bytes which the tokenizer treats as binary operators.
const Operators = "+-*/^"

// Op identifies an operator.
type Op int8

const (
	opNone Op = iota
	OpAdd     // a + b
	OpSub     // a - b
	OpMul     // a * b
	OpDiv     // a / b
	OpPow     // a ^ b
	OpNeg     // -a
	opCount
)

var opsyms = [opCount]string{"", "+", "-", "*", "/", "^", "neg"}

// Symbol returns the operator's source text, or "neg" for unary minus.
func (op Op) Symbol() string {
	if op <= opNone || op >= opCount {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opsyms[op]
}

func (op Op) String() string {
	return op.Symbol()
}

// Apply computes the operator on float64 operands. Unary operators ignore b.
// Division by zero and other invalid operations produce IEEE-754 infinities
// and NaNs rather than errors.
func (op Op) Apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpPow:
		return math.Pow(a, b)
	case OpNeg:
		return -a
	default:
		panic("rpn: apply of invalid operator " + op.String())
	}
}

// applyBig computes the operator on a and b, storing the result in a. Unary
// operators ignore b. Operations that would produce NaN return a
// *DomainError instead.
func (op Op) applyBig(a, b *big.Float) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(big.ErrNaN); !ok {
			panic(r)
		}
		err = &DomainError{Func: op.Symbol()}
	}()
	switch op {
	case OpAdd:
		a.Add(a, b)
	case OpSub:
		a.Sub(a, b)
	case OpMul:
		a.Mul(a, b)
	case OpDiv:
		a.Quo(a, b)
	case OpPow:
		return bigPow(a, b)
	case OpNeg:
		a.Neg(a)
	default:
		panic("rpn: apply of invalid operator " + op.String())
	}
	return nil
}

// bigPow sets x to x^y. bigfloat.Pow only handles finite positive bases, so
// zeros and infinities go through math.Pow and negative bases are allowed
// only with integer exponents.
func bigPow(x, y *big.Float) error {
	if x.Sign() == 0 || y.Sign() == 0 || x.IsInf() || y.IsInf() {
		xf, _ := x.Float64()
		yf, _ := y.Float64()
		r := math.Pow(xf, yf)
		if math.IsNaN(r) {
			return &DomainError{Func: "^"}
		}
		x.SetFloat64(r)
		return nil
	}
	odd := false
	if x.Signbit() {
		if !y.IsInt() {
			return &DomainError{Func: "^", X: new(big.Float).Copy(x)}
		}
		i, _ := y.Int(nil)
		odd = i.Bit(0) == 1
		x.Neg(x)
	}
	// Pow may return a different Float than its destination.
	x.Set(bigfloat.Pow(new(big.Float).SetPrec(x.Prec()), x, y))
	if odd {
		x.Neg(x)
	}
	return nil
}

// Entry describes one operator in a Registry.
type Entry struct {
	Op Op
	// Arity is the number of operands, 1 or 2.
	Arity int
	// Prec is the precedence. Higher binds tighter.
	Prec int
	// Right indicates right-associativity.
	Right bool
}

var defaultEntries = [opCount]Entry{
	OpAdd: {Op: OpAdd, Arity: 2, Prec: 1},
	OpSub: {Op: OpSub, Arity: 2, Prec: 1},
	OpMul: {Op: OpMul, Arity: 2, Prec: 2},
	OpDiv: {Op: OpDiv, Arity: 2, Prec: 2},
	OpPow: {Op: OpPow, Arity: 2, Prec: 3},
	OpNeg: {Op: OpNeg, Arity: 1, Prec: 4},
}

// Registry is the operator table shared by a Parser and an Evaluator. A
// Registry is immutable once created and safe for concurrent use.
type Registry struct {
	entries [opCount]Entry
}

// DefaultRegistry is the registry with every operator left-associative.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an operator registry. The only option it uses is
// RightAssoc; it panics if RightAssoc names a byte that is not in Operators.
func NewRegistry(opts ...Option) *Registry {
	c := configure(opts)
	r := Registry{entries: defaultEntries}
	for _, sym := range c.right {
		op := binop(sym)
		if op == opNone {
			panic("rpn: no binary operator " + strconv.QuoteRune(rune(sym)))
		}
		r.entries[op].Right = true
	}
	return &r
}

// Lookup returns the entry for a binary operator symbol.
func (r *Registry) Lookup(sym byte) (Entry, bool) {
	op := binop(sym)
	if op == opNone {
		return Entry{}, false
	}
	return r.entries[op], true
}

// Entry returns the entry for an operator.
func (r *Registry) Entry(op Op) Entry {
	if op <= opNone || op >= opCount {
		panic("rpn: no registry entry for " + op.String())
	}
	return r.entries[op]
}

// entryOf returns the entry for an Operator or UnaryMinus token.
func (r *Registry) entryOf(t Token) Entry {
	switch t.Kind {
	case Operator:
		e, ok := r.Lookup(t.Sym)
		if !ok {
			panic("rpn: unknown operator " + strconv.QuoteRune(rune(t.Sym)))
		}
		return e
	case UnaryMinus:
		return r.entries[OpNeg]
	default:
		panic("rpn: no operator for " + t.Kind.String() + " token")
	}
}

// binop gets the binary operator for a symbol, or opNone if there is none.
func binop(sym byte) Op {
	switch sym {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	case '^':
		return OpPow
	default:
		return opNone
	}
}
