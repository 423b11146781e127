package rpn

// Parser converts infix token sequences to postfix with the shunting-yard
// algorithm. A Parser is safe for concurrent use.
type Parser struct {
	reg    *Registry
	strict bool
}

// NewParser creates a parser using the precedences and associativities in
// reg. If reg is nil, the parser uses DefaultRegistry. The only option it
// uses is Strict, which affects Parse.
func NewParser(reg *Registry, opts ...Option) *Parser {
	if reg == nil {
		reg = DefaultRegistry
	}
	c := configure(opts)
	return &Parser{reg: reg, strict: c.strict}
}

// ToPostfix converts tokens in infix order to postfix order. A '-' which
// begins the input or follows an operator or open parenthesis becomes a
// UnaryMinus. Unbalanced parentheses are tolerated: a close parenthesis with
// no match is dropped, as is an open parenthesis that is never closed. The
// result never contains Paren tokens. The input slice is not modified.
func (p *Parser) ToPostfix(toks []Token) []Token {
	out, _ := p.convert(toks, false)
	return out
}

// Parse is like ToPostfix, but if the parser is strict, unbalanced
// parentheses produce a *BracketError.
func (p *Parser) Parse(toks []Token) ([]Token, error) {
	return p.convert(toks, p.strict)
}

func (p *Parser) convert(toks []Token, strict bool) ([]Token, error) {
	out := make([]Token, 0, len(toks))
	var ops stack[Token]
	// opens holds the indices in toks of the open parentheses in ops.
	var opens stack[int]
	for i, t := range toks {
		switch t.Kind {
		case Number:
			out = append(out, t)
		case UnaryMinus:
			ops.push(t)
		case Operator:
			if t.Sym == '-' && unaryAt(toks, i) {
				// Never compared against the stack when pushed. Later
				// operators pop it like any other.
				ops.push(NegToken())
				continue
			}
			in := p.reg.entryOf(t)
			for len(ops) > 0 {
				top := ops.top()
				if top.Kind != Operator && top.Kind != UnaryMinus {
					break
				}
				e := p.reg.entryOf(top)
				if e.Prec < in.Prec || e.Prec == in.Prec && in.Right {
					break
				}
				out = append(out, ops.pop())
			}
			ops.push(t)
		case Paren:
			switch t.Sym {
			case '(':
				ops.push(t)
				opens.push(i)
			case ')':
				for len(ops) > 0 && !ops.top().isOpen() {
					out = append(out, ops.pop())
				}
				if len(ops) == 0 {
					if strict {
						return nil, &BracketError{Index: i}
					}
					continue
				}
				ops.pop()
				opens.pop()
			default:
				panic("rpn: invalid parenthesis " + t.String())
			}
		default:
			panic("rpn: invalid token kind " + t.Kind.String())
		}
	}
	if strict && len(opens) > 0 {
		return nil, &BracketError{Index: opens[0], Open: true}
	}
	for len(ops) > 0 {
		t := ops.pop()
		if t.isOpen() {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// unaryAt reports whether a '-' at toks[i] is a negation rather than a
// subtraction.
func unaryAt(toks []Token, i int) bool {
	if i == 0 {
		return true
	}
	prev := toks[i-1]
	return prev.Kind == Operator || prev.Kind == UnaryMinus || prev.isOpen()
}
