package rpn

// Option configures a Registry, Tokenizer, Parser, or Calculator. Each
// constructor applies the options that concern it and ignores the rest, so
// one option list can be shared by all of them.
type Option interface {
	option()
}

type (
	strictopt struct{}
	roundopt  uint
	precopt   uint
	rightopt  byte
)

func (strictopt) option() {}
func (roundopt) option()  {}
func (precopt) option()   {}
func (rightopt) option()  {}

// Strict makes tokenizing reject characters other than numbers, operators,
// parentheses, and whitespace, and makes parsing reject unbalanced
// parentheses. Without it, both are silently tolerated.
func Strict() Option {
	return strictopt{}
}

// Round rounds computed results to the given number of decimal digits after
// the point. Ties round to even on the exact binary value.
func Round(digits uint) Option {
	return roundopt(digits)
}

// Prec makes a Calculator evaluate with big.Float at the given precision in
// bits instead of float64. Prec(0) selects float64.
func Prec(bits uint) Option {
	return precopt(bits)
}

// RightAssoc makes a binary operator right-associative, so that e.g. with
// RightAssoc('^'), 2^3^2 is 2^(3^2). All operators are left-associative by
// default.
func RightAssoc(sym byte) Option {
	return rightopt(sym)
}

// config is the flattened form of an option list.
type config struct {
	strict bool
	// round is the number of digits to round to, or -1 for none.
	round int
	prec  uint
	right []byte
}

func configure(opts []Option) config {
	c := config{round: -1}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case strictopt:
			c.strict = true
		case roundopt:
			c.round = int(opt)
		case precopt:
			c.prec = uint(opt)
		case rightopt:
			c.right = append(c.right, byte(opt))
		default:
			panic("rpn: unknown option type")
		}
	}
	return c
}
