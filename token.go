package rpn

import (
	"strconv"
	"strings"
)

// Token is a single element of an infix or postfix token sequence. Tokens are
// comparable; two tokens are equal when their kinds and payloads are equal.
type Token struct {
	// Kind is the token's tag.
	Kind Kind
	// Num is the value of a Number token.
	Num float64
	// Sym is the symbol of an Operator or Paren token.
	Sym byte
}

// Kind is the tag of a Token.
type Kind int8

const (
	kindNone Kind = iota
	// Number is a numeric literal.
	Number
	// Operator is one of the binary operator symbols in Operators.
	Operator
	// Paren is an open or close parenthesis.
	Paren
	// UnaryMinus is a negation. Only the parser produces it.
	UnaryMinus
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind

// NumberToken returns a Number token.
func NumberToken(v float64) Token {
	return Token{Kind: Number, Num: v}
}

// OperatorToken returns an Operator token for sym.
func OperatorToken(sym byte) Token {
	return Token{Kind: Operator, Sym: sym}
}

// ParenToken returns a Paren token for sym, which should be '(' or ')'.
func ParenToken(sym byte) Token {
	return Token{Kind: Paren, Sym: sym}
}

// NegToken returns a UnaryMinus token.
func NegToken() Token {
	return Token{Kind: UnaryMinus}
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case Operator, Paren:
		return string(t.Sym)
	case UnaryMinus:
		return "neg"
	default:
		return "<" + t.Kind.String() + ">"
	}
}

// isOpen reports whether t is an open parenthesis.
func (t Token) isOpen() bool {
	return t.Kind == Paren && t.Sym == '('
}

// FormatPostfix renders a token sequence with single spaces between tokens,
// e.g. "2 3 neg +".
func FormatPostfix(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
