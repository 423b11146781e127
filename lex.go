package rpn

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer splits infix expressions into tokens. A Tokenizer is safe for
// concurrent use.
type Tokenizer struct {
	strict bool
}

// NewTokenizer creates a tokenizer. The only option it uses is Strict.
func NewTokenizer(opts ...Option) *Tokenizer {
	c := configure(opts)
	return &Tokenizer{strict: c.strict}
}

var defaultTokenizer Tokenizer

// Tokenize splits expr into tokens with the default, permissive rules.
func Tokenize(expr string) ([]Token, error) {
	return defaultTokenizer.Tokenize(expr)
}

// Tokenize splits expr into Number, Operator, and Paren tokens. Runs of ASCII
// digits and decimal points form numbers; any other character ends the
// current number. Characters which are not operators or parentheses produce
// no token. In strict mode, such characters other than whitespace are an
// error.
//
// The only error in permissive mode is *NumberFormatError, for a run of digits
// and points that is not a valid finite float64.
func (tz *Tokenizer) Tokenize(expr string) ([]Token, error) {
	l := lexer{toks: make([]Token, 0, len(expr))}
	for _, r := range expr {
		l.col++
		if '0' <= r && r <= '9' || r == '.' {
			if l.buf.Len() == 0 {
				l.start = l.col
			}
			l.buf.WriteRune(r)
			continue
		}
		if err := l.flush(); err != nil {
			return nil, err
		}
		switch {
		case r < utf8.RuneSelf && strings.IndexByte(Operators, byte(r)) >= 0:
			l.toks = append(l.toks, OperatorToken(byte(r)))
		case r == '(', r == ')':
			l.toks = append(l.toks, ParenToken(byte(r)))
		case tz.strict && !unicode.IsSpace(r):
			return nil, &LexError{Rune: r, Col: l.col}
		}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// lexer holds the state of one Tokenize call.
type lexer struct {
	toks []Token
	buf  strings.Builder
	// col is the number of runes scanned so far.
	col int
	// start is the column of the first rune in buf.
	start int
}

// flush emits the number accumulated in buf, if any.
func (l *lexer) flush() error {
	if l.buf.Len() == 0 {
		return nil
	}
	s := l.buf.String()
	l.buf.Reset()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &NumberFormatError{Text: s, Col: l.start, Err: err}
	}
	l.toks = append(l.toks, NumberToken(v))
	return nil
}
