package rpn

import (
	"math/big"
	"strconv"
)

// NumberFormatError indicates a run of digits and decimal points that does
// not parse as a finite float64, e.g. "1.2.3". It implements InputError.
type NumberFormatError struct {
	// Text is the accumulated literal.
	Text string
	// Col is the rune position where the literal starts, counting from 1.
	Col int
	// Err is the error from strconv.
	Err error
}

func (err *NumberFormatError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberFormatError) Unwrap() error {
	return err.Err
}

func (err *NumberFormatError) Pos() int {
	return err.Col
}

// InvalidExpressionError indicates a postfix sequence that does not reduce to
// exactly one value.
type InvalidExpressionError struct {
	// Op is the symbol of the operator that lacked operands, "neg" for a
	// unary minus, or the empty string if the final stack had the wrong size.
	Op string
	// Have is the number of operands that were on the stack.
	Have int
	// Need is the number of operands that were required.
	Need int
	// Unexpected is set to the text of a token that cannot appear in a
	// postfix sequence, i.e. a parenthesis.
	Unexpected string
}

func (err *InvalidExpressionError) Error() string {
	if err.Unexpected != "" {
		return "invalid expression: unexpected " + strconv.Quote(err.Unexpected) + " in postfix"
	}
	if err.Op == "" {
		return "invalid expression: " + strconv.Itoa(err.Have) + " values left after evaluation"
	}
	return "invalid expression: " + strconv.Quote(err.Op) + " needs " + strconv.Itoa(err.Need) +
		" operands, have " + strconv.Itoa(err.Have)
}

// LexError indicates a character that strict tokenizing does not accept. It
// implements InputError.
type LexError struct {
	// Rune is the rejected character.
	Rune rune
	// Col is the position of the rune, counting from 1.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Rune))
}

func (err *LexError) Pos() int {
	return err.Col
}

// BracketError indicates unbalanced parentheses found by strict parsing.
type BracketError struct {
	// Index is the index of the offending token in the infix sequence.
	Index int
	// Open is true if the parenthesis is an open one with no close.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return "token " + strconv.Itoa(err.Index) + ": open bracket with no close bracket"
	}
	return "token " + strconv.Itoa(err.Index) + ": close bracket with no open bracket"
}

// DomainError is an error returned by arbitrary-precision evaluation when an
// operator's IEEE-754 result would be NaN, which big.Float cannot represent.
type DomainError struct {
	// Func is the operator symbol.
	Func string
	// X is the operand outside the operator's domain.
	X *big.Float
}

func (err *DomainError) Error() string {
	if err.X == nil {
		return "domain error: result of " + strconv.Quote(err.Func) + " is not a number"
	}
	return "domain error: " + err.X.String() + " outside domain of " + strconv.Quote(err.Func)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information in the source text.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumberFormatError)(nil)
	_ InputError = (*LexError)(nil)
)
