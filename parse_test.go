package rpn

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// postfix builds a token sequence from space-separated token text as
// FormatPostfix writes it.
func postfix(t *testing.T, s string) []Token {
	t.Helper()
	toks := []Token{}
	for _, f := range strings.Fields(s) {
		switch {
		case f == "neg":
			toks = append(toks, NegToken())
		case f == "(" || f == ")":
			toks = append(toks, ParenToken(f[0]))
		case len(f) == 1 && strings.Contains(Operators, f):
			toks = append(toks, OperatorToken(f[0]))
		default:
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				t.Fatalf("bad token %q in %q", f, s)
			}
			toks = append(toks, NumberToken(v))
		}
	}
	return toks
}

func infix(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("couldn't tokenize %q: %v", src, err)
	}
	return toks
}

func TestToPostfix(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"1+2", "1 2 +"},
		{"1+2*3", "1 2 3 * +"},
		{"1*2+3", "1 2 * 3 +"},
		{"(1-2)*3", "1 2 - 3 *"},
		{"1-2-3", "1 2 - 3 -"},
		{"8/4/2", "8 4 / 2 /"},
		{"2^3^2", "2 3 ^ 2 ^"},
		{"3 + 4 * 2 / (1 - 5)^2", "3 4 2 * 1 5 - 2 ^ / +"},
		{"((1))", "1"},
		// negation
		{"-1", "1 neg"},
		{"-(2^2)", "2 2 ^ neg"},
		{"-2^2", "2 neg 2 ^"},
		{"-2+3", "2 neg 3 +"},
		{"2*-3", "2 3 neg *"},
		{"2--3", "2 3 neg -"},
		{"--1", "1 neg neg"},
		{"(-1)", "1 neg"},
		{"2^-1", "2 1 neg ^"},
		// unbalanced brackets
		{"1+2)", "1 2 +"},
		{")1", "1"},
		{"(1+2", "1 2 +"},
		{"((1)", "1"},
		{"2*(3+4", "2 3 4 + *"},
		// malformed input is left for evaluation to reject
		{"+", "+"},
		{"1 2", "1 2"},
		{"()", ""},
	}
	p := NewParser(nil)
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			in := infix(t, c.src)
			orig := slices.Clone(in)
			got := p.ToPostfix(in)
			if diff := cmp.Diff(postfix(t, c.want), got); diff != "" {
				t.Errorf("wrong postfix for %q (-want +got):\n%s", c.src, diff)
			}
			if diff := cmp.Diff(orig, in); diff != "" {
				t.Errorf("input modified (-want +got):\n%s", diff)
			}
			for _, tok := range got {
				if tok.Kind == Paren {
					t.Errorf("postfix %q contains %v", FormatPostfix(got), tok)
				}
			}
		})
	}
}

func TestToPostfixRightAssoc(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2^3^2", "2 3 2 ^ ^"},
		{"2^3^2^1", "2 3 2 1 ^ ^ ^"},
		{"2*3^2^2", "2 3 2 2 ^ ^ *"},
		{"(2^3)^2", "2 3 ^ 2 ^"},
		{"1-2-3", "1 2 - 3 -"},
	}
	p := NewParser(NewRegistry(RightAssoc('^')))
	for _, c := range cases {
		got := FormatPostfix(p.ToPostfix(infix(t, c.src)))
		if got != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, got)
		}
	}
}

func TestParseStrict(t *testing.T) {
	cases := []struct {
		src  string
		want *BracketError
	}{
		{"1+2)", &BracketError{Index: 3}},
		{")1", &BracketError{Index: 0}},
		{"(1+2", &BracketError{Index: 0, Open: true}},
		{"1*((2)", &BracketError{Index: 2, Open: true}},
		{"(1))(", &BracketError{Index: 3}},
		{"(1+2)*3", nil},
	}
	p := NewParser(nil, Strict())
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			got, err := p.Parse(infix(t, c.src))
			if c.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if s := FormatPostfix(got); s != "1 2 + 3 *" {
					t.Errorf("wrong postfix %q", s)
				}
				return
			}
			var berr *BracketError
			if !errors.As(err, &berr) {
				t.Fatalf("wanted *BracketError, got %T %v", err, err)
			}
			if diff := cmp.Diff(c.want, berr); diff != "" {
				t.Errorf("wrong error (-want +got):\n%s", diff)
			}
		})
	}

	// Without Strict, Parse tolerates the same input.
	got, err := NewParser(nil).Parse(infix(t, "(1+2"))
	if err != nil {
		t.Errorf("permissive parse failed: %v", err)
	}
	if s := FormatPostfix(got); s != "1 2 +" {
		t.Errorf("wrong permissive postfix %q", s)
	}
}

func TestParserConvertsUnaryMinusTokens(t *testing.T) {
	in := []Token{NegToken(), NumberToken(2), OperatorToken('^'), NumberToken(2)}
	got := NewParser(nil).ToPostfix(in)
	if diff := cmp.Diff(postfix(t, "2 neg 2 ^"), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
