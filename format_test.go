package edacal

import (
	"strings"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{1e-13, "0"},
		{-1e-13, "0"},
		{1e-12, "0.000000000001"},
		{14, "14"},
		{-4, "-4"},
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{1e6, "1000000"},
		{1.0 / 3, "0.333333333333"},
		{14.000000000000002, "14"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.v); got != c.want {
			t.Errorf("FormatNumber(%g): want %q, got %q", c.v, c.want, got)
		}
	}
}

func TestWritePostfix(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2+3*4", "2 3 4 * +\n"},
		{"-2^2", "2 neg 2 ^\n"},
		{"sqrt(x) / 0.50", "x sqrt 0.5 /\n"},
		{"", "\n"},
	}
	for _, c := range cases {
		p, err := ToPostfix(mustTokenize(t, c.src))
		if err != nil {
			t.Fatalf("%q failed to convert: %v", c.src, err)
		}
		var b strings.Builder
		if err := WritePostfix(&b, p); err != nil {
			t.Fatal(err)
		}
		if b.String() != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, b.String())
		}
	}
}

func TestWritePrefix(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"x", "x\n"},
		{"2+3*4", "+ 2 * 3 4\n"},
		{"(1+2)*3", "* + 1 2 3\n"},
		{"-2^2", "^ neg 2 2\n"},
		{"sqrt(9)+1", "+ sqrt 9 1\n"},
	}
	for _, c := range cases {
		var b strings.Builder
		if err := buildFrom(t, c.src).WritePrefix(&b); err != nil {
			t.Fatal(err)
		}
		if b.String() != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, b.String())
		}
	}
}

func TestWriteDiagram(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"leaf", "7", "7\n"},
		{
			"prec", "2+3*4",
			"        \\-- 4\n" +
				"    \\-- *\n" +
				"        |-- 3\n" +
				"+\n" +
				"    |-- 2\n",
		},
		{
			"left-nested", "(1+2)*3",
			"    \\-- 3\n" +
				"*\n" +
				"    |   \\-- 2\n" +
				"    |-- +\n" +
				"    |   |-- 1\n",
		},
		{
			"unary", "-sqrt(x)",
			"neg\n" +
				"    |-- sqrt\n" +
				"    |   |-- x\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b strings.Builder
			if err := buildFrom(t, c.src).WriteDiagram(&b); err != nil {
				t.Fatal(err)
			}
			if b.String() != c.want {
				t.Errorf("%q draws as\n%s\nwant\n%s", c.src, b.String(), c.want)
			}
		})
	}
}

func TestWriteEmptyTree(t *testing.T) {
	var tr *Tree
	var b strings.Builder
	tr.WriteDiagram(&b)
	tr.WritePrefix(&b)
	if want := emptyTree + emptyTree; b.String() != want {
		t.Errorf("want %q, got %q", want, b.String())
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Num, Text: "2.50", Value: 2.5}, "2.5"},
		{Token{Kind: Ident, Text: "x"}, "x"},
		{Token{Kind: Ans, Text: "ans"}, "ans"},
		{neg(1), "neg"},
		{Token{Kind: Sqrt, Text: "sqrt"}, "sqrt"},
		{Token{Kind: Pow, Text: "^"}, "^"},
		{eof(3), ""},
	}
	for _, c := range cases {
		if got := TokenString(c.tok); got != c.want {
			t.Errorf("%v: want %q, got %q", c.tok, c.want, got)
		}
	}
}
