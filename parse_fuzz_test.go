//go:build go1.18
// +build go1.18

package edacal_test

import (
	"testing"

	edacal "github.com/Enzo-Palavicino/T3EDA-Ruiz-Palavicino"
)

func FuzzToPostfix(f *testing.F) {
	f.Add("x")
	f.Add("-2^2")
	f.Add("sqrt 4 + (")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := edacal.Tokenize(s)
		if err != nil {
			return
		}
		if toks[len(toks)-1].Kind != edacal.EOF {
			t.Fatalf("%q lexed without EOF: %v", s, toks)
		}
		p, err := edacal.ToPostfix(toks)
		if err != nil {
			return
		}
		for _, tok := range p {
			if tok.Kind == edacal.LParen || tok.Kind == edacal.RParen {
				t.Errorf("%q converted with parenthesis: %v", s, p)
			}
		}
	})
}
