package edacal

import "math"

// Func is a built-in function of one real argument. It returns an error
// wrapping the cause if x is outside its domain.
type Func func(x float64) (float64, error)

var globalfuncs = map[Kind]Func{
	Sqrt: func(x float64) (float64, error) {
		if x < 0 {
			return 0, ErrNegativeSqrt
		}
		return math.Sqrt(x), nil
	},
}

// call applies the function named by a function token.
func call(tok Token, x float64) (float64, error) {
	f := globalfuncs[tok.Kind]
	if f == nil {
		return 0, &EvalError{Col: tok.Pos, Name: tok.Text, Err: ErrUnexpectedToken}
	}
	r, err := f(x)
	if err != nil {
		return 0, &EvalError{Col: tok.Pos, Name: tok.Text, Err: err}
	}
	return r, nil
}
