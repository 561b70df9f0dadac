package edacal

import (
	"math"
)

// Namespace supplies variable values to the evaluator.
type Namespace interface {
	// Lookup returns the value of a variable and whether it is defined.
	Lookup(name string) (float64, bool)
}

// AnsName is the name of the variable holding the last result.
const AnsName = "ans"

// Symbols is a variable namespace. The variable ans always exists. Symbols is
// not safe to use concurrently.
type Symbols struct {
	names map[string]float64
}

// SymbolsOption is an option used when creating a namespace.
type SymbolsOption interface {
	symOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (varopt) symOption()  {}
func (varsopt) symOption() {}

// SetVar sets the value of a variable in the namespace.
func SetVar(name string, val float64) SymbolsOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the namespace.
func SetVars(vars map[string]float64) SymbolsOption {
	return varsopt(vars)
}

// NewSymbols creates a namespace containing ans = 0 and applies options to it
// in order.
func NewSymbols(opts ...SymbolsOption) *Symbols {
	s := Symbols{names: map[string]float64{AnsName: 0}}
	return s.Clone(opts...)
}

// Clone creates a copy of a namespace and applies options to it.
func (s *Symbols) Clone(opts ...SymbolsOption) *Symbols {
	n := Symbols{names: make(map[string]float64, len(s.names))}
	for k, v := range s.names {
		n.names[k] = v
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		default:
			panic("edacal: unknown option type")
		}
	}
	return &n
}

// Lookup returns the value of a variable and whether it is defined.
func (s *Symbols) Lookup(name string) (float64, bool) {
	v, ok := s.names[name]
	return v, ok
}

// Get returns the value of a variable. If the variable is not defined, the
// error is an *EvalError wrapping ErrUndefined.
func (s *Symbols) Get(name string) (float64, error) {
	v, ok := s.names[name]
	if !ok {
		return 0, &EvalError{Name: name, Err: ErrUndefined}
	}
	return v, nil
}

// Set sets the value of a variable, creating it if needed. Returns s for
// chaining.
func (s *Symbols) Set(name string, val float64) *Symbols {
	s.names[name] = val
	return s
}

// Names returns the names of all defined variables in sorted order.
func (s *Symbols) Names() []string {
	r := make([]string, 0, len(s.names))
	for k := range s.names {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// Len returns the number of defined variables, including ans.
func (s *Symbols) Len() int {
	return len(s.names)
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// Evaluate computes the value of a postfix sequence, stopping at the first EOF
// token. Variables, including ans, are looked up in ns. Errors are
// *EvalError. Division by exactly zero is an error regardless of the
// numerator, so the result is never an infinity or NaN produced by division.
func Evaluate(postfix []Token, ns Namespace) (float64, error) {
	m := machine{ns: ns}
	return m.run(postfix)
}

// machine holds the value stack for one evaluation.
type machine struct {
	stack []float64
	ns    Namespace
}

func (m *machine) push(v float64) {
	m.stack = append(m.stack, v)
}

// pop removes the top from the stack and returns it.
func (m *machine) pop(tok Token) (float64, error) {
	if len(m.stack) == 0 {
		return 0, &EvalError{Col: tok.Pos, Name: tok.Text, Err: ErrMissingOperands}
	}
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r, nil
}

func (m *machine) run(postfix []Token) (float64, error) {
	for _, tok := range postfix {
		if tok.Kind == EOF {
			break
		}
		if err := m.step(tok); err != nil {
			return 0, err
		}
	}
	if len(m.stack) != 1 {
		return 0, &EvalError{Err: ErrInvalidExpr}
	}
	return m.stack[0], nil
}

// step evaluates one token.
func (m *machine) step(tok Token) error {
	switch tok.Kind {
	case Num:
		m.push(tok.Value)
	case Ident, Ans:
		name := tok.Text
		if tok.Kind == Ans {
			name = AnsName
		}
		v, ok := m.ns.Lookup(name)
		if !ok {
			return &EvalError{Col: tok.Pos, Name: name, Err: ErrUndefined}
		}
		m.push(v)
	case Neg:
		x, err := m.pop(tok)
		if err != nil {
			return err
		}
		m.push(-x)
	case Sqrt:
		x, err := m.pop(tok)
		if err != nil {
			return err
		}
		r, err := call(tok, x)
		if err != nil {
			return err
		}
		m.push(r)
	case Add, Sub, Mul, Div, Pow:
		r, err := m.pop(tok)
		if err != nil {
			return err
		}
		// The divisor is checked before the left operand is needed.
		if tok.Kind == Div && r == 0 {
			return &EvalError{Col: tok.Pos, Name: tok.Text, Err: ErrDivisionByZero}
		}
		l, err := m.pop(tok)
		if err != nil {
			return err
		}
		switch tok.Kind {
		case Add:
			m.push(l + r)
		case Sub:
			m.push(l - r)
		case Mul:
			m.push(l * r)
		case Div:
			m.push(l / r)
		case Pow:
			m.push(math.Pow(l, r))
		}
	default:
		return &EvalError{Col: tok.Pos, Name: tok.Text, Err: ErrUnexpectedToken}
	}
	return nil
}
