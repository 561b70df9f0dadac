package edacal

import (
	"errors"

	"fortio.org/log"
)

// ErrNoExpression is returned by the display accessors of a Session before
// any line has been evaluated successfully.
var ErrNoExpression = errors.New("no expression evaluated")

// Session is the state of an interactive calculation: the variable namespace
// and the postfix sequence and tree of the last successfully evaluated line.
// It is not safe to use a Session concurrently.
type Session struct {
	syms    *Symbols
	postfix []Token
	tree    *Tree
}

// Result is the outcome of executing one line.
type Result struct {
	// Name is the assigned variable, or ans for a bare expression.
	Name string
	// Value is the computed value.
	Value float64
	// Postfix is the postfix sequence of the expression, ending in EOF.
	Postfix []Token
	// Tree is the expression tree.
	Tree *Tree
}

// String formats the result as "name -> value".
func (r Result) String() string {
	return r.Name + " -> " + FormatNumber(r.Value)
}

// NewSession creates a session whose namespace holds ans = 0 and any
// variables set by opts.
func NewSession(opts ...SymbolsOption) *Session {
	return &Session{syms: NewSymbols(opts...)}
}

// Exec evaluates a line, which is either "name = expression" or a bare
// expression. On success, ans and the assigned variable, if any, are set to
// the result, and the result's postfix sequence and tree replace those of the
// previous line. On failure, the session is unchanged.
func (s *Session) Exec(line string) (Result, error) {
	toks, err := Tokenize(line)
	if err != nil {
		log.Debugf("lex %q: %v", line, err)
		return Result{}, err
	}
	r := Result{Name: AnsName}
	if len(toks) >= 2 && toks[0].Kind == Ident && toks[1].Kind == Assign {
		r.Name = toks[0].Text
		toks = toks[2:]
	}
	if len(toks) == 0 || toks[0].Kind == EOF {
		return Result{}, &ParseError{Err: ErrEmpty}
	}
	log.LogVf("tokens for %q: %v", line, toks)
	r.Postfix, err = ToPostfix(toks)
	if err != nil {
		log.Debugf("postfix %q: %v", line, err)
		return Result{}, err
	}
	log.LogVf("postfix for %q: %v", line, r.Postfix)
	r.Value, err = Evaluate(r.Postfix, s.syms)
	if err != nil {
		log.Debugf("eval %q: %v", line, err)
		return Result{}, err
	}
	r.Tree, err = BuildTree(r.Postfix)
	if err != nil {
		log.Debugf("tree %q: %v", line, err)
		return Result{}, err
	}
	// Commit only after every stage has succeeded.
	s.syms.Set(AnsName, r.Value)
	if r.Name != AnsName {
		s.syms.Set(r.Name, r.Value)
	}
	s.postfix = r.Postfix
	s.tree = r.Tree
	log.LogVf("%s = %v", r.Name, r.Value)
	return r, nil
}

// Lookup returns the value of a variable. The error is an *EvalError if the
// variable is undefined.
func (s *Session) Lookup(name string) (float64, error) {
	return s.syms.Get(name)
}

// Show formats a variable as "name -> value".
func (s *Session) Show(name string) (string, error) {
	v, err := s.syms.Get(name)
	if err != nil {
		return "", err
	}
	return name + " -> " + FormatNumber(v), nil
}

// Vars returns the names of all variables in sorted order.
func (s *Session) Vars() []string {
	return s.syms.Names()
}

// Symbols returns the session's namespace.
func (s *Session) Symbols() *Symbols {
	return s.syms
}

// Postfix returns the postfix sequence of the last evaluated line.
func (s *Session) Postfix() ([]Token, error) {
	if s.postfix == nil {
		return nil, ErrNoExpression
	}
	return append([]Token(nil), s.postfix...), nil
}

// Tree returns the expression tree of the last evaluated line.
func (s *Session) Tree() (*Tree, error) {
	if s.tree == nil {
		return nil, ErrNoExpression
	}
	return s.tree, nil
}
