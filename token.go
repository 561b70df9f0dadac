package edacal

import "strconv"

// Kind classifies a token.
type Kind int8

const (
	// EOF marks the end of a token sequence.
	EOF Kind = iota
	// Num is a number literal. Its Value holds the parsed number.
	Num
	// Ident is a variable name.
	Ident
	// Ans is the last answer variable, ans.
	Ans
	Add
	Sub
	Mul
	Div
	Pow
	// Neg is unary negation. The lexer never produces it; the converter
	// synthesizes it from a minus sign in operand position.
	Neg
	// Sqrt is the square root function.
	Sqrt
	LParen
	RParen
	// Assign is the = marker separating an assignment target from its
	// expression.
	Assign
)

var kindnames = [...]string{
	EOF:    "EOF",
	Num:    "Num",
	Ident:  "Ident",
	Ans:    "Ans",
	Add:    "Add",
	Sub:    "Sub",
	Mul:    "Mul",
	Div:    "Div",
	Pow:    "Pow",
	Neg:    "Neg",
	Sqrt:   "Sqrt",
	LParen: "LParen",
	RParen: "RParen",
	Assign: "Assign",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Token is a lexical unit. Tokens are values and are never modified after
// the lexer creates them.
type Token struct {
	// Kind is the token's classification.
	Kind Kind
	// Text is the source text of the token. Synthesized tokens use a
	// descriptive name instead, e.g. "neg".
	Text string
	// Value is the value of a Num token. It is zero for other kinds.
	Value float64
	// Pos is the column of the first rune of the token, counting from 1, or 0
	// if the token did not come from the input.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// IsValue returns whether the token pushes a value: a number, a variable, or
// ans.
func (t Token) IsValue() bool {
	switch t.Kind {
	case Num, Ident, Ans:
		return true
	default:
		return false
	}
}

// IsOperator returns whether the token is a unary or binary arithmetic
// operator. Functions are not operators.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Add, Sub, Mul, Div, Pow, Neg:
		return true
	default:
		return false
	}
}

// IsFunction returns whether the token is a function name.
func (t Token) IsFunction() bool {
	return t.Kind == Sqrt
}

// Arity returns the number of operands the token consumes: 0 for values, 1
// for negation and functions, and 2 for binary operators. Other kinds
// (brackets, assignment, EOF) have arity -1.
func (t Token) Arity() int {
	switch t.Kind {
	case Num, Ident, Ans:
		return 0
	case Neg, Sqrt:
		return 1
	case Add, Sub, Mul, Div, Pow:
		return 2
	default:
		return -1
	}
}

// neg is the token the converter pushes for unary minus.
func neg(pos int) Token {
	return Token{Kind: Neg, Text: "neg", Pos: pos}
}

// eof is the end-of-sequence token.
func eof(pos int) Token {
	return Token{Kind: EOF, Pos: pos}
}
