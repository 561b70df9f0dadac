package edacal

// ToPostfix converts a token sequence in infix order to postfix order using
// operator precedence. Conversion stops at the first EOF token; a sequence
// without one is treated as if it ended there. The result always ends with
// an EOF token. Structural problems produce a *ParseError.
//
// A minus sign where an operand is expected becomes a Neg token. Sqrt applies
// to the operand or parenthesized group that follows it.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var ops []Token
	expect := true
	end := 0
	// yield pops and emits operators that bind at least as tightly as in.
	yield := func(in Token) {
		p := precedence(in.Kind)
		for len(ops) > 0 {
			top := ops[len(ops)-1]
			if top.Kind == LParen {
				return
			}
			if !top.IsFunction() && !precedence(top.Kind).before(p) {
				return
			}
			out = append(out, top)
			ops = ops[:len(ops)-1]
		}
	}

scan:
	for _, tok := range tokens {
		end = tok.Pos
		switch tok.Kind {
		case Num, Ident, Ans:
			out = append(out, tok)
			expect = false
		case Sqrt:
			ops = append(ops, tok)
			expect = true
		case Sub:
			if expect {
				ops = append(ops, neg(tok.Pos))
				continue
			}
			yield(tok)
			ops = append(ops, tok)
			expect = true
		case Add, Mul, Div, Pow:
			if expect {
				return nil, &ParseError{Col: tok.Pos, Token: tok.Text, Err: ErrOperandExpected}
			}
			yield(tok)
			ops = append(ops, tok)
			expect = true
		case LParen:
			ops = append(ops, tok)
			expect = true
		case RParen:
			for {
				if len(ops) == 0 {
					return nil, &ParseError{Col: tok.Pos, Token: tok.Text, Err: ErrUnbalanced}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == LParen {
					break
				}
				out = append(out, top)
			}
			// A function applies to the group it precedes.
			if len(ops) > 0 && ops[len(ops)-1].IsFunction() {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			expect = false
		case Assign:
			return nil, &ParseError{Col: tok.Pos, Token: tok.Text, Err: ErrUnexpectedAssign}
		case EOF:
			break scan
		default:
			return nil, &ParseError{Col: tok.Pos, Token: tok.Text, Err: ErrUnexpectedToken}
		}
	}

	if expect && len(out) > 0 {
		return nil, &ParseError{Col: end, Err: ErrIncomplete}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == LParen {
			return nil, &ParseError{Col: top.Pos, Token: top.Text, Err: ErrUnbalanced}
		}
		out = append(out, top)
	}
	return append(out, eof(end)), nil
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// before returns whether an operator p already on the stack must be emitted
// before pushing an incoming operator in.
func (p operator) before(in operator) bool {
	if p.prec != in.prec {
		return p.prec > in.prec
	}
	return !in.right
}

// precedence gets the precedence of an operator or function kind. Other kinds
// have precedence 0.
func precedence(k Kind) operator {
	switch k {
	case Neg, Sqrt:
		return operator{4, true}
	case Pow:
		return operator{3, true}
	case Mul, Div:
		return operator{2, false}
	case Add, Sub:
		return operator{1, false}
	default:
		return operator{}
	}
}
