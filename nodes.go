package edacal

import (
	"strings"
)

// Node is a node in an expression tree. Values are leaves, negation and
// functions use only Left, and binary operators use both children.
type Node struct {
	Tok   Token
	Left  *Node
	Right *Node
}

// Tree is an expression tree built from a postfix sequence. A tree owns all of
// its nodes; no node is shared with another tree.
type Tree struct {
	root *Node
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Empty returns whether the tree has no nodes.
func (t *Tree) Empty() bool {
	return t.Root() == nil
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.Root().count()
}

func (n *Node) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.count() + n.Right.count()
}

// BuildTree builds an expression tree from a postfix sequence, stopping at the
// first EOF token. Operators without enough operands and sequences that leave
// other than exactly one node produce a *ParseError; in that case no partial
// tree is returned.
func BuildTree(postfix []Token) (*Tree, error) {
	var stack []*Node
	for _, tok := range postfix {
		if tok.Kind == EOF {
			break
		}
		n := &Node{Tok: tok}
		switch tok.Arity() {
		case 0:
		case 1:
			if len(stack) < 1 {
				return nil, &ParseError{Col: tok.Pos, Token: tok.Text, Err: ErrMissingOperand}
			}
			n.Left = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case 2:
			if len(stack) < 2 {
				return nil, &ParseError{Col: tok.Pos, Token: tok.Text, Err: ErrMissingOperand}
			}
			n.Right = stack[len(stack)-1]
			n.Left = stack[len(stack)-2]
			stack = stack[:len(stack)-2]
		default:
			return nil, &ParseError{Col: tok.Pos, Token: tok.Text, Err: ErrUnexpectedToken}
		}
		stack = append(stack, n)
	}
	if len(stack) != 1 {
		return nil, &ParseError{Err: ErrInvalidExpr}
	}
	return &Tree{root: stack[0]}, nil
}

// String creates a string representation of the tree, with alternating round
// and square brackets grouping each term.
func (t *Tree) String() string {
	if t.Empty() {
		return ""
	}
	var b strings.Builder
	t.root.fmt(&b, false)
	return b.String()
}

func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.Tok.Kind {
	case Num, Ident, Ans:
		b.WriteString(TokenString(n.Tok))
	case Neg:
		b.WriteByte('-')
		n.Left.fmt(b, !square)
	case Sqrt:
		b.WriteString("sqrt")
		n.Left.fmt(b, !square)
	case Add, Sub, Mul, Div, Pow:
		n.Left.fmt(b, !square)
		b.WriteString(" " + n.Tok.Text + " ")
		n.Right.fmt(b, !square)
	default:
		panic("edacal: invalid node kind " + n.Tok.Kind.String() + " after writing " + b.String())
	}
}
