package edacal

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// FormatNumber formats a value for display. Values smaller in magnitude than
// 1e-12 are "0". Otherwise the value is written with twelve decimal places,
// without trailing zeros or a trailing decimal point.
func FormatNumber(v float64) string {
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', 12, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}

// TokenString returns the display text of a token.
func TokenString(t Token) string {
	switch t.Kind {
	case Num:
		return FormatNumber(t.Value)
	case Sqrt:
		return "sqrt"
	case Neg:
		return "neg"
	case EOF:
		return ""
	default:
		return t.Text
	}
}

// WritePostfix writes the tokens of a sequence up to its first EOF token,
// separated by spaces and followed by a newline.
func WritePostfix(w io.Writer, tokens []Token) error {
	var b strings.Builder
	for i, tok := range tokens {
		if tok.Kind == EOF {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(TokenString(tok))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// WritePrefix writes the nodes of the tree in prefix order, separated by
// spaces and followed by a newline.
func (t *Tree) WritePrefix(w io.Writer) error {
	if t.Empty() {
		_, err := io.WriteString(w, emptyTree)
		return err
	}
	var items []string
	t.root.prefix(&items)
	_, err := io.WriteString(w, strings.Join(items, " ")+"\n")
	return err
}

func (n *Node) prefix(items *[]string) {
	if n == nil {
		return
	}
	*items = append(*items, TokenString(n.Tok))
	n.Left.prefix(items)
	n.Right.prefix(items)
}

// WriteDiagram draws the tree sideways with the root at the left margin,
// right subtrees above their parents and left subtrees below. Left children
// are marked "|-- " and right children "\-- ".
func (t *Tree) WriteDiagram(w io.Writer) error {
	if t.Empty() {
		_, err := io.WriteString(w, emptyTree)
		return err
	}
	var b strings.Builder
	t.root.diagram(&b, "", false)
	_, err := io.WriteString(w, b.String())
	return err
}

func (n *Node) diagram(b *strings.Builder, indent string, left bool) {
	next := indent + "    "
	if left {
		next = indent + "|   "
	}
	if n.Right != nil {
		n.Right.diagram(b, next, false)
	}
	b.WriteString(indent)
	if indent != "" {
		if left {
			b.WriteString("|-- ")
		} else {
			b.WriteString("\\-- ")
		}
	}
	b.WriteString(TokenString(n.Tok))
	b.WriteByte('\n')
	if n.Left != nil {
		n.Left.diagram(b, next, true)
	}
}

const emptyTree = "(empty tree)\n"
