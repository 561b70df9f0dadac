package edacal

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Operators contains the single-rune tokens other than numbers and names.
const Operators = "+-*/^()="

var operkinds = [...]Kind{Add, Sub, Mul, Div, Pow, LParen, RParen, Assign}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// Tokenize splits a line into tokens. The result always ends with an EOF
// token, even for empty input.
func Tokenize(text string) ([]Token, error) {
	return Lex(strings.NewReader(text))
}

// Lex reads tokens from src until EOF. The result always ends with an EOF
// token. If a token is invalid, the error is a *LexError and no tokens are
// returned.
func Lex(src io.RuneScanner) ([]Token, error) {
	l := lex(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of input, the result
// is an EOF token.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return eof(l.rune + 1), nil
			}
			return Token{}, err
		}
		tok := Token{Pos: l.rune}
		switch {
		case isSpace(r):
			continue
		case isDigit(r), r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return Token{}, err
			}
			tok.Text = l.buf.String()
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return Token{}, &LexError{Text: tok.Text, Col: tok.Pos, Err: ErrInvalidNumber}
			}
			tok.Kind = Num
			tok.Value = v
			return tok, nil
		case isLetter(r), r == '_':
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return Token{}, err
			}
			tok.Text = l.buf.String()
			switch tok.Text {
			case "sqrt":
				tok.Kind = Sqrt
			case "ans":
				tok.Kind = Ans
			default:
				tok.Kind = Ident
			}
			return tok, nil
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				tok.Text = Operators[k : k+1]
				tok.Kind = operkinds[k]
				return tok, nil
			}
			return Token{}, &LexError{Text: string(r), Col: tok.Pos, Err: ErrUnknownChar}
		}
	}
}

// scanNum scans digits with at most one decimal point. A second point ends
// the number without being consumed.
func (l *lexer) scanNum() error {
	var dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case isDigit(r):
			l.buf.WriteRune(r)
		case r == '.' && !dot:
			dot = true
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		switch {
		case r == '_', isLetter(r), isDigit(r):
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
