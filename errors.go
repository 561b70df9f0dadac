package edacal

import (
	"errors"
	"strconv"
)

// Causes of lexical errors.
var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrUnknownChar   = errors.New("unrecognized character")
)

// Causes of parse errors, from both postfix conversion and tree building.
var (
	ErrOperandExpected  = errors.New("operand expected")
	ErrUnbalanced       = errors.New("unbalanced parentheses")
	ErrUnexpectedAssign = errors.New("unexpected assignment")
	ErrIncomplete       = errors.New("incomplete expression")
	ErrMissingOperand   = errors.New("missing operand")
	ErrEmpty            = errors.New("empty expression")
)

// Causes of evaluation errors.
var (
	ErrMissingOperands = errors.New("missing operands")
	ErrNegativeSqrt    = errors.New("negative sqrt argument")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUndefined       = errors.New("undefined variable")
)

// Causes shared by the parser and the evaluator.
var (
	ErrInvalidExpr     = errors.New("invalid expression")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text the lexer was scanning when it failed, including the
	// offending rune.
	Text string
	// Col is the position of the start of Text.
	Col int
	// Err is ErrInvalidNumber or ErrUnknownChar.
	Err error
}

func (err *LexError) Error() string {
	return errpos(err.Col, err.Err.Error()+": "+err.Text)
}

func (err *LexError) Unwrap() error {
	return err.Err
}

func (err *LexError) Pos() int {
	return err.Col
}

// ParseError indicates a structural problem in an expression: mismatched
// parentheses, an operator without operands, or a misplaced token. It
// implements InputError.
type ParseError struct {
	// Col is the position of the token that caused the error, or 0 if the
	// error concerns the expression as a whole.
	Col int
	// Token is the text of the token that caused the error, if any.
	Token string
	// Err is the cause.
	Err error
}

func (err *ParseError) Error() string {
	msg := err.Err.Error()
	if err.Token != "" {
		msg += " at " + strconv.Quote(err.Token)
	}
	return errpos(err.Col, msg)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

func (err *ParseError) Pos() int {
	return err.Col
}

// EvalError is an error from evaluating a postfix sequence. It implements
// InputError.
type EvalError struct {
	// Col is the position of the token being evaluated, or 0.
	Col int
	// Name is the undefined variable for ErrUndefined, or the operator token
	// for other causes.
	Name string
	// Err is the cause.
	Err error
}

func (err *EvalError) Error() string {
	msg := err.Err.Error()
	if err.Name != "" && errors.Is(err.Err, ErrUndefined) {
		msg += ": " + err.Name
	}
	return errpos(err.Col, msg)
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

func (err *EvalError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position. A
// position of 0 means none is known.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error caused by the text of an expression. Every error
// resulting from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error, or 0 if the
	// error is not attributable to one token.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
	_ InputError = (*EvalError)(nil)
)
