// Package repl runs the line-oriented calculator session: it reads lines,
// dispatches display commands, and reports results and errors.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/edwingeng/deque"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	edacal "github.com/Enzo-Palavicino/T3EDA-Ruiz-Palavicino"
)

// LineReader supplies input lines. *liner.State implements it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Scanner is a LineReader over a non-interactive input. It ignores prompts.
type Scanner struct {
	sc *bufio.Scanner
}

// NewScanner creates a LineReader reading lines from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// Prompt returns the next line, or io.EOF when the input is exhausted.
func (s *Scanner) Prompt(string) (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

// DefaultPrompt is the prompt shown before each line.
const DefaultPrompt = ">> "

// DefaultHistory is the number of evaluated lines the history command keeps.
const DefaultHistory = 20

// REPL dispatches input lines to a session and writes the responses.
type REPL struct {
	sess   *edacal.Session
	w      io.Writer
	prompt string

	// hist holds entries for the most recent evaluated lines, oldest first.
	hist    deque.Deque
	histmax int
	onEval  func(line string)

	value *color.Color
	fail  *color.Color
}

type entry struct {
	line string
	res  edacal.Result
}

// Option configures a REPL.
type Option func(*REPL)

// Prompt sets the prompt passed to the LineReader.
func Prompt(p string) Option {
	return func(r *REPL) { r.prompt = p }
}

// History sets the number of evaluated lines kept for the history command.
// Zero disables the history.
func History(n int) Option {
	return func(r *REPL) {
		if n < 0 {
			n = 0
		}
		r.histmax = n
	}
}

// NoColor disables colored output.
func NoColor() Option {
	return func(r *REPL) {
		r.value.DisableColor()
		r.fail.DisableColor()
	}
}

// OnEval sets a function called with each line that evaluates successfully.
func OnEval(f func(line string)) Option {
	return func(r *REPL) { r.onEval = f }
}

// New creates a REPL writing to w.
func New(sess *edacal.Session, w io.Writer, opts ...Option) *REPL {
	r := REPL{
		sess:    sess,
		w:       w,
		prompt:  DefaultPrompt,
		hist:    deque.NewDeque(),
		histmax: DefaultHistory,
		value:   color.New(color.FgCyan),
		fail:    color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return &r
}

// Run reads and handles lines until the input ends or an exit command. An
// aborted prompt, e.g. Ctrl+C in a terminal, discards the line.
func (r *REPL) Run(in LineReader) error {
	for {
		line, err := in.Prompt(r.prompt)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		default:
			return err
		}
		if r.Handle(line) {
			return nil
		}
	}
}

const helpText = `commands:
  name = expr   evaluate expr and store it in name and ans
  expr          evaluate expr and store it in ans
  show name     print a variable
  vars          print all variables
  postfix       print the last expression in postfix order
  prefix        print the last expression in prefix order
  tree          draw the last expression tree
  history       list recently evaluated lines
  help          print this message
  exit          leave
`

// Handle processes one line and reports whether it asked to exit. Commands
// that take no arguments are recognized only when alone on the line, so
// "tree + 1" is an expression.
func (r *REPL) Handle(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	fields := strings.Fields(line)
	cmd := fields[0]
	if len(fields) == 1 {
		switch cmd {
		case "exit", "quit":
			return true
		case "help":
			io.WriteString(r.w, helpText)
			return false
		case "tree":
			r.tree()
			return false
		case "postfix", "posfix":
			r.postfix()
			return false
		case "prefix":
			r.prefix()
			return false
		case "vars":
			r.vars()
			return false
		case "history":
			r.history()
			return false
		}
	}
	if cmd == "show" {
		r.show(fields[1:])
		return false
	}
	r.eval(line)
	return false
}

func (r *REPL) eval(line string) {
	res, err := r.sess.Exec(line)
	if err != nil {
		r.error(err)
		return
	}
	r.value.Fprintln(r.w, res.String())
	r.remember(line, res)
	if r.onEval != nil {
		r.onEval(line)
	}
}

func (r *REPL) show(args []string) {
	if len(args) == 0 {
		r.error(errors.New("missing variable name"))
		return
	}
	s, err := r.sess.Show(args[0])
	if err != nil {
		r.error(err)
		return
	}
	r.value.Fprintln(r.w, s)
}

func (r *REPL) vars() {
	syms := r.sess.Symbols()
	for _, name := range syms.Names() {
		v, _ := syms.Lookup(name)
		r.value.Fprintln(r.w, name+" -> "+edacal.FormatNumber(v))
	}
}

func (r *REPL) tree() {
	t, err := r.sess.Tree()
	if err != nil {
		r.error(err)
		return
	}
	t.WriteDiagram(r.w)
}

func (r *REPL) prefix() {
	t, err := r.sess.Tree()
	if err != nil {
		r.error(err)
		return
	}
	t.WritePrefix(r.w)
}

func (r *REPL) postfix() {
	p, err := r.sess.Postfix()
	if err != nil {
		r.error(err)
		return
	}
	edacal.WritePostfix(r.w, p)
}

// remember adds an evaluated line to the history, dropping the oldest entry
// when the history is full.
func (r *REPL) remember(line string, res edacal.Result) {
	if r.histmax == 0 {
		return
	}
	for r.hist.Len() >= r.histmax {
		r.hist.PopFront()
	}
	r.hist.PushBack(entry{line: line, res: res})
}

func (r *REPL) history() {
	r.each(func(i int, e entry) {
		fmt.Fprintf(r.w, "%3d  %s\n", i+1, e.line)
		r.value.Fprintln(r.w, "     "+e.res.String())
	})
}

// each calls f on each history entry, oldest first. It rotates through the
// deque so that the deque ends in its original order.
func (r *REPL) each(f func(i int, e entry)) {
	n := r.hist.Len()
	for i := 0; i < n; i++ {
		e := r.hist.Front().(entry)
		r.hist.PopFront()
		r.hist.PushBack(e)
		f(i, e)
	}
}

func (r *REPL) error(err error) {
	r.fail.Fprintln(r.w, "error: "+err.Error())
}

// Entries returns the lines in the history, oldest first.
func (r *REPL) Entries() []string {
	lines := make([]string, 0, r.hist.Len())
	r.each(func(_ int, e entry) { lines = append(lines, e.line) })
	return lines
}
