package repl_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	edacal "github.com/Enzo-Palavicino/T3EDA-Ruiz-Palavicino"
	"github.com/Enzo-Palavicino/T3EDA-Ruiz-Palavicino/internal/repl"
)

func run(t *testing.T, input string, opts ...repl.Option) (string, *repl.REPL) {
	t.Helper()
	var b bytes.Buffer
	r := repl.New(edacal.NewSession(), &b, append([]repl.Option{repl.NoColor()}, opts...)...)
	require.NoError(t, r.Run(repl.NewScanner(strings.NewReader(input))))
	return b.String(), r
}

func TestRunEval(t *testing.T) {
	out, _ := run(t, "x = 3+4\nx*2\nshow x\n\nans / 0\nans\n")
	want := "x -> 7\n" +
		"ans -> 14\n" +
		"x -> 7\n" +
		"error: 5: division by zero\n" +
		"ans -> 14\n"
	assert.Equal(t, want, out)
}

func TestRunExit(t *testing.T) {
	for _, cmd := range []string{"exit", "quit", "  exit  "} {
		out, _ := run(t, "1+1\n"+cmd+"\n2+2\n")
		assert.Equal(t, "ans -> 2\n", out, cmd)
	}
}

func TestShow(t *testing.T) {
	out, _ := run(t, "show\nshow y\nshow ans\n")
	want := "error: missing variable name\n" +
		"error: undefined variable: y\n" +
		"ans -> 0\n"
	assert.Equal(t, want, out)
}

func TestVars(t *testing.T) {
	out, _ := run(t, "b = 2\na = 0.5\nvars\n")
	want := "b -> 2\n" +
		"a -> 0.5\n" +
		"a -> 0.5\n" +
		"ans -> 0.5\n" +
		"b -> 2\n"
	assert.Equal(t, want, out)
}

func TestDisplayCommands(t *testing.T) {
	out, _ := run(t, "(1+2)*3\npostfix\nposfix\nprefix\ntree\n")
	want := "ans -> 9\n" +
		"1 2 + 3 *\n" +
		"1 2 + 3 *\n" +
		"* + 1 2 3\n" +
		"    \\-- 3\n" +
		"*\n" +
		"    |   \\-- 2\n" +
		"    |-- +\n" +
		"    |   |-- 1\n"
	assert.Equal(t, want, out)
}

func TestDisplayBeforeEval(t *testing.T) {
	out, _ := run(t, "postfix\nprefix\ntree\n")
	want := strings.Repeat("error: "+edacal.ErrNoExpression.Error()+"\n", 3)
	assert.Equal(t, want, out)
}

func TestDisplayAfterError(t *testing.T) {
	out, _ := run(t, "2^3\nsqrt(-1)\npostfix\n")
	assert.True(t, strings.HasSuffix(out, "\n2 3 ^\n"), out)
}

func TestCommandWithOperands(t *testing.T) {
	out, _ := run(t, "tree = 4\ntree + 1\nvars\n")
	want := "tree -> 4\n" +
		"ans -> 5\n" +
		"ans -> 5\n" +
		"tree -> 4\n"
	assert.Equal(t, want, out)
}

func TestHelp(t *testing.T) {
	out, _ := run(t, "help\n")
	assert.Contains(t, out, "commands:")
	assert.Contains(t, out, "show name")
}

func TestHistory(t *testing.T) {
	out, r := run(t, "1\n2\n1/0\n3\nhistory\n", repl.History(2))
	assert.Equal(t, []string{"2", "3"}, r.Entries())
	assert.True(t, strings.HasSuffix(out, "  1  2\n     ans -> 2\n  2  3\n     ans -> 3\n"), out)
	// Listing leaves the history in order.
	assert.Equal(t, []string{"2", "3"}, r.Entries())
}

func TestHistoryDisabled(t *testing.T) {
	_, r := run(t, "1\n2\n", repl.History(0))
	assert.Empty(t, r.Entries())
	_, r = run(t, "1\n2\n", repl.History(-1))
	assert.Empty(t, r.Entries())
}

func TestOnEval(t *testing.T) {
	var lines []string
	run(t, "x = 1\nbogus\n\nvars\nx + 1\n", repl.OnEval(func(line string) { lines = append(lines, line) }))
	assert.Equal(t, []string{"x = 1", "x + 1"}, lines)
}

type script struct {
	l   []string
	err []error
}

func (s *script) Prompt(string) (string, error) {
	if len(s.l) == 0 {
		return "", io.EOF
	}
	l, err := s.l[0], s.err[0]
	s.l, s.err = s.l[1:], s.err[1:]
	return l, err
}

func TestRunAborted(t *testing.T) {
	var b bytes.Buffer
	r := repl.New(edacal.NewSession(), &b, repl.NoColor())
	in := &script{
		l:   []string{"1+", "2+2"},
		err: []error{liner.ErrPromptAborted, nil},
	}
	require.NoError(t, r.Run(in))
	assert.Equal(t, "ans -> 4\n", b.String())
}

func TestRunReadError(t *testing.T) {
	bad := errors.New("broken terminal")
	r := repl.New(edacal.NewSession(), io.Discard, repl.NoColor())
	in := &script{l: []string{""}, err: []error{bad}}
	assert.ErrorIs(t, r.Run(in), bad)
}

func TestPrompt(t *testing.T) {
	var got []string
	in := promptRecorder(func(p string) { got = append(got, p) })
	r := repl.New(edacal.NewSession(), io.Discard, repl.Prompt("? "))
	require.NoError(t, r.Run(in))
	assert.Equal(t, []string{"? "}, got)
}

type promptRecorder func(string)

func (f promptRecorder) Prompt(p string) (string, error) {
	f(p)
	return "", io.EOF
}
