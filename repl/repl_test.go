package repl

import (
	"bytes"
	"io"
	"testing"

	"github.com/bmatsuo/malish/lisp"
	"github.com/bmatsuo/malish/lisp/lisplib"
	"github.com/bmatsuo/malish/parser"
	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineResult struct {
	line string
	err  error
}

type fakeLines []lineResult

func (f *fakeLines) Readline() (string, error) {
	if len(*f) == 0 {
		return "", io.EOF
	}
	r := (*f)[0]
	*f = (*f)[1:]
	return r.line, r.err
}

func lines(s ...string) *fakeLines {
	f := make(fakeLines, len(s))
	for i := range s {
		f[i] = lineResult{line: s[i]}
	}
	return &f
}

func testEnv(t *testing.T, stdout io.Writer) *lisp.LEnv {
	env := lisp.NewEnv(nil)
	err := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
		lisp.WithMaximumStackHeight(50),
	)
	require.NoError(t, err)
	require.NoError(t, lisplib.LoadLibrary(env))
	return env
}

func TestLoop(t *testing.T) {
	var out, errw bytes.Buffer
	env := testEnv(t, &out)
	in := lines("(def! x 5)", "", "   ", "(+ x 1)", `(prn "hi")`)
	err := Loop(env, in, &out, &errw, Config{})
	require.NoError(t, err)
	assert.Equal(t, "nil\n6\n\"hi\"\nnil\n", out.String())
	assert.Empty(t, errw.String())
}

func TestLoopInterrupt(t *testing.T) {
	var out, errw bytes.Buffer
	env := testEnv(t, &out)
	in := &fakeLines{
		{line: "(+ 1", err: readline.ErrInterrupt},
		{line: "(+ 1 1)"},
	}
	err := Loop(env, in, &out, &errw, Config{})
	require.NoError(t, err)
	assert.Equal(t, "2\n", out.String())
}

func TestLoopError(t *testing.T) {
	var out, errw bytes.Buffer
	env := testEnv(t, &out)
	in := lines("(do)", "(+ 1 1)")
	err := Loop(env, in, &out, &errw, Config{})
	require.Error(t, err)
	assert.Equal(t, lisp.CondInvalidSyntax, lisp.ErrorCondition(err))
	assert.Empty(t, out.String())
	assert.Equal(t, "repl:1:1: do: invalid-syntax: at least one expression expected\n", errw.String())
}

func TestLoopKeepGoing(t *testing.T) {
	var out, errw bytes.Buffer
	env := testEnv(t, &out)
	in := lines("(1 2)", "(+ 1 1)")
	err := Loop(env, in, &out, &errw, Config{KeepGoing: true})
	require.NoError(t, err)
	assert.Equal(t, "2\n", out.String())
	assert.Contains(t, errw.String(), "not-a-function")
}

func TestLoopTrace(t *testing.T) {
	var out, errw bytes.Buffer
	env := testEnv(t, &out)
	in := lines(
		"(def! f (fn* (n) (g n)))",
		"(def! g (fn* (n) (+ n nil)))",
		"(f 1)",
	)
	err := Loop(env, in, &out, &errw, Config{KeepGoing: true, Trace: true})
	require.NoError(t, err)
	assert.Contains(t, errw.String(), "type-error")
	assert.Contains(t, errw.String(), "Stack Trace [3 frames -- entrypoint last]:")
	assert.Equal(t, 0, env.Runtime.Stack.Height())
}
