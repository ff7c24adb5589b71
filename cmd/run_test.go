package cmd

import (
	"bytes"
	"testing"

	"github.com/bmatsuo/malish/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRunFlags(t *testing.T, expr, print bool) {
	t.Helper()
	oldExpr, oldPrint := runExpression, runPrint
	runExpression, runPrint = expr, print
	t.Cleanup(func() {
		runExpression, runPrint = oldExpr, oldPrint
	})
}

func TestRunExpressions(t *testing.T) {
	setRunFlags(t, true, true)
	var stdout, stderr bytes.Buffer
	cfg := DefaultConfig()
	env, err := newEnv(cfg, &stdout, &stderr)
	require.NoError(t, err)
	err = runArgs(env, cfg, []string{"(def! x 2)", "(* x 21)", `(str "a" x)`}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "nil\n42\n\"a 2\"\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunFiles(t *testing.T) {
	setRunFlags(t, false, false)
	path := writeFile(t, "hello.mal", `
; definitions
(def! greet (fn* (name) (str "hello" name)))
(prn (greet "world"))
`)
	var stdout, stderr bytes.Buffer
	cfg := DefaultConfig()
	env, err := newEnv(cfg, &stdout, &stderr)
	require.NoError(t, err)
	err = runArgs(env, cfg, []string{path}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "\"hello world\"\n", stdout.String())
	assert.Equal(t, lisp.LFun, env.Get("greet").Type)
}

func TestRunError(t *testing.T) {
	setRunFlags(t, true, true)
	var stdout, stderr bytes.Buffer
	cfg := DefaultConfig()
	env, err := newEnv(cfg, &stdout, &stderr)
	require.NoError(t, err)
	err = runArgs(env, cfg, []string{"(1)", "(+ 1 1)"}, &stdout, &stderr)
	require.Error(t, err)
	assert.True(t, isReported(err))
	assert.Equal(t, lisp.CondNotFunction, lisp.ErrorCondition(err))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "cmdline:1:1: not-a-function")

	stdout.Reset()
	stderr.Reset()
	cfg.KeepGoing = true
	cfg.Trace = true
	err = runArgs(env, cfg, []string{"(1)", "(+ 1 1)"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, "2\n", stdout.String())
	assert.Contains(t, stderr.String(), "Stack Trace")
}

func TestPrelude(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prelude = []string{writeFile(t, "prelude.mal", "(def! inc (fn* (x) (+ x 1)))")}
	var stdout, stderr bytes.Buffer
	env, err := newEnv(cfg, &stdout, &stderr)
	require.NoError(t, err)
	v, err := env.ReadEval("test", "(inc 41)")
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())

	cfg.Prelude = []string{"/nonexistent/prelude.mal"}
	_, err = newEnv(cfg, &stdout, &stderr)
	assert.Equal(t, lisp.CondIOError, lisp.ErrorCondition(err))
}
