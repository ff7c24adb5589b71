package elpstest

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/bmatsuo/malish/lisp"
	"github.com/bmatsuo/malish/lisp/lisplib"
	"github.com/bmatsuo/malish/parser"
)

// Runner is a test runner.
type Runner struct {
	// Loader is the library loader used to initialize the test environment.
	// When Loader is nil lisplib.LoadLibrary is used.
	Loader func(*lisp.LEnv) error

	// Config is applied to each test environment after the defaults.
	Config []lisp.Config
}

// NewEnv returns a fresh root environment.  Output of printing functions is
// written to stdout.
func (r *Runner) NewEnv(stdout *bytes.Buffer) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	config := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
		lisp.WithStderr(stdout),
	}
	config = append(config, r.Config...)
	err := lisp.InitializeUserEnv(env, config...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", err)
	}
	loader := r.Loader
	if loader == nil {
		loader = lisplib.LoadLibrary
	}
	err = loader(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}
	return env, nil
}

// RunTestFile evaluates the file at path with load-file and then evaluates
// each expression in check, which must produce a true value.
func (r *Runner) RunTestFile(t *testing.T, path string, check ...string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Unable to read test file: %v", err)
		return
	}
	var stdout bytes.Buffer
	env, err := r.NewEnv(&stdout)
	if err != nil {
		t.Fatal(err)
	}
	load := lisp.SExpr([]*lisp.LVal{lisp.Symbol("load-file"), lisp.String(path)})
	_, err = env.Eval(load)
	if err != nil {
		t.Errorf("%s: %v", path, err)
		if lerr, ok := lisp.GoError(err); ok && lerr.Stack != nil {
			var buf bytes.Buffer
			lerr.Stack.DebugPrint(&buf)
			t.Error(buf.String())
		}
		return
	}
	for _, expr := range check {
		v, err := env.ReadEval("test", expr)
		if err != nil {
			t.Errorf("%s: %s: %v", path, expr, err)
			continue
		}
		if !lisp.True(v) {
			t.Errorf("%s: %s: evaluated to %v", path, expr, v)
		}
	}
}

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.  When evaluation fails the error message is compared with
// Result.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
	Output string // output written by printing functions
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()
	r := &Runner{}
	r.RunTestSuite(t, tests)
}

// RunTestSuite runs each TestSequence in tests on isolated environments
// created by r.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()
	for i, test := range tests {
		var stdout bytes.Buffer
		env, err := r.NewEnv(&stdout)
		if err != nil {
			t.Fatal(err)
		}
		for j, expr := range test.TestSequence {
			stdout.Reset()
			var result string
			v, err := env.ReadEval("test", expr.Expr)
			if err != nil {
				result = err.Error()
			} else {
				result = v.String()
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if stdout.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, stdout.String())
			}
		}
	}
}
