package cmd

import (
	"fmt"
	"io"

	"github.com/bmatsuo/malish/lisp"
	"github.com/bmatsuo/malish/lisp/lisplib"
	"github.com/bmatsuo/malish/parser"
)

// newEnv returns a root environment with the standard library and the
// configured prelude files loaded.
func newEnv(cfg *Config, stdout, stderr io.Writer) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	err := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.NewReader()),
		lisp.WithMaximumStackHeight(cfg.MaxStackHeight),
		lisp.WithStdout(stdout),
		lisp.WithStderr(stderr),
	)
	if err != nil {
		return nil, err
	}
	err = lisplib.LoadLibrary(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}
	for _, path := range cfg.Prelude {
		_, err = loadFile(env, path)
		if err != nil {
			return nil, fmt.Errorf("prelude: %w", err)
		}
	}
	return env, nil
}

// loadFile evaluates the forms in the file at path with load-file.
func loadFile(env *lisp.LEnv, path string) (*lisp.LVal, error) {
	return env.Eval(lisp.SExpr([]*lisp.LVal{
		lisp.Symbol("load-file"),
		lisp.String(path),
	}))
}

// reportError writes err to w along with a stack trace if trace is true.
// The returned error is marked so Execute does not print it again.
func reportError(w io.Writer, err error, trace bool) error {
	fmt.Fprintln(w, err)
	if trace {
		if lerr, ok := lisp.GoError(err); ok && lerr.Stack != nil {
			lerr.Stack.DebugPrint(w)
		}
	}
	return &reportedError{err}
}

type reportedError struct {
	error
}

func (e *reportedError) Unwrap() error {
	return e.error
}

func isReported(err error) bool {
	_, ok := err.(*reportedError)
	return ok
}
