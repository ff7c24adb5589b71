// Package lisplib is used to conveniently load the standard library for the
// malish environment
package lisplib

import (
	"fmt"

	"github.com/bmatsuo/malish/lisp"
	"github.com/bmatsuo/malish/lisp/lisplib/libmath"
	"github.com/bmatsuo/malish/lisp/lisplib/libos"
	"github.com/bmatsuo/malish/lisp/lisplib/libstring"
)

// Prelude is lisp source evaluated by LoadLibrary after the native functions
// are installed.
var Prelude = []string{
	`(def! not (fn* (a) (if a false true)))`,
	`(def! load-file (fn* (f) (eval (read-string (str "(do" (slurp f) "nil" ")")))))`,
}

// LoadLibrary loads the standard library into env.  The environment must have
// a Reader to evaluate the Prelude.
func LoadLibrary(env *lisp.LEnv) error {
	err := env.AddBuiltins()
	if err != nil {
		return err
	}
	loaders := []func(*lisp.LEnv) error{
		libmath.LoadPackage,
		libstring.LoadPackage,
		libos.LoadPackage,
	}
	for _, load := range loaders {
		err = load(env)
		if err != nil {
			return err
		}
	}
	for i, src := range Prelude {
		_, err = env.ReadEval(fmt.Sprintf("prelude-%d", i), src)
		if err != nil {
			return err
		}
	}
	return nil
}
