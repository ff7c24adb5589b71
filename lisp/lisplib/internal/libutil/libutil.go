package libutil

import (
	"github.com/bmatsuo/malish/lisp"
)

// Builtin is a lisp.LBuiltinDef that checks the number of arguments it is
// given before calling its implementation.
type Builtin struct {
	name    string
	minArgs int
	fn      lisp.Builtin
}

var _ lisp.LBuiltinDef = (*Builtin)(nil)

// Function returns a Builtin called name that requires at least minArgs
// arguments.
func Function(name string, minArgs int, fn lisp.Builtin) *Builtin {
	return &Builtin{name, minArgs, fn}
}

func (fun *Builtin) Name() string {
	return fun.name
}

func (fun *Builtin) Eval(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if len(args) < fun.minArgs {
		return nil, lisp.ErrorConditionf(lisp.CondArityError,
			"at least %d arguments expected (got %d)", fun.minArgs, len(args))
	}
	return fun.fn(env, args)
}

// AddBuiltins converts funs to lisp.LBuiltinDefs and binds them in env.
func AddBuiltins(env *lisp.LEnv, funs []*Builtin) error {
	if len(funs) == 0 {
		return nil
	}
	defs := make([]lisp.LBuiltinDef, len(funs))
	for i := range funs {
		defs[i] = funs[i]
	}
	return env.AddBuiltins(defs...)
}

// Number returns the value of a number argument.
func Number(v *lisp.LVal) (float64, error) {
	if v.Type != lisp.LNumber {
		return 0, lisp.ErrorConditionf(lisp.CondTypeError, "argument is not a number: %v", v.Type)
	}
	return v.Num, nil
}

// String returns the value of a string argument.
func String(v *lisp.LVal) (string, error) {
	if v.Type != lisp.LString {
		return "", lisp.ErrorConditionf(lisp.CondTypeError, "argument is not a string: %v", v.Type)
	}
	return v.Str, nil
}
