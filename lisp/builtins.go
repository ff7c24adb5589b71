package lisp

import (
	"bytes"
	"fmt"
)

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args []*LVal) (*LVal, error)
}

type langBuiltin struct {
	name string
	fun  Builtin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args []*LVal) (*LVal, error) {
	return fun.fun(env, args)
}

var langBuiltins = []*langBuiltin{
	{"list", builtinList},
	{"list?", builtinIsList},
	{"empty?", builtinIsEmpty},
	{"count", builtinCount},
	{"=", builtinEqual},
	{"prn", builtinPrn},
	{"println", builtinPrintln},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	return ops
}

func expectArgs(args []*LVal, n int) error {
	if len(args) < n {
		return ErrorConditionf(CondArityError, "at least %d arguments expected (got %d)", n, len(args))
	}
	return nil
}

func builtinList(env *LEnv, args []*LVal) (*LVal, error) {
	cells := make([]*LVal, len(args))
	copy(cells, args)
	return SExpr(cells), nil
}

func builtinIsList(env *LEnv, args []*LVal) (*LVal, error) {
	if err := expectArgs(args, 1); err != nil {
		return nil, err
	}
	return Bool(args[0].Type == LSExpr), nil
}

func builtinIsEmpty(env *LEnv, args []*LVal) (*LVal, error) {
	if err := expectArgs(args, 1); err != nil {
		return nil, err
	}
	switch args[0].Type {
	case LSExpr:
		return Bool(len(args[0].Cells) == 0), nil
	case LNil:
		return Bool(true), nil
	default:
		return nil, ErrorConditionf(CondTypeError, "argument is not a list: %v", args[0].Type)
	}
}

func builtinCount(env *LEnv, args []*LVal) (*LVal, error) {
	if err := expectArgs(args, 1); err != nil {
		return nil, err
	}
	switch args[0].Type {
	case LSExpr:
		return Number(float64(len(args[0].Cells))), nil
	case LNil:
		return Number(0), nil
	default:
		return nil, ErrorConditionf(CondTypeError, "argument is not a list: %v", args[0].Type)
	}
}

func builtinEqual(env *LEnv, args []*LVal) (*LVal, error) {
	if err := expectArgs(args, 2); err != nil {
		return nil, err
	}
	return Bool(Equal(args[0], args[1])), nil
}

func builtinPrn(env *LEnv, args []*LVal) (*LVal, error) {
	return printValues(env, args, true)
}

func builtinPrintln(env *LEnv, args []*LVal) (*LVal, error) {
	return printValues(env, args, false)
}

func printValues(env *LEnv, args []*LVal, readably bool) (*LVal, error) {
	_, err := fmt.Fprintln(env.Runtime.Stdout, Sprint(args, readably))
	if err != nil {
		return nil, &Error{
			Condition: CondIOError,
			Message:   fmt.Sprintf("write failed: %v", err),
			Err:       err,
		}
	}
	return Nil(), nil
}

// Sprint formats args as str and pr-str do, separated by single spaces.
func Sprint(args []*LVal, readably bool) string {
	var buf bytes.Buffer
	for i, v := range args {
		if i > 0 {
			buf.WriteString(" ")
		}
		v.format(&buf, readably)
	}
	return buf.String()
}
