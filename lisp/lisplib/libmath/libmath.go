package libmath

import (
	"github.com/bmatsuo/malish/lisp"
	"github.com/bmatsuo/malish/lisp/lisplib/internal/libutil"
)

// LoadPackage adds the arithmetic and comparison functions to env
func LoadPackage(env *lisp.LEnv) error {
	return libutil.AddBuiltins(env, builtins)
}

var builtins = []*libutil.Builtin{
	libutil.Function("+", 0, builtinAdd),
	libutil.Function("-", 0, builtinSub),
	libutil.Function("*", 0, builtinMul),
	libutil.Function("/", 0, builtinDiv),
	libutil.Function("<", 2, compareBuiltin(func(c int) bool { return c < 0 })),
	libutil.Function("<=", 2, compareBuiltin(func(c int) bool { return c <= 0 })),
	libutil.Function(">", 2, compareBuiltin(func(c int) bool { return c > 0 })),
	libutil.Function(">=", 2, compareBuiltin(func(c int) bool { return c >= 0 })),
}

func fold(args []*lisp.LVal, z float64, fn func(acc, x float64) float64) (*lisp.LVal, error) {
	acc := z
	for _, v := range args {
		x, err := libutil.Number(v)
		if err != nil {
			return nil, err
		}
		acc = fn(acc, x)
	}
	return lisp.Number(acc), nil
}

func builtinAdd(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return fold(args, 0, func(acc, x float64) float64 { return acc + x })
}

func builtinMul(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return fold(args, 1, func(acc, x float64) float64 { return acc * x })
}

// (- x) negates x.  With more arguments the rest are subtracted from the
// first.
func builtinSub(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if len(args) == 0 {
		return lisp.Number(0), nil
	}
	first, err := libutil.Number(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return lisp.Number(-first), nil
	}
	return fold(args[1:], first, func(acc, x float64) float64 { return acc - x })
}

// (/ x) is the reciprocal of x.  With more arguments the first is divided by
// the rest.
func builtinDiv(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	if len(args) == 0 {
		return lisp.Number(1), nil
	}
	first, err := libutil.Number(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return lisp.Number(1 / first), nil
	}
	return fold(args[1:], first, func(acc, x float64) float64 { return acc / x })
}

func compareBuiltin(test func(c int) bool) lisp.Builtin {
	return func(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
		c, ok := lisp.Compare(args[0], args[1])
		return lisp.Bool(ok && test(c)), nil
	}
}
