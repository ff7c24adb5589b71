package libstring

import (
	"strings"

	"github.com/bmatsuo/malish/lisp"
	"github.com/bmatsuo/malish/lisp/lisplib/internal/libutil"
)

// LoadPackage adds the string functions to env
func LoadPackage(env *lisp.LEnv) error {
	return libutil.AddBuiltins(env, builtins)
}

var builtins = []*libutil.Builtin{
	libutil.Function("str", 0, builtinStr),
	libutil.Function("pr-str", 0, builtinPrStr),
	libutil.Function("read-string", 1, builtinReadString),
}

// (str x ...) joins the printed forms of its arguments with single spaces.
// Strings are included without quotes.
func builtinStr(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return lisp.String(lisp.Sprint(args, false)), nil
}

func builtinPrStr(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	return lisp.String(lisp.Sprint(args, true)), nil
}

func builtinReadString(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	src, err := libutil.String(args[0])
	if err != nil {
		return nil, err
	}
	if env.Runtime.Reader == nil {
		return nil, lisp.Errorf("no reader configured")
	}
	return env.Runtime.Reader.Read("read-string", strings.NewReader(src))
}
