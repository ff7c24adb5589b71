package libos

import (
	"os"

	"github.com/bmatsuo/malish/lisp"
	"github.com/bmatsuo/malish/lisp/lisplib/internal/libutil"
)

// LoadPackage adds the file functions to env
func LoadPackage(env *lisp.LEnv) error {
	return libutil.AddBuiltins(env, builtins)
}

var builtins = []*libutil.Builtin{
	libutil.Function("slurp", 1, BuiltinReadFile),
	libutil.Function("read-file", 1, BuiltinReadFile),
}

// BuiltinReadFile returns the contents of the file named by its argument as
// a string.
func BuiltinReadFile(env *lisp.LEnv, args []*lisp.LVal) (*lisp.LVal, error) {
	path, err := libutil.String(args[0])
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &lisp.Error{
			Condition: lisp.CondIOError,
			Message:   err.Error(),
			Err:       err,
		}
	}
	return lisp.String(string(b)), nil
}
