package lisp

import "fmt"

func (env *LEnv) evalSpecialOp(op SpecialOp, s *LVal) (*LVal, error) {
	args := s.Cells[1:]
	switch op {
	case OpDef:
		return env.opDef(s, args)
	case OpLet:
		return env.opLet(s, args)
	case OpDo:
		return env.opDo(s, args)
	case OpIf:
		return env.opIf(s, args)
	case OpFn:
		return env.opFn(s, args)
	case OpEval:
		return env.opEval(s, args)
	default:
		panic(fmt.Sprintf("unknown special operator: %d", op))
	}
}

func (env *LEnv) syntaxErrorf(s *LVal, op SpecialOp, format string, v ...interface{}) error {
	return env.errorf(s, op.String(), CondInvalidSyntax, format, v...)
}

// (def! symbol expr)
func (env *LEnv) opDef(s *LVal, args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, env.syntaxErrorf(s, OpDef, "two arguments expected (got %d)", len(args))
	}
	sym := args[0]
	if sym.Type != LSymbol {
		return nil, env.syntaxErrorf(s, OpDef, "first argument is not a symbol: %v", sym.Type)
	}
	val, err := env.eval(args[1])
	if err != nil {
		return nil, err
	}
	env.Set(sym.Str, val)
	return Nil(), nil
}

// (let* (symbol expr ...) body)
//
// Bindings are evaluated in order in one child environment so later
// bindings see earlier ones.  A binding may also be written as a pair
// (symbol expr).
func (env *LEnv) opLet(s *LVal, args []*LVal) (r *LVal, err error) {
	if len(args) != 2 {
		return nil, env.syntaxErrorf(s, OpLet, "two arguments expected (got %d)", len(args))
	}
	bindlist := args[0]
	if bindlist.Type != LSExpr {
		return nil, env.syntaxErrorf(s, OpLet, "first argument is not a list: %v", bindlist.Type)
	}
	letenv := env.Child()
	defer func() { letenv.release(r) }()
	cells := bindlist.Cells
	for len(cells) > 0 {
		var sym, expr *LVal
		if cells[0].Type == LSExpr {
			pair := cells[0]
			if len(pair.Cells) != 2 {
				return nil, env.syntaxErrorf(s, OpLet, "binding is not a pair: %v", pair)
			}
			sym, expr = pair.Cells[0], pair.Cells[1]
			cells = cells[1:]
		} else {
			if len(cells) < 2 {
				return nil, env.syntaxErrorf(s, OpLet, "no value bound to %v", cells[0])
			}
			sym, expr = cells[0], cells[1]
			cells = cells[2:]
		}
		if sym.Type != LSymbol {
			return nil, env.syntaxErrorf(s, OpLet, "binding name is not a symbol: %v", sym.Type)
		}
		val, err := letenv.eval(expr)
		if err != nil {
			return nil, err
		}
		letenv.Set(sym.Str, val)
	}
	return letenv.eval(args[1])
}

// (do expr ...)
func (env *LEnv) opDo(s *LVal, args []*LVal) (*LVal, error) {
	if len(args) == 0 {
		return nil, env.syntaxErrorf(s, OpDo, "at least one expression expected")
	}
	var val *LVal
	for _, c := range args {
		var err error
		val, err = env.eval(c)
		if err != nil {
			return nil, err
		}
	}
	return val, nil
}

// (if test-form then-form else-form)
func (env *LEnv) opIf(s *LVal, args []*LVal) (*LVal, error) {
	if len(args) != 3 {
		return nil, env.syntaxErrorf(s, OpIf, "three arguments expected (got %d)", len(args))
	}
	r, err := env.eval(args[0])
	if err != nil {
		return nil, err
	}
	if True(r) {
		return env.eval(args[1])
	}
	return env.eval(args[2])
}

// (fn* (symbol ...) body)
func (env *LEnv) opFn(s *LVal, args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, env.syntaxErrorf(s, OpFn, "two arguments expected (got %d)", len(args))
	}
	params := args[0]
	if params.Type != LSExpr {
		return nil, env.syntaxErrorf(s, OpFn, "first argument is not a list: %v", params.Type)
	}
	formals := make([]string, len(params.Cells))
	for i, sym := range params.Cells {
		if sym.Type != LSymbol {
			return nil, env.syntaxErrorf(s, OpFn, "first argument contains a non-symbol: %v", sym.Type)
		}
		formals[i] = sym.Str
	}
	env.Runtime.scopes.capture(env.ID)
	fun := Lambda(env.ID, formals, args[1])
	fun.Source = s.Source
	return fun, nil
}

// (eval expr)
//
// The value of expr is evaluated in the root environment, not in env.
func (env *LEnv) opEval(s *LVal, args []*LVal) (*LVal, error) {
	if len(args) != 1 {
		return nil, env.syntaxErrorf(s, OpEval, "one argument expected (got %d)", len(args))
	}
	expr, err := env.eval(args[0])
	if err != nil {
		return nil, err
	}
	scopes := &env.Runtime.scopes
	defer scopes.dropTemps(scopes.tempHeight())
	scopes.hold(expr)
	return env.Root().eval(expr)
}
