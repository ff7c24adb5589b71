package lisp

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Runtime holds the state shared by every environment descending from one
// root environment.  A Runtime is not safe for concurrent use.
type Runtime struct {
	Stack  *CallStack
	Reader Reader
	Stderr io.Writer
	Stdout io.Writer

	scopes scopeArena
	depth  int // nesting of evaluations entered from Go
}

// LEnv is a lisp environment, a handle on one scope of a Runtime.
type LEnv struct {
	ID      EnvID
	Runtime *Runtime
}

// Binding is an initial variable binding for a new environment.
type Binding struct {
	Name  string
	Value *LVal
}

// NewEnv returns initializes and returns a new LEnv.  When parent is nil
// NewEnv creates a new Runtime and returns its root environment.
func NewEnv(parent *LEnv) *LEnv {
	if parent != nil {
		return parent.Child()
	}
	rt := &Runtime{
		Stack:  &CallStack{},
		Stderr: os.Stderr,
		Stdout: os.Stdout,
	}
	return &LEnv{
		ID:      rt.scopes.alloc(NoEnv),
		Runtime: rt,
	}
}

// InitializeUserEnv applies config to env's runtime.
func InitializeUserEnv(env *LEnv, config ...Config) error {
	for _, fn := range config {
		if err := fn(env); err != nil {
			return err
		}
	}
	return nil
}

func (rt *Runtime) env(id EnvID) *LEnv {
	return &LEnv{ID: id, Runtime: rt}
}

// LiveScopes returns the number of scopes allocated by rt which have not
// been reclaimed.
func (rt *Runtime) LiveScopes() int {
	return rt.scopes.live()
}

// Child returns a new environment whose outer environment is env.  Each
// binding is applied with Set, in order.
func (env *LEnv) Child(binds ...Binding) *LEnv {
	child := env.Runtime.env(env.Runtime.scopes.alloc(env.ID))
	for _, b := range binds {
		child.Set(b.Name, b.Value)
	}
	return child
}

// release ends the evaluation that allocated env.  The scope is reclaimed
// once nothing refers to it.  Results are values still in flight which must
// survive a collection.
func (env *LEnv) release(results ...*LVal) {
	env.Runtime.scopes.release(env.ID, results...)
}

// Parent returns the outer environment of env, or nil if env is a root.
func (env *LEnv) Parent() *LEnv {
	p := env.Runtime.scopes.parent(env.ID)
	if p == NoEnv {
		return nil
	}
	return env.Runtime.env(p)
}

// Root returns the outermost environment reachable from env (global scope).
func (env *LEnv) Root() *LEnv {
	return env.Runtime.env(env.Runtime.scopes.root(env.ID))
}

// Len returns the number of bindings local to env.
func (env *LEnv) Len() int {
	return env.Runtime.scopes.localLen(env.ID)
}

// Find returns the value bound to name in env or the nearest enclosing
// environment.
func (env *LEnv) Find(name string) (*LVal, bool) {
	return env.Runtime.scopes.lookup(env.ID, name)
}

// Get returns the value bound to name, or nil when name is unbound.
func (env *LEnv) Get(name string) *LVal {
	v, ok := env.Find(name)
	if !ok {
		return Nil()
	}
	return v
}

// Set binds name to v in env.  Set never modifies an enclosing environment.
func (env *LEnv) Set(name string, v *LVal) {
	if v == nil {
		panic("nil value")
	}
	env.Runtime.scopes.put(env.ID, name, v)
}

// AddBuiltins binds the given funs to their names in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) error {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		if _, ok := env.Find(f.Name()); ok {
			return fmt.Errorf("symbol already defined: %s", f.Name())
		}
		env.Set(f.Name(), Fun(f.Name(), f.Eval))
	}
	return nil
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  When called outside of any evaluation the scopes referenced by the
// result stay alive for the life of the runtime.
func (env *LEnv) Eval(v *LVal) (*LVal, error) {
	return env.enter(true, []*LVal{v}, func() (*LVal, error) {
		return env.eval(v)
	})
}

// EvalSExpr evaluates s and returns the resulting LVal.
func (env *LEnv) EvalSExpr(s *LVal) (*LVal, error) {
	return env.enter(true, []*LVal{s}, func() (*LVal, error) {
		return env.evalSExpr(s)
	})
}

// Call invokes fun with the given evaluated arguments.
func (env *LEnv) Call(fun *LVal, args []*LVal) (*LVal, error) {
	if !fun.IsFunction() {
		return nil, env.errorf(nil, "", CondNotFunction, "not a function: %v", fun)
	}
	held := append([]*LVal{fun}, args...)
	return env.enter(true, held, func() (*LVal, error) {
		return env.call(nil, fun, args)
	})
}

// enter runs fn on behalf of Go code.  The held values are kept alive while
// fn runs.  When the outermost evaluation returns, unreachable scopes are
// collected and, if escape is true, the scopes referenced by the result are
// kept for the life of the runtime.
func (env *LEnv) enter(escape bool, held []*LVal, fn func() (*LVal, error)) (*LVal, error) {
	rt := env.Runtime
	base := rt.scopes.tempHeight()
	for _, v := range held {
		rt.scopes.hold(v)
	}
	rt.depth++
	defer func() {
		rt.depth--
		rt.scopes.dropTemps(base)
	}()
	r, err := fn()
	if rt.depth == 1 {
		if escape && err == nil {
			rt.scopes.escape(r)
		}
		if rt.scopes.garbage > 0 {
			rt.scopes.collect(r)
		}
	}
	return r, err
}

func (env *LEnv) eval(v *LVal) (*LVal, error) {
	switch v.Type {
	case LSymbol:
		return env.Get(v.Str), nil
	case LSExpr:
		return env.evalSExpr(v)
	default:
		return v, nil
	}
}

func (env *LEnv) evalSExpr(s *LVal) (*LVal, error) {
	if s.Type != LSExpr {
		return nil, env.errorf(s, "", CondTypeError, "not an s-expression: %v", s.Type)
	}
	if len(s.Cells) == 0 {
		return s, nil
	}
	if op := LookupSpecialOp(s.Cells[0]); op != OpNone {
		return env.evalSpecialOp(op, s)
	}
	scopes := &env.Runtime.scopes
	defer scopes.dropTemps(scopes.tempHeight())
	cells := make([]*LVal, len(s.Cells))
	for i := range s.Cells {
		v, err := env.eval(s.Cells[i])
		if err != nil {
			return nil, err
		}
		cells[i] = v
		scopes.hold(v)
	}
	f := cells[0]
	if !f.IsFunction() {
		return nil, env.errorf(s, "", CondNotFunction,
			"first element of expression is not a function: %v", f)
	}
	return env.call(s, f, cells[1:])
}

func (env *LEnv) call(s *LVal, fun *LVal, args []*LVal) (r *LVal, err error) {
	name := callName(s, fun)
	var src = fun.Source
	if s != nil {
		src = s.Source
	}
	stack := env.Runtime.Stack
	if !stack.Push(name, src) {
		return nil, env.errorf(s, name, CondStackOverflow,
			"maximum stack height exceeded (%d)", stack.MaxHeight)
	}
	defer stack.Pop()

	if fun.Type == LBuiltin {
		r, err := fun.Builtin(env, args)
		if err != nil {
			return nil, env.annotate(err, s, name)
		}
		return r, nil
	}

	// Parameters and arguments are zipped.  Extra arguments are dropped and
	// parameters without an argument are left unbound.
	n := len(fun.Formals)
	if len(args) < n {
		n = len(args)
	}
	binds := make([]Binding, n)
	for i := range binds {
		binds[i] = Binding{fun.Formals[i], args[i]}
	}
	fenv := env.Runtime.env(fun.Env).Child(binds...)
	defer func() { fenv.release(r) }()
	return fenv.eval(fun.Body)
}

func callName(s *LVal, fun *LVal) string {
	if s != nil && len(s.Cells) > 0 && s.Cells[0].Type == LSymbol {
		return s.Cells[0].Str
	}
	if fun.Type == LBuiltin {
		return fun.Str
	}
	return "anonymous-function"
}

// ReadEval reads the first form from src and evaluates it in env.  The name
// is used in source locations.
func (env *LEnv) ReadEval(name string, src string) (*LVal, error) {
	return env.readEval(name, src, true)
}

func (env *LEnv) readEval(name string, src string, escape bool) (*LVal, error) {
	if env.Runtime.Reader == nil {
		return nil, fmt.Errorf("no reader configured")
	}
	v, err := env.Runtime.Reader.Read(name, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return env.enter(escape, []*LVal{v}, func() (*LVal, error) {
		return env.eval(v)
	})
}

// Rep reads one form from line, evaluates it in env and returns the readable
// representation of the result.  Any error aborts the whole evaluation.
// Scopes referenced only by the result are reclaimed.
func Rep(env *LEnv, line string) (string, error) {
	v, err := env.readEval("repl", line, false)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}
