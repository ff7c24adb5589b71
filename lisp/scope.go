package lisp

// EnvID addresses a scope in the scope arena of a Runtime.
type EnvID int

// NoEnv is the parent of a root scope.
const NoEnv EnvID = -1

type bindingPair struct {
	name  string
	value *LVal
}

// bindings is an insertion ordered set of local variable bindings.
type bindings struct {
	pairs []bindingPair
	index map[string]int
}

func (s *bindings) get(name string) (*LVal, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.pairs[i].value, true
}

// put binds name to v.  If name was previously bound its entry will be
// updated.  Otherwise put creates a new binding.
func (s *bindings) put(name string, v *LVal) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	i, ok := s.index[name]
	if ok {
		s.pairs[i].value = v
		return
	}
	s.index[name] = len(s.pairs)
	s.pairs = append(s.pairs, bindingPair{name, v})
}

func (s *bindings) reset() {
	for i := range s.pairs {
		s.pairs[i] = bindingPair{}
	}
	s.pairs = s.pairs[:0]
	for k := range s.index {
		delete(s.index, k)
	}
}

type scope struct {
	parent   EnvID
	live     bool
	active   bool // the evaluation or caller that allocated the scope holds it
	captured bool // referenced by a closure, directly or through a descendant
	escaped  bool // reachable from a value returned to Go
	marked   bool
	bindings bindings
}

// minCollectThreshold is the number of released captured scopes that
// triggers the first collection.
const minCollectThreshold = 64

// scopeArena holds every scope of a runtime.  Scopes refer to their parent
// by index and closures hold the index of the scope they captured, so there
// are no pointer cycles between environments and functions.
//
// A scope that no closure captured is reclaimed as soon as the evaluation
// that created it returns.  A captured scope is reclaimed by collect once no
// closure reachable from a root refers to it.  The roots are active scopes,
// escaped scopes, values held on the temporary stack, and the values passed
// to collect.
type scopeArena struct {
	scopes    []scope
	free      []EnvID
	temps     []*LVal
	garbage   int // captured scopes released or closures unbound since the last collection
	threshold int
}

func (a *scopeArena) alloc(parent EnvID) EnvID {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.scopes[id] = scope{
			parent:   parent,
			live:     true,
			active:   true,
			bindings: a.scopes[id].bindings,
		}
		return id
	}
	a.scopes = append(a.scopes, scope{parent: parent, live: true, active: true})
	return EnvID(len(a.scopes) - 1)
}

// release marks id inactive.  Uncaptured scopes are reclaimed immediately.
// Captured scopes wait for a collection, which results are kept alive
// through.
func (a *scopeArena) release(id EnvID, results ...*LVal) {
	s := a.scope(id)
	s.active = false
	if !s.captured {
		a.reclaim(id)
		return
	}
	a.garbage++
	if a.garbage >= max(a.threshold, minCollectThreshold) {
		a.collect(results...)
	}
}

func (a *scopeArena) reclaim(id EnvID) {
	s := &a.scopes[id]
	s.live = false
	s.active = false
	s.captured = false
	s.escaped = false
	s.parent = NoEnv
	s.bindings.reset()
	a.free = append(a.free, id)
}

// capture marks id and all of its ancestors as referenced by a closure.
func (a *scopeArena) capture(id EnvID) {
	for id != NoEnv {
		s := a.scope(id)
		if s.captured {
			return
		}
		s.captured = true
		id = s.parent
	}
}

// hold pushes v on the temporary stack, making it a root until the stack is
// truncated below it.
func (a *scopeArena) hold(v *LVal) {
	a.temps = append(a.temps, v)
}

func (a *scopeArena) tempHeight() int {
	return len(a.temps)
}

func (a *scopeArena) dropTemps(n int) {
	for i := n; i < len(a.temps); i++ {
		a.temps[i] = nil
	}
	a.temps = a.temps[:n]
}

// collect reclaims every inactive scope that is unreachable from the roots.
func (a *scopeArena) collect(roots ...*LVal) {
	a.clearMarks()
	for i := range a.scopes {
		s := &a.scopes[i]
		if s.live && (s.active || s.escaped) {
			a.markScope(EnvID(i))
		}
	}
	for _, v := range a.temps {
		a.markValue(v)
	}
	for _, v := range roots {
		a.markValue(v)
	}
	for i := range a.scopes {
		s := &a.scopes[i]
		if s.live && !s.marked {
			a.reclaim(EnvID(i))
		}
	}
	a.garbage = 0
	a.threshold = max(minCollectThreshold, a.live())
}

// escape keeps the scopes reachable from v alive for the life of the arena.
func (a *scopeArena) escape(v *LVal) {
	if v == nil || (v.Type != LFun && v.Type != LSExpr) {
		return
	}
	a.clearMarks()
	a.markValue(v)
	for i := range a.scopes {
		if a.scopes[i].marked {
			a.scopes[i].escaped = true
		}
	}
}

func (a *scopeArena) clearMarks() {
	for i := range a.scopes {
		a.scopes[i].marked = false
	}
}

func (a *scopeArena) markScope(id EnvID) {
	for id != NoEnv {
		s := &a.scopes[id]
		if s.marked {
			return
		}
		s.marked = true
		for _, p := range s.bindings.pairs {
			a.markValue(p.value)
		}
		id = s.parent
	}
}

func (a *scopeArena) markValue(v *LVal) {
	if v == nil {
		return
	}
	switch v.Type {
	case LFun:
		a.markScope(v.Env)
		a.markValue(v.Body)
	case LSExpr:
		for _, c := range v.Cells {
			a.markValue(c)
		}
	}
}

func (a *scopeArena) scope(id EnvID) *scope {
	if id < 0 || int(id) >= len(a.scopes) || !a.scopes[id].live {
		panic("invalid scope reference")
	}
	return &a.scopes[id]
}

func (a *scopeArena) parent(id EnvID) EnvID {
	return a.scope(id).parent
}

func (a *scopeArena) root(id EnvID) EnvID {
	for {
		p := a.scope(id).parent
		if p == NoEnv {
			return id
		}
		id = p
	}
}

func (a *scopeArena) lookup(id EnvID, name string) (*LVal, bool) {
	for id != NoEnv {
		s := a.scope(id)
		if v, ok := s.bindings.get(name); ok {
			return v, true
		}
		id = s.parent
	}
	return nil, false
}

func (a *scopeArena) put(id EnvID, name string, v *LVal) {
	s := a.scope(id)
	if old, ok := s.bindings.get(name); ok && (old.Type == LFun || old.Type == LSExpr) {
		a.garbage++
	}
	s.bindings.put(name, v)
}

func (a *scopeArena) localLen(id EnvID) int {
	return len(a.scope(id).bindings.pairs)
}

// live returns the number of scopes currently in use.
func (a *scopeArena) live() int {
	return len(a.scopes) - len(a.free)
}
