package interntoken

import (
	"strings"
	"sync"
)

// Table interns token text so that symbols read from a large source string
// do not keep the whole source alive.
type Table struct {
	mut    sync.RWMutex
	intern map[string]string
}

func NewTable() *Table {
	return &Table{
		intern: make(map[string]string),
	}
}

// Get returns a string equal to s that is owned by tab.
func (tab *Table) Get(s string) string {
	if tab == nil {
		return strings.Clone(s)
	}
	tab.mut.RLock()
	t, ok := tab.intern[s]
	tab.mut.RUnlock()
	if ok {
		return t
	}
	tab.mut.Lock()
	defer tab.mut.Unlock()
	if t, ok := tab.intern[s]; ok {
		return t
	}
	t = strings.Clone(s)
	tab.intern[t] = t
	return t
}

// Len returns the number of distinct strings interned in tab.
func (tab *Table) Len() int {
	if tab == nil {
		return 0
	}
	tab.mut.RLock()
	defer tab.mut.RUnlock()
	return len(tab.intern)
}
