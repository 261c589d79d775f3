package parser

import "go.creack.net/hack/op"

// SymbolTable maps label and variable names to addresses. Each parse
// session owns its own table, there is no shared state.
type SymbolTable struct {
	entries map[string]int
	nextVar int // Next free address for variables.
}

// NewSymbolTable creates a table seeded with the predefined names of the
// architecture.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		entries: make(map[string]int, len(op.PredefinedSymbols)),
		nextVar: op.VariableBase,
	}
	for _, s := range op.PredefinedSymbols {
		st.entries[s.Name] = s.Address
	}
	return st
}

// Lookup returns the address bound to the given name, if any.
func (st *SymbolTable) Lookup(name string) (int, bool) {
	addr, ok := st.entries[name]
	return addr, ok
}

// Bind binds a name to an address. Existing bindings are overwritten,
// label collisions are the caller's responsibility.
func (st *SymbolTable) Bind(name string, addr int) {
	st.entries[name] = addr
}

// NextVariableAddress returns the current free variable address and
// advances the counter.
func (st *SymbolTable) NextVariableAddress() int {
	addr := st.nextVar
	st.nextVar++
	return addr
}
