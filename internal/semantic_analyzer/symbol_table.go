package semantic_analyzer

import (
	"fmt"
	"io"

	"github.com/kievzenit/blockc/internal/types"
)

type Entry struct {
	Name  string
	Type  types.Type
	Scope int
	Line  int
}

func (e Entry) String() string {
	return fmt.Sprintf("Name: %s, Type: %s, Scope: %d, Line: %d", e.Name, e.Type.Type(), e.Scope, e.Line)
}

// SymbolTable is a flat append log of declarations for one compilation
// unit. Entries outlive the block that declared them; lookups scan in
// insertion order.
type SymbolTable struct {
	entries []Entry
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		entries: make([]Entry, 0),
	}
}

// AddEntry appends unconditionally; uniqueness is the analyzer's concern.
func (st *SymbolTable) AddEntry(name string, t types.Type, scope int, line int) {
	st.entries = append(st.entries, Entry{
		Name:  name,
		Type:  t,
		Scope: scope,
		Line:  line,
	})
}

// GetEntry returns the first entry declared with name at exactly scope.
func (st *SymbolTable) GetEntry(name string, scope int) (Entry, bool) {
	for _, entry := range st.entries {
		if entry.Name == name && entry.Scope == scope {
			return entry, true
		}
	}

	return Entry{}, false
}

// GetEntryAcrossScopes returns the earliest declaration of name at any
// depth. Earliest wins, not innermost.
func (st *SymbolTable) GetEntryAcrossScopes(name string) (Entry, bool) {
	for _, entry := range st.entries {
		if entry.Name == name {
			return entry, true
		}
	}

	return Entry{}, false
}

func (st *SymbolTable) Entries() []Entry {
	entries := make([]Entry, len(st.entries))
	copy(entries, st.entries)
	return entries
}

func (st *SymbolTable) Len() int {
	return len(st.entries)
}

func (st *SymbolTable) Print(w io.Writer) {
	fmt.Fprintln(w, "Program Symbol Table")
	fmt.Fprintln(w, " -------------------------------------")
	for _, entry := range st.entries {
		fmt.Fprintf(w, "[%s]\n", entry)
	}
}
