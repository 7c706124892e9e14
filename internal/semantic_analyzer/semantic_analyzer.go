// Package semantic_analyzer tracks lexical scope depth, owns the symbol
// table and performs the declaration and assignment checks the builder
// runs while it constructs the tree.
package semantic_analyzer

import (
	"log/slog"

	"github.com/kievzenit/blockc/internal/logging"
	"github.com/kievzenit/blockc/internal/types"
)

// SemanticAnalyzer tracks scope as a plain depth counter, not a chain of
// scope records: sibling blocks at the same depth share a scope number.
type SemanticAnalyzer struct {
	symbols *SymbolTable
	scope   int

	logger *slog.Logger
}

func NewSemanticAnalyzer(logger *slog.Logger) *SemanticAnalyzer {
	return &SemanticAnalyzer{
		symbols: NewSymbolTable(),
		scope:   0,

		logger: logging.Component(logger, "semantic_analyzer"),
	}
}

func (sa *SemanticAnalyzer) EnterScope() {
	sa.scope++
	sa.logger.Debug("enter scope", slog.Int("scope", sa.scope))
}

func (sa *SemanticAnalyzer) ExitScope() {
	sa.logger.Debug("exit scope", slog.Int("scope", sa.scope))
	sa.scope--
}

func (sa *SemanticAnalyzer) Scope() int {
	return sa.scope
}

func (sa *SemanticAnalyzer) SymbolTable() *SymbolTable {
	return sa.symbols
}

// DeclareVar records name at the current depth. Only an entry at exactly
// the current depth can conflict: it is an error when the types differ
// and silently accepted when they match. Entries at any other depth, from
// enclosing blocks or from closed inner blocks, do not prevent the new one.
func (sa *SemanticAnalyzer) DeclareVar(name string, t types.Type, line int) error {
	existing, found := sa.symbols.GetEntry(name, sa.scope)
	if found {
		if existing.Type.SameAs(t) {
			return nil
		}
		return &RedeclarationError{
			Name:         name,
			Declared:     existing.Type,
			DeclaredLine: existing.Line,
			Redeclared:   t,
		}
	}

	sa.symbols.AddEntry(name, t, sa.scope, line)
	sa.logger.Debug("symbol added",
		slog.String("name", name),
		slog.String("type", t.Type()),
		slog.Int("scope", sa.scope),
		slog.Int("line", line))

	return nil
}

// Resolve looks name up at the current depth first, then at any depth.
func (sa *SemanticAnalyzer) Resolve(name string) (Entry, bool) {
	if entry, ok := sa.symbols.GetEntry(name, sa.scope); ok {
		return entry, true
	}

	return sa.symbols.GetEntryAcrossScopes(name)
}

// CheckAssign validates assigning a value of valueType to name. An unknown
// value type has already been reported where it arose and is not checked.
func (sa *SemanticAnalyzer) CheckAssign(name string, valueType types.Type) error {
	entry, ok := sa.Resolve(name)
	if !ok {
		return &UndeclaredError{Name: name}
	}

	if !types.IsKnown(valueType) {
		return nil
	}

	if !entry.Type.SameAs(valueType) {
		return &TypeMismatchError{
			Name:     name,
			Declared: entry.Type,
			Assigned: valueType,
		}
	}

	return nil
}
