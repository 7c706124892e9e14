package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/kievzenit/blockc/internal/compiler"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history", "blockc.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_SaveAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	result := compiler.Compile("{\nint x\nstring s\nx = s\n}", compiler.DefaultOptions())
	if err := s.Save(ctx, result); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	units, err := s.Units(ctx, 10)
	if err != nil {
		t.Fatalf("Units() error = %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("units = %d, want 1", len(units))
	}
	unit := units[0]
	if unit.ID != result.UnitID || unit.Source != result.Source {
		t.Errorf("unit = %+v", unit)
	}
	if !unit.Validated || !unit.Valid || unit.ErrorCount != 1 || unit.WarningCount != 1 {
		t.Errorf("unit counters = %+v", unit)
	}
	if unit.TokenCount != len(result.Tokens) {
		t.Errorf("token count = %d, want %d", unit.TokenCount, len(result.Tokens))
	}

	diagnostics, err := s.Diagnostics(ctx, result.UnitID)
	if err != nil {
		t.Fatalf("Diagnostics() error = %v", err)
	}
	if len(diagnostics) != 2 {
		t.Fatalf("diagnostics = %+v, want 2", diagnostics)
	}
	if diagnostics[0].Stage != StageWarning || diagnostics[1].Stage != StageBuilder {
		t.Errorf("stages = %s, %s", diagnostics[0].Stage, diagnostics[1].Stage)
	}
	if diagnostics[1].Message != result.Errors[0] {
		t.Errorf("message = %q, want %q", diagnostics[1].Message, result.Errors[0])
	}

	symbols, err := s.Symbols(ctx, result.UnitID)
	if err != nil {
		t.Fatalf("Symbols() error = %v", err)
	}
	want := []Symbol{
		{Seq: 0, Name: "x", Type: "int", Scope: 1, Line: 2},
		{Seq: 1, Name: "s", Type: "string", Scope: 1, Line: 3},
	}
	if len(symbols) != len(want) {
		t.Fatalf("symbols = %+v", symbols)
	}
	for i := range want {
		if symbols[i] != want[i] {
			t.Errorf("symbol %d = %+v, want %+v", i, symbols[i], want[i])
		}
	}
}

func TestSQLiteStore_UnitsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ids := make([]uuid.UUID, 0, 3)
	for _, source := range []string{"{ }$", "{ int a }$", "{ a = 1 }$"} {
		result := compiler.Compile(source, compiler.DefaultOptions())
		if err := s.Save(ctx, result); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		ids = append(ids, result.UnitID)
	}

	units, err := s.Units(ctx, 2)
	if err != nil {
		t.Fatalf("Units() error = %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("units = %d, want 2", len(units))
	}
	if units[0].ID != ids[2] || units[1].ID != ids[1] {
		t.Errorf("order = %v, %v", units[0].ID, units[1].ID)
	}
}

func TestSQLiteStore_UnknownUnit(t *testing.T) {
	s := openTestStore(t)

	diagnostics, err := s.Diagnostics(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Diagnostics() error = %v", err)
	}
	if len(diagnostics) != 0 {
		t.Errorf("diagnostics = %v", diagnostics)
	}
}
