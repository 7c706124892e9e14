// Package store keeps a SQLite history of compiled units together with
// their diagnostics and symbol tables.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kievzenit/blockc/internal/compiler"
)

// Stage names the pass a diagnostic came from
type Stage string

const (
	StageLexer     Stage = "lexer"
	StageWarning   Stage = "warning"
	StageValidator Stage = "validator"
	StageBuilder   Stage = "builder"
)

// Unit is one stored compilation
type Unit struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	Source       string
	TokenCount   int
	Validated    bool
	Valid        bool
	ErrorCount   int
	WarningCount int
}

// Diagnostic is one stored error or warning
type Diagnostic struct {
	Seq     int
	Stage   Stage
	Message string
}

// Symbol is one stored symbol table entry
type Symbol struct {
	Seq   int
	Name  string
	Type  string
	Scope int
	Line  int
}

// SQLiteStore persists units in a single SQLite file
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// Open creates the database file and its schema if needed
func Open(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS units (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		source TEXT NOT NULL,
		token_count INTEGER NOT NULL,
		validated INTEGER NOT NULL,
		valid INTEGER NOT NULL,
		error_count INTEGER NOT NULL,
		warning_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS diagnostics (
		unit_id TEXT NOT NULL REFERENCES units(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		stage TEXT NOT NULL,
		message TEXT NOT NULL,
		PRIMARY KEY (unit_id, seq)
	);

	CREATE TABLE IF NOT EXISTS symbols (
		unit_id TEXT NOT NULL REFERENCES units(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		scope INTEGER NOT NULL,
		line INTEGER NOT NULL,
		PRIMARY KEY (unit_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_units_created_at ON units(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save records a compiled unit in one transaction
func (s *SQLiteStore) Save(ctx context.Context, result *compiler.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO units (id, created_at, source, token_count, validated, valid, error_count, warning_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, result.UnitID.String(), time.Now().UTC(), result.Source, len(result.Tokens),
		result.Validated, result.Valid, len(result.Diagnostics()), len(result.LexWarnings))
	if err != nil {
		return fmt.Errorf("failed to insert unit: %w", err)
	}

	if err := insertDiagnostics(ctx, tx, result); err != nil {
		return err
	}
	if err := insertSymbols(ctx, tx, result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit unit: %w", err)
	}
	return nil
}

func insertDiagnostics(ctx context.Context, tx *sql.Tx, result *compiler.Result) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO diagnostics (unit_id, seq, stage, message) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	seq := 0
	insert := func(stage Stage, messages ...string) error {
		for _, message := range messages {
			if _, err := stmt.ExecContext(ctx, result.UnitID.String(), seq, stage, message); err != nil {
				return fmt.Errorf("failed to insert diagnostic: %w", err)
			}
			seq++
		}
		return nil
	}

	if err := insert(StageWarning, result.LexWarnings...); err != nil {
		return err
	}
	if err := insert(StageLexer, result.LexErrors...); err != nil {
		return err
	}
	if result.ValidationError != "" {
		if err := insert(StageValidator, result.ValidationError); err != nil {
			return err
		}
	}
	return insert(StageBuilder, result.Errors...)
}

func insertSymbols(ctx context.Context, tx *sql.Tx, result *compiler.Result) error {
	if result.Symbols == nil {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO symbols (unit_id, seq, name, type, scope, line) VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for seq, entry := range result.Symbols.Entries() {
		_, err := stmt.ExecContext(ctx, result.UnitID.String(), seq,
			entry.Name, entry.Type.Type(), entry.Scope, entry.Line)
		if err != nil {
			return fmt.Errorf("failed to insert symbol: %w", err)
		}
	}
	return nil
}

// Units returns the most recent units first
func (s *SQLiteStore) Units(ctx context.Context, limit int) ([]Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, source, token_count, validated, valid, error_count, warning_count
		FROM units
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer rows.Close()

	units := make([]Unit, 0)
	for rows.Next() {
		var (
			unit Unit
			id   string
		)
		if err := rows.Scan(&id, &unit.CreatedAt, &unit.Source, &unit.TokenCount,
			&unit.Validated, &unit.Valid, &unit.ErrorCount, &unit.WarningCount); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		if unit.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid unit id %q: %w", id, err)
		}
		units = append(units, unit)
	}

	return units, rows.Err()
}

// Diagnostics returns the stored diagnostics of a unit in recorded order
func (s *SQLiteStore) Diagnostics(ctx context.Context, unitID uuid.UUID) ([]Diagnostic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, stage, message FROM diagnostics WHERE unit_id = ? ORDER BY seq
	`, unitID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query diagnostics: %w", err)
	}
	defer rows.Close()

	diagnostics := make([]Diagnostic, 0)
	for rows.Next() {
		var d Diagnostic
		if err := rows.Scan(&d.Seq, &d.Stage, &d.Message); err != nil {
			return nil, fmt.Errorf("failed to scan diagnostic: %w", err)
		}
		diagnostics = append(diagnostics, d)
	}

	return diagnostics, rows.Err()
}

// Symbols returns the stored symbol table of a unit in insertion order
func (s *SQLiteStore) Symbols(ctx context.Context, unitID uuid.UUID) ([]Symbol, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, name, type, scope, line FROM symbols WHERE unit_id = ? ORDER BY seq
	`, unitID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	symbols := make([]Symbol, 0)
	for rows.Next() {
		var sym Symbol
		if err := rows.Scan(&sym.Seq, &sym.Name, &sym.Type, &sym.Scope, &sym.Line); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		symbols = append(symbols, sym)
	}

	return symbols, rows.Err()
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
