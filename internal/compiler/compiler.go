// Package compiler runs one compilation unit through the tokenizer, the
// optional validator and the builder.
package compiler

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/kievzenit/blockc/internal/ast"
	"github.com/kievzenit/blockc/internal/compiler_errors"
	"github.com/kievzenit/blockc/internal/lexer"
	"github.com/kievzenit/blockc/internal/logging"
	"github.com/kievzenit/blockc/internal/parser"
	sa "github.com/kievzenit/blockc/internal/semantic_analyzer"
)

type Options struct {
	// Validate runs the validator before building.
	Validate bool
	// Gate skips building when the validator rejects the unit. Implies Validate.
	Gate bool
	// StopOnLexErrors skips both parser passes when the tokenizer reported errors.
	StopOnLexErrors bool

	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Validate: true,
	}
}

type Result struct {
	UnitID uuid.UUID
	Source string

	Tokens      []lexer.Token
	LexErrors   []string
	LexWarnings []string

	Validated       bool
	Valid           bool
	ValidationError string
	Verdict         string

	Built   bool
	Program *ast.Node
	Symbols *sa.SymbolTable
	Errors  []string
}

// HasErrors reports whether any stage rejected the unit.
func (r *Result) HasErrors() bool {
	return len(r.LexErrors) != 0 || len(r.Errors) != 0 || (r.Validated && !r.Valid)
}

// Diagnostics returns every error message in stage order.
func (r *Result) Diagnostics() []string {
	diagnostics := make([]string, 0, len(r.LexErrors)+len(r.Errors)+1)
	diagnostics = append(diagnostics, r.LexErrors...)
	if r.ValidationError != "" {
		diagnostics = append(diagnostics, r.ValidationError)
	}
	diagnostics = append(diagnostics, r.Errors...)
	return diagnostics
}

// Compile processes source as one independent unit. It never fails:
// problems are reported through the Result.
func Compile(source string, opts Options) *Result {
	result := &Result{
		UnitID: uuid.New(),
		Source: source,
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.With(slog.String("unit", result.UnitID.String()))
	log := logging.Component(logger, "compiler")

	eh := compiler_errors.NewErrorHandler()
	result.Tokens = lexer.NewLexer(source, eh, logger).Tokenize()
	result.LexErrors = compiler_errors.Messages(eh.Errors())
	result.LexWarnings = compiler_errors.Messages(eh.Warnings())

	if opts.StopOnLexErrors && len(result.LexErrors) != 0 {
		log.Info("unit rejected by tokenizer", slog.Int("errors", len(result.LexErrors)))
		return result
	}

	if opts.Validate || opts.Gate {
		validator := parser.NewValidator(result.Tokens, logger)
		result.Validated = true
		result.Valid = validator.Validate()
		result.ValidationError = validator.Error()
		result.Verdict = validator.Verdict()

		if opts.Gate && !result.Valid {
			log.Info("unit rejected by validator", slog.String("error", result.ValidationError))
			return result
		}
	}

	builder := parser.NewBuilder(result.Tokens, logger)
	result.Program = builder.Build()
	result.Built = true
	result.Symbols = builder.SymbolTable()
	result.Errors = compiler_errors.Messages(builder.Errors())

	log.Debug("unit compiled",
		slog.Int("tokens", len(result.Tokens)),
		slog.Int("errors", len(result.Errors)),
		slog.Int("symbols", result.Symbols.Len()))

	return result
}
