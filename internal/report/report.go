// Package report renders a compiled unit for people (text) and for
// tools (YAML).
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kievzenit/blockc/internal/ast"
	"github.com/kievzenit/blockc/internal/compiler"
)

type Options struct {
	Tokens  bool
	Tree    bool
	Symbols bool
	Color   bool
}

// WriteText prints the unit section by section: tokens, tokenizer
// diagnostics, the validator verdict, the tree, builder errors and the
// symbol table. The table is left out when the builder reported errors.
func WriteText(w io.Writer, result *compiler.Result, opts Options) error {
	p := newPalette(w, opts.Color)
	var sb strings.Builder

	if opts.Tokens {
		sb.WriteString(p.render(p.heading, "Tokens") + "\n")
		for _, token := range result.Tokens {
			sb.WriteString(p.render(p.muted, token.String()) + "\n")
		}
	}

	for _, warning := range result.LexWarnings {
		sb.WriteString(p.render(p.warning, "WARNING: "+warning) + "\n")
	}
	for _, err := range result.LexErrors {
		sb.WriteString(p.render(p.err, "ERROR: "+err) + "\n")
	}

	if result.Validated {
		if result.Valid {
			sb.WriteString(p.render(p.success, result.Verdict) + "\n")
		} else {
			sb.WriteString(p.render(p.err, result.Verdict) + "\n")
		}
	}

	if opts.Tree && result.Program != nil {
		sb.WriteString(p.render(p.heading, "Tree") + "\n")
		sb.WriteString(result.Program.String())
	}

	if len(result.Errors) != 0 {
		sb.WriteString(p.render(p.err, "Errors:") + "\n")
		for _, err := range result.Errors {
			sb.WriteString(err + "\n")
		}
	} else if opts.Symbols && result.Symbols != nil {
		result.Symbols.Print(&sb)
	}

	sb.WriteString(summary(p, result) + "\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteTree writes only the indented tree dump.
func WriteTree(w io.Writer, root *ast.Node) error {
	if root == nil {
		return nil
	}
	if _, err := io.WriteString(w, root.String()); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	return nil
}

func summary(p palette, result *compiler.Result) string {
	count := len(result.Diagnostics())
	switch {
	case count == 0:
		return p.render(p.success, "OK")
	case count == 1:
		return p.render(p.err, "1 error")
	default:
		return p.render(p.err, fmt.Sprintf("%d errors", count))
	}
}
