package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kievzenit/blockc/internal/store"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit int
		unit  string
	)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List units recorded by check --store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			s, err := store.Open(a.cfg.Store.Path)
			if err != nil {
				return err
			}
			defer s.Close()

			if unit != "" {
				id, err := uuid.Parse(unit)
				if err != nil {
					return fmt.Errorf("invalid unit id %q: %w", unit, err)
				}
				return showUnit(ctx, cmd, s, id)
			}

			units, err := s.Units(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, u := range units {
				status := "ok"
				if u.ErrorCount > 0 {
					status = fmt.Sprintf("errors=%d", u.ErrorCount)
				}
				fmt.Fprintf(out, "%s  %s  %-10s %s\n",
					u.ID, u.CreatedAt.Local().Format("2006-01-02 15:04:05"), status, firstLine(u.Source))
			}
			return nil
		},
	}

	historyCmd.Flags().IntVar(&limit, "limit", 20, "number of units to list")
	historyCmd.Flags().StringVar(&unit, "unit", "", "show diagnostics and symbols of one unit")

	return historyCmd
}

func showUnit(ctx context.Context, cmd *cobra.Command, s *store.SQLiteStore, id uuid.UUID) error {
	diagnostics, err := s.Diagnostics(ctx, id)
	if err != nil {
		return err
	}
	symbols, err := s.Symbols(ctx, id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, d := range diagnostics {
		fmt.Fprintf(out, "%s: %s\n", strings.ToUpper(string(d.Stage)), d.Message)
	}
	for _, sym := range symbols {
		fmt.Fprintf(out, "[Name: %s, Type: %s, Scope: %d, Line: %d]\n", sym.Name, sym.Type, sym.Scope, sym.Line)
	}
	return nil
}

func firstLine(source string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(source), "\n")
	return line
}
