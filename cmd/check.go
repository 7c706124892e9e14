package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"github.com/kievzenit/blockc/internal/compiler"
	"github.com/kievzenit/blockc/internal/report"
	"github.com/kievzenit/blockc/internal/store"
)

type checkFlags struct {
	format string
	dump   string
	tokens bool
	gate   bool
	store  bool
}

func newCheckCmd(a *app) *cobra.Command {
	flags := &checkFlags{}

	checkCmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Build the syntax tree, type check it and print the symbol table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyCheckFlags(cmd, a, flags)
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			result := compiler.Compile(source, a.compileOptions())

			if err := writeResult(cmd, a, result); err != nil {
				return err
			}

			if a.cfg.Store.Enabled {
				if err := saveResult(cmd.Context(), a, result); err != nil {
					return err
				}
			}

			if result.HasErrors() {
				return errUnitFailed
			}
			return nil
		},
	}

	checkCmd.Flags().StringVar(&flags.format, "format", "", "output format (text, yaml)")
	checkCmd.Flags().StringVar(&flags.dump, "dump", "", "tree dump (none, tree, litter)")
	checkCmd.Flags().BoolVar(&flags.tokens, "tokens", false, "also print the token sequence")
	checkCmd.Flags().BoolVar(&flags.gate, "gate", false, "skip tree building when validation fails")
	checkCmd.Flags().BoolVar(&flags.store, "store", false, "record the unit in the history database")

	return checkCmd
}

// applyCheckFlags lets explicitly set flags override the config file.
func applyCheckFlags(cmd *cobra.Command, a *app, flags *checkFlags) {
	if cmd.Flags().Changed("format") {
		a.cfg.Output.Format = flags.format
	}
	if cmd.Flags().Changed("dump") {
		a.cfg.Output.Dump = flags.dump
	}
	if cmd.Flags().Changed("tokens") {
		a.cfg.Output.Tokens = flags.tokens
	}
	if cmd.Flags().Changed("gate") {
		a.cfg.Pipeline.Gate = flags.gate
	}
	if cmd.Flags().Changed("store") {
		a.cfg.Store.Enabled = flags.store
	}
}

func writeResult(cmd *cobra.Command, a *app, result *compiler.Result) error {
	out := cmd.OutOrStdout()

	if a.cfg.Output.Format == "yaml" {
		return report.WriteYAML(out, result)
	}

	err := report.WriteText(out, result, report.Options{
		Tokens:  a.cfg.Output.Tokens,
		Tree:    a.cfg.Output.Dump == "tree",
		Symbols: a.cfg.Output.Symbols,
		Color:   a.cfg.Output.Color,
	})
	if err != nil {
		return err
	}

	if a.cfg.Output.Dump == "litter" && result.Program != nil {
		dumper := litter.Options{
			StripPackageNames: true,
			HidePrivateFields: true,
		}
		fmt.Fprintln(out, dumper.Sdump(result.Program))
	}

	return nil
}

func saveResult(ctx context.Context, a *app, result *compiler.Result) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := store.Open(a.cfg.Store.Path)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Save(ctx, result); err != nil {
		return err
	}

	a.logger.Info("unit stored",
		slog.String("unit", result.UnitID.String()),
		slog.String("path", a.cfg.Store.Path))
	return nil
}
