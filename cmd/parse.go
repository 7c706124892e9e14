package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kievzenit/blockc/internal/compiler_errors"
	"github.com/kievzenit/blockc/internal/lexer"
	"github.com/kievzenit/blockc/internal/parser"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Check that a program is grammatically well formed",
		Long: `parse runs only the grammar validator. It stops at the first error
and prints either "Parsing finished." or the error. Tokenizer warnings and
errors are printed first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			eh := compiler_errors.NewErrorHandler()
			tokens := lexer.NewLexer(source, eh, a.logger).Tokenize()

			out := cmd.OutOrStdout()
			eh.Report(out)

			validator := parser.NewValidator(tokens, a.logger)
			ok := validator.Validate()

			fmt.Fprintln(out, validator.Verdict())

			if !ok || eh.HasErrors() {
				return errUnitFailed
			}
			return nil
		},
	}
}
