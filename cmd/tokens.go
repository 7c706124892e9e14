package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kievzenit/blockc/internal/compiler_errors"
	"github.com/kievzenit/blockc/internal/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token sequence of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			eh := compiler_errors.NewErrorHandler()
			tokens := lexer.NewLexer(source, eh, a.logger).Tokenize()

			out := cmd.OutOrStdout()
			for _, token := range tokens {
				fmt.Fprintln(out, token.String())
			}
			eh.Report(out)

			if eh.HasErrors() {
				return errUnitFailed
			}
			return nil
		},
	}
}
