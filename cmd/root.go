package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kievzenit/blockc/internal/compiler"
	"github.com/kievzenit/blockc/internal/config"
	"github.com/kievzenit/blockc/internal/logging"
)

// errUnitFailed signals a unit with diagnostics; they are already printed.
var errUnitFailed = errors.New("compilation failed")

type app struct {
	cfgFile  string
	logLevel string
	noColor  bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "blockc",
		Short: "blockc - front end for a small block structured language",
		Long: `blockc tokenizes, validates and builds the syntax tree of programs
written in a small block structured language, type checks assignments and
prints the symbol table.

Programs are a single { ... } block terminated by '$'.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", config.DefaultPath, "config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
		newHistoryCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// execute runs the root command and prints infrastructure errors.
func execute(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errUnitFailed) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.noColor {
		cfg.Output.Color = false
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) compileOptions() compiler.Options {
	return compiler.Options{
		Validate:        a.cfg.Pipeline.Validate,
		Gate:            a.cfg.Pipeline.Gate,
		StopOnLexErrors: a.cfg.Pipeline.StopOnLexErrors,
		Logger:          a.logger,
	}
}

// readSource reads path, or standard input when path is "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read source: %w", err)
	}
	return string(data), nil
}
