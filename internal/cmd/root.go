package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/salmonumbrella/ftb/internal/config"
	"github.com/salmonumbrella/ftb/internal/errors"
	"github.com/salmonumbrella/ftb/internal/iocontext"
	"github.com/salmonumbrella/ftb/internal/logging"
	"github.com/salmonumbrella/ftb/internal/ui"
)

func newRootCmd(app *App) *cobra.Command {
	// Global flags
	var (
		debugMode   bool
		logJSON     bool
		colorFlag   string
		errorFormat string
	)

	// Format flags
	var (
		writeFlag bool
		diffFlag  bool
		checkFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "ftb [file]",
		Short: "Format and align Markdown tables",
		Long: `Format and align Markdown tables.

Reads Markdown from stdin or a file and writes it back with every table's
columns padded to uniform width and separator rows rebuilt with consistent
dashes. Lines outside tables pass through unchanged. Perfect for use with
pipes: pbpaste | ftb`,
		Example: `  cat notes.md | ftb
  ftb notes.md
  ftb -w notes.md
  ftb --check notes.md`,
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s (commit %s, built %s)", app.Version, app.Commit, app.BuildTime),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Cobra must not emit its own error/usage text; error output is
			// handled centrally in printCommandError.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logging.Setup(logging.Options{
				Debug: debugMode,
				JSON:  logJSON || cfg.LogJSON,
			}, app.Stderr)

			colorValue := flagOrConfig(cmd.Flags(), "color", colorFlag, cfg.Color)
			mode, ok := ui.ParseColorMode(colorValue)
			if !ok {
				return &errors.ValidationError{Field: "--color", Message: "must be auto, always, or never"}
			}

			ef := flagOrConfig(cmd.Flags(), "error-format", errorFormat, cfg.ErrorFormat)
			if err := validateErrorFormat(ef); err != nil {
				return err
			}

			ctx := cmd.Context()
			ctx = iocontext.WithIO(ctx, app.Stdin, app.Stdout, app.Stderr)
			ctx = ui.WithUI(ctx, ui.New(mode, app.Stderr))
			ctx = withErrorFormat(ctx, ef)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runFormat(cmd, path, formatOptions{
				write: writeFlag,
				diff:  diffFlag,
				check: checkFlag,
			})
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Color mode: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&errorFormat, "error-format", "", "Error output format: text, json, yaml")

	rootCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Rewrite the input file in place")
	rootCmd.Flags().BoolVarP(&diffFlag, "diff", "d", false, "Print a diff between input and formatted output")
	rootCmd.Flags().BoolVar(&checkFlag, "check", false, "Exit non-zero if the input is not already formatted")

	rootCmd.AddCommand(newMCPCmd(app))

	return rootCmd
}

// flagOrConfig prefers an explicitly set flag over the config file default.
func flagOrConfig(flags *pflag.FlagSet, name, flagValue, configValue string) string {
	if flags.Changed(name) || configValue == "" {
		return flagValue
	}
	return configValue
}
