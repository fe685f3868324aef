package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/roach88/formatkit/datetime"
	"github.com/roach88/formatkit/internal/config"
	"github.com/roach88/formatkit/internal/ops"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Locale   string // BCP 47 tag for number.addCommas
	Currency string // default symbol for number.abbreviateCurrency

	// Fs is the filesystem scenarios and golden files are read from.
	Fs afero.Fs

	// Catalog is the operation set commands dispatch to.
	Catalog *ops.Catalog

	// Clock overrides the system clock for time operations.
	Clock datetime.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatText, config.FormatJSON}

// NewRootCommand creates the root command with built-in defaults.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithConfig(config.Default())
}

// NewRootCommandWithConfig creates the root command for the formatkit CLI.
// cfg supplies the flag defaults.
func NewRootCommandWithConfig(cfg config.Config) *cobra.Command {
	opts := &RootOptions{
		Fs:      afero.NewOsFs(),
		Catalog: ops.NewCatalog(),
	}

	cmd := &cobra.Command{
		Use:   "formatkit",
		Short: "FormatKit - number, string and date formatting utilities",
		Long: `FormatKit exposes number, string and date helpers as named operations.

Operations can be invoked one at a time or exercised in bulk through
conformance scenarios with golden traces.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if _, err := language.Parse(opts.Locale); err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid locale %q", opts.Locale), err)
			}
			setupLogging(cmd, opts.Verbose)
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", cfg.Verbose, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", cfg.Locale, "locale for thousands separators (BCP 47)")
	cmd.PersistentFlags().StringVar(&opts.Currency, "currency", cfg.Currency, "default currency symbol")

	cmd.AddCommand(NewInvokeCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// setupLogging routes slog to stderr, at debug level when verbose.
func setupLogging(cmd *cobra.Command, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// Env builds the operation environment from the global flags.
// An unparseable locale falls back to the catalog default.
func (o *RootOptions) Env() ops.Env {
	env := ops.DefaultEnv()
	if tag, err := language.Parse(o.Locale); err == nil {
		env.Locale = tag
	}
	if o.Currency != "" {
		env.Currency = o.Currency
	}
	if o.Clock != nil {
		env.Clock = o.Clock
	}
	return env
}

func (o *RootOptions) catalog() *ops.Catalog {
	if o.Catalog == nil {
		o.Catalog = ops.NewCatalog()
	}
	return o.Catalog
}

func (o *RootOptions) fs() afero.Fs {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	return o.Fs
}

// exactArgs is cobra.ExactArgs reported as a command error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
