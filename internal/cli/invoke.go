package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/formatkit/internal/ops"
)

// InvokeOptions holds flags for the invoke command.
type InvokeOptions struct {
	*RootOptions
	Args string
}

// NewInvokeCommand creates the invoke command.
func NewInvokeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InvokeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "invoke <operation>",
		Short: "Invoke a single operation",
		Long: `Invoke a single operation from the catalog and print its result.

Arguments are passed as a JSON object. Run "formatkit list" to see the
operations and their parameters.

Exit codes:
  0 - Operation succeeded
  1 - Operation returned an error
  2 - Command error (bad arguments, unknown operation)

Examples:
  formatkit invoke number.format --args '{"value":1500}'
  formatkit invoke string.kebabCase --args '{"text":"helloWorld"}'
  formatkit invoke time.timeAgo --args '{"date":"2024-01-01T00:00:00Z"}' --format json`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return invokeOperation(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Args, "args", "{}", "operation arguments as JSON")

	return cmd
}

func invokeOperation(opts *InvokeOptions, name string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var args ops.Args
	if err := argsJSON.Unmarshal([]byte(opts.Args), &args); err != nil {
		if outErr := formatter.Error(ErrCodeArgs, fmt.Sprintf("invalid --args JSON: %v", err), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "invalid --args JSON", err)
	}

	slog.Debug("invoking operation", "op", name, "args", opts.Args)

	env := opts.Env()
	formatter.VerboseLog("invoking %s with locale %s, currency %q", name, env.Locale, env.Currency)

	value, err := opts.catalog().Invoke(env, name, args)
	if err != nil {
		code, exit := classifyError(err)
		details := operationDetails(opts.catalog(), name)
		if outErr := formatter.Error(code, err.Error(), details); outErr != nil {
			return outErr
		}
		return WrapExitError(exit, fmt.Sprintf("%s failed", name), err)
	}

	return formatter.Success(value)
}

// classifyError maps catalog errors onto response codes and exit codes.
func classifyError(err error) (string, int) {
	var argErr *ops.ArgError
	switch {
	case errors.Is(err, ops.ErrUnknownOperation):
		return ErrCodeUnknownOp, ExitCommandError
	case errors.As(err, &argErr):
		return ErrCodeArgs, ExitCommandError
	default:
		return ErrCodeOperation, ExitFailure
	}
}

// operationDetails returns the usage line of a known operation, for error output.
func operationDetails(c *ops.Catalog, name string) any {
	op, ok := c.Lookup(name)
	if !ok {
		return nil
	}
	return map[string]string{"usage": fmt.Sprintf("%s(%s)", op.Name, op.Usage())}
}
