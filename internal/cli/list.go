package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available operations",
		Long: `List every operation in the catalog with its parameters.

Optional parameters are shown in brackets.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			operations := rootOpts.catalog().List()

			if rootOpts.Format == "json" {
				formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return formatter.Success(operations)
			}

			w := cmd.OutOrStdout()
			for _, op := range operations {
				fmt.Fprintf(w, "%-28s %s\n", op.Name, op.Summary)
				if rootOpts.Verbose {
					for _, p := range op.Params {
						marker := "optional"
						if p.Required {
							marker = "required"
						}
						fmt.Fprintf(w, "    %-12s %-8s %s\n", p.Name, marker, p.Doc)
					}
				}
			}
			return nil
		},
	}
}
