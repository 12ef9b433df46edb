package version

import (
	"fmt"

	"github.com/flarebyte/demo/internal/buildinfo"
	"github.com/flarebyte/demo/internal/exitcode"
	"github.com/spf13/cobra"
)

// NewCmd creates the `demo version` command.
func NewCmd() *cobra.Command {
	var flagShort, flagJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print detailed build information",
		Args:  exitcode.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.Read()
			if flagShort || !flagJSON {
				// Exactly one line on stdout.
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "demo %s\n", info.Summary())
				return err
			}

			// JSON goes to stdout, the human friendly line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "demo version: %s\n", info.Summary())
			return encodeJSON(cmd.OutOrStdout(), info)
		},
	}

	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version line")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON build info")
	return cmd
}
