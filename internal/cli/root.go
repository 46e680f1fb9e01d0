package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command. A bare invocation runs the live dashboard;
// there are no flags, arguments, or configuration files.
var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "Live terminal dashboard for host resource metrics",
	Long: `Sysmon renders a live dashboard of host resource metrics in the terminal.

The dashboard shows memory, disk, and per-core CPU usage alongside the top 20
processes by CPU, refreshed every 200ms. Press q, Q, or Esc to quit.

Examples:
  sysmon
  sysmon snapshot --json
  sysmon version`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

// Execute runs the CLI. Errors are printed in their structured form and the
// process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
