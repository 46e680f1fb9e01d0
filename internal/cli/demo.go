package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// demoCmd is a small cursor-positioning demonstration: it prints static
// labels once, then rewrites just the values in place. Separate from the
// dashboard; it exists to show the raw-cursor technique the dashboard avoids.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Cursor-positioning demo that updates values in place",
	Long: `Clear the screen, print CPU and Memory labels, then update the two
values in place ten times at 500ms intervals using raw cursor addressing.

Examples:
  sysmon demo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoCommand(os.Stdout, 10, 500*time.Millisecond)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// demoCommand runs the in-place update loop for the given iteration count.
func demoCommand(w io.Writer, iterations int, delay time.Duration) error {
	out := termenv.NewOutput(w)

	// Clear screen once, then print the static labels
	out.ClearScreen()
	out.MoveCursor(1, 1)
	fmt.Fprint(out, "CPU: ")
	out.MoveCursor(2, 1)
	fmt.Fprint(out, "Memory: ")

	// Rewrite only the values, positioned just after each label
	for i := 0; i < iterations; i++ {
		out.MoveCursor(1, 6)
		fmt.Fprintf(out, "%d%%", i*10)
		out.MoveCursor(2, 9)
		fmt.Fprintf(out, "%dGB", i)

		time.Sleep(delay)
	}

	out.MoveCursor(3, 1)
	return nil
}
