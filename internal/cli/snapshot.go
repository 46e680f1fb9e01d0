package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
)

var snapshotJSON bool

// snapshotCmd prints one metrics sample and exits.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print a one-shot metrics sample",
	Long: `Take a single metrics sample and print it to stdout.

Shows the same memory, disk, and top-process figures as the dashboard,
without entering the alternate screen. Useful for scripting with --json.

Examples:
  sysmon snapshot
  sysmon snapshot --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "output in JSON format")
}

// snapshotWarmup is how many samples to take before printing; CPU figures are
// deltas between samples, so a single sample would read zero.
const (
	snapshotWarmup = 2
	snapshotDelay  = 500 * time.Millisecond
)

// SnapshotOutput is the JSON shape of a one-shot sample.
type SnapshotOutput struct {
	Memory    MemoryOutput    `json:"memory"`
	Cores     []float64       `json:"cores"`
	Disks     []DiskOutput    `json:"disks"`
	Processes []ProcessOutput `json:"processes"`
}

// MemoryOutput describes memory usage for JSON output.
type MemoryOutput struct {
	TotalBytes     uint64  `json:"total_bytes"`
	UsedBytes      uint64  `json:"used_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsedPercent    float64 `json:"used_percent"`
}

// DiskOutput describes a single disk for JSON output.
type DiskOutput struct {
	Name           string  `json:"name"`
	TotalBytes     uint64  `json:"total_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsagePercent   float64 `json:"usage_percent"`
}

// ProcessOutput describes a single process for JSON output. CPUPercent is the
// displayed value, capped at 100.
type ProcessOutput struct {
	PID        int32   `json:"pid"`
	Name       string  `json:"name"`
	CPUPercent float64 `json:"cpu_percent"`
	MemoryMiB  float64 `json:"memory_mib"`
}

// snapshotCommand implements the snapshot command logic.
func snapshotCommand(w io.Writer) error {
	collector, err := monitor.NewCollector(logger.Default())
	if err != nil {
		return err
	}

	snap, err := collector.Prime(snapshotWarmup, snapshotDelay)
	if err != nil {
		return err
	}

	if snapshotJSON {
		return writeSnapshotJSON(w, snap)
	}
	return writeSnapshotText(w, snap)
}

// buildSnapshotOutput converts a snapshot into its JSON output shape.
func buildSnapshotOutput(snap *monitor.Snapshot) SnapshotOutput {
	out := SnapshotOutput{
		Memory: MemoryOutput{
			TotalBytes:     snap.Memory.TotalBytes,
			UsedBytes:      snap.Memory.UsedBytes,
			AvailableBytes: snap.Memory.AvailableBytes,
			UsedPercent:    snap.Memory.UsedPercent(),
		},
		Cores: snap.Cores,
	}

	for _, d := range snap.Disks {
		out.Disks = append(out.Disks, DiskOutput{
			Name:           d.Name,
			TotalBytes:     d.TotalBytes,
			AvailableBytes: d.AvailableBytes,
			UsagePercent:   d.UsagePercent(),
		})
	}

	for _, p := range monitor.TopByCPU(snap.Processes, monitor.ProcessLimit) {
		out.Processes = append(out.Processes, ProcessOutput{
			PID:        p.PID,
			Name:       p.Name,
			CPUPercent: p.DisplayCPU(),
			MemoryMiB:  p.MemoryMiB(),
		})
	}

	return out
}

// writeSnapshotJSON writes the sample as indented JSON.
func writeSnapshotJSON(w io.Writer, snap *monitor.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildSnapshotOutput(snap))
}

// writeSnapshotText writes the styled human-readable sample.
func writeSnapshotText(w io.Writer, snap *monitor.Snapshot) error {
	label := lipgloss.NewStyle().Foreground(monitor.ColorYellow)

	mem := snap.Memory
	fmt.Fprintf(w, "%s %.2f GB / %.2f GB (%.1f%%), %.2f GB available\n",
		label.Render("Memory:"), mem.UsedGiB(), mem.TotalGiB(), mem.UsedPercent(), mem.AvailableGiB())

	for _, d := range snap.Disks {
		fmt.Fprintf(w, "%s %.1fGB/%.1fGB (%.1f%%)\n",
			label.Render("Disk "+d.Name+":"), d.UsedGiB(), d.TotalGiB(), d.UsagePercent())
	}

	for i, usage := range snap.Cores {
		bar := monitor.MetricStyle(monitor.CoreColor(usage)).Render(monitor.CPUBar(usage, monitor.CPUBarWidth))
		fmt.Fprintf(w, "CPU %-2d [%s] %.2f%%\n", i, bar, usage)
	}

	fmt.Fprintln(w)
	t := monitor.NewProcessTable(snap.Processes, monitor.ProcessLimit)
	fmt.Fprintln(w, t.View())
	return nil
}
