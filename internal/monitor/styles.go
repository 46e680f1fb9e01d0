package monitor

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette using ANSI color codes for terminal compatibility.
const (
	ColorRed     lipgloss.Color = "1"
	ColorGreen   lipgloss.Color = "2"
	ColorYellow  lipgloss.Color = "3"
	ColorBlue    lipgloss.Color = "4"
	ColorMagenta lipgloss.Color = "5"
	ColorCyan    lipgloss.Color = "6"
	ColorWhite   lipgloss.Color = "7"
	ColorGray    lipgloss.Color = "8" // bright black
)

// Severity thresholds for memory usage percentage
const (
	MemoryWarningThreshold  = 50.0
	MemoryCriticalThreshold = 80.0
)

// Severity thresholds for disk usage percentage
const (
	DiskWarningThreshold  = 75.0
	DiskCriticalThreshold = 90.0
)

// Severity thresholds for per-core CPU utilization
const (
	CoreWarningThreshold  = 30.0
	CoreCriticalThreshold = 70.0
)

// CPUBarWidth is the fixed cell width of a per-core utilization bar.
const CPUBarWidth = 10

// Text styles shared across panes
var (
	labelStyle   = lipgloss.NewStyle().Foreground(ColorYellow)
	valueStyle   = lipgloss.NewStyle().Foreground(ColorWhite)
	headingStyle = lipgloss.NewStyle().Bold(true)
)

// MemoryColor returns the severity color for a memory usage percentage.
func MemoryColor(usedPercent float64) lipgloss.Color {
	switch {
	case usedPercent >= MemoryCriticalThreshold:
		return ColorRed
	case usedPercent >= MemoryWarningThreshold:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// DiskColor returns the severity color for a disk usage percentage.
func DiskColor(usagePercent float64) lipgloss.Color {
	switch {
	case usagePercent > DiskCriticalThreshold:
		return ColorRed
	case usagePercent > DiskWarningThreshold:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// CoreColor returns the severity color for a per-core CPU utilization.
func CoreColor(usage float64) lipgloss.Color {
	switch {
	case usage >= CoreCriticalThreshold:
		return ColorRed
	case usage >= CoreWarningThreshold:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// ProcessCPUColor returns the severity color for a displayed (capped) process
// CPU percentage.
func ProcessCPUColor(displayPercent float64) lipgloss.Color {
	switch {
	case displayPercent > 80.0:
		return ColorRed
	case displayPercent > 50.0:
		return ColorYellow
	case displayPercent > 20.0:
		return ColorGreen
	case displayPercent > 5.0:
		return ColorCyan
	default:
		return ColorGray
	}
}

// ProcessMemoryColor returns the severity color for a process resident size in MiB.
func ProcessMemoryColor(memoryMiB float64) lipgloss.Color {
	switch {
	case memoryMiB > 1000.0:
		return ColorRed
	case memoryMiB > 500.0:
		return ColorYellow
	case memoryMiB > 100.0:
		return ColorGreen
	default:
		return ColorGray
	}
}

// BarFill returns the number of filled cells for a proportional bar.
// Rounding is half away from zero; the result is clamped to [0, width].
func BarFill(usage float64, width int) int {
	filled := int(math.Round(usage / 100.0 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return filled
}

// CPUBar renders the cells of a fixed-width utilization bar, without brackets
// or color. Filled cells are full blocks, empty cells are spaces.
func CPUBar(usage float64, width int) string {
	filled := BarFill(usage, width)
	return strings.Repeat("█", filled) + strings.Repeat(" ", width-filled)
}

// MetricStyle returns a style with the given foreground color.
func MetricStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color)
}
