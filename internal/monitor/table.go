package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Process table column widths. Name flexes to the remaining width.
const (
	colPIDWidth  = 10
	colCPUWidth  = 14
	colMemWidth  = 12
	colNameMin   = 20
	ProcessLimit = 20
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	pidStyle         = lipgloss.NewStyle().Foreground(ColorBlue)
	procNameStyle    = lipgloss.NewStyle().Foreground(ColorWhite)
	selectedRowStyle = lipgloss.NewStyle().Background(ColorGray).Bold(true)
)

// renderProcessRows renders the dashboard's process listing: a yellow bold
// header and the top ProcessLimit processes by raw CPU usage. Each cell
// carries its own severity color, so the rows are composed by hand rather
// than handed to a table widget. selected marks the cursor row (-1 for none).
func renderProcessRows(procs []ProcessMetrics, width, selected int) string {
	nameWidth := width - colPIDWidth - colCPUWidth - colMemWidth - 3
	if nameWidth < colNameMin {
		nameWidth = colNameMin
	}

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(
		pad("PID", colPIDWidth) + " " +
			pad("Name", nameWidth) + " " +
			pad("CPU% (max 100)", colCPUWidth) + " " +
			pad("Memory", colMemWidth)))

	for i, p := range TopByCPU(procs, ProcessLimit) {
		displayCPU := p.DisplayCPU()
		memoryMiB := p.MemoryMiB()

		pidCell := pad(fmt.Sprintf("%d", p.PID), colPIDWidth)
		nameCell := pad(p.Name, nameWidth)
		cpuCell := pad(fmt.Sprintf("%.1f%%", displayCPU), colCPUWidth)
		memCell := pad(fmt.Sprintf("%.1f MB", memoryMiB), colMemWidth)

		b.WriteString("\n")
		if i == selected {
			b.WriteString(selectedRowStyle.Render(
				pidCell + " " + nameCell + " " + cpuCell + " " + memCell))
			continue
		}

		b.WriteString(pidStyle.Render(pidCell))
		b.WriteString(" ")
		b.WriteString(procNameStyle.Render(nameCell))
		b.WriteString(" ")
		b.WriteString(MetricStyle(ProcessCPUColor(displayCPU)).Bold(true).Render(cpuCell))
		b.WriteString(" ")
		b.WriteString(MetricStyle(ProcessMemoryColor(memoryMiB)).Render(memCell))
	}

	return b.String()
}

// pad fits s into exactly width cells, truncating or space-padding as needed.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// NewProcessTable builds a Bubbles table of the top processes for one-shot
// output. Unlike the live dashboard rows, cells here are uniformly styled.
func NewProcessTable(procs []ProcessMetrics, limit int) table.Model {
	columns := []table.Column{
		{Title: "PID", Width: colPIDWidth},
		{Title: "Name", Width: colNameMin + 10},
		{Title: "CPU% (max 100)", Width: colCPUWidth},
		{Title: "Memory", Width: colMemWidth},
	}

	top := TopByCPU(procs, limit)
	rows := make([]table.Row, len(top))
	for i, p := range top {
		rows[i] = table.Row{
			fmt.Sprintf("%d", p.PID),
			p.Name,
			fmt.Sprintf("%.1f%%", p.DisplayCPU()),
			fmt.Sprintf("%.1f MB", p.MemoryMiB()),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorYellow)
	s.Cell = s.Cell.
		Foreground(ColorWhite)
	s.Selected = s.Selected.
		Foreground(ColorWhite).
		Background(ColorGray).
		Bold(false)
	t.SetStyles(s)

	return t
}
