package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fallback dimensions used before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Fixed pane heights: 2 border rows + title + 3 content lines.
const (
	memoryPaneHeight = 6
	diskPaneHeight   = 6
)

// maxDisks caps how many disks the disk pane shows, in collaborator order.
const maxDisks = 3

// renderDashboard lays out the full frame: memory, disks, and logo stacked on
// the top-left, CPU bars top-right, the process table across the bottom.
func (m Model) renderDashboard() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	topHeight := height / 2
	bottomHeight := height - topHeight
	leftWidth := width / 2
	rightWidth := width - leftWidth

	memory := m.renderMemoryPane(leftWidth)
	disks := m.renderDiskPane(leftWidth)
	logo := m.renderLogoBlock(leftWidth, topHeight-memoryPaneHeight-diskPaneHeight)
	left := lipgloss.JoinVertical(lipgloss.Left, memory, disks, logo)

	cpu := m.renderCPUPane(rightWidth, topHeight)
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, cpu)

	procs := m.renderProcessPane(width, bottomHeight)

	return lipgloss.JoinVertical(lipgloss.Left, top, procs)
}

// renderPane draws a bordered pane with a bold title line above the content.
// The border and title share the pane's accent color.
func renderPane(title string, color lipgloss.Color, content string, width, height int) string {
	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	innerHeight := height - 2
	if innerHeight < 1 {
		innerHeight = 1
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(color).
		Width(innerWidth).
		Height(innerHeight)

	heading := lipgloss.NewStyle().Foreground(color).Bold(true).Render(title)
	return box.Render(heading + "\n" + content)
}

func (m Model) renderMemoryPane(width int) string {
	var b strings.Builder

	if m.snapshot != nil {
		mem := m.snapshot.Memory
		usedPercent := mem.UsedPercent()
		memColor := MetricStyle(MemoryColor(usedPercent))

		b.WriteString(labelStyle.Render("Total: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f GB", mem.TotalGiB())))
		b.WriteString("\n")

		b.WriteString(labelStyle.Render("Used: "))
		b.WriteString(memColor.Render(fmt.Sprintf("%.2f GB", mem.UsedGiB())))
		b.WriteString(memColor.Render(fmt.Sprintf(" (%.1f%%)", usedPercent)))
		b.WriteString("\n")

		b.WriteString(labelStyle.Render("Available: "))
		b.WriteString(MetricStyle(ColorGreen).Render(fmt.Sprintf("%.2f GB", mem.AvailableGiB())))
	}

	return renderPane("Memory Info", ColorYellow, b.String(), width, memoryPaneHeight)
}

func (m Model) renderDiskPane(width int) string {
	var lines []string

	if m.snapshot != nil {
		disks := m.snapshot.Disks
		if len(disks) > maxDisks {
			disks = disks[:maxDisks]
		}
		for _, d := range disks {
			usagePercent := d.UsagePercent()
			line := MetricStyle(ColorCyan).Render(d.Name+": ") +
				valueStyle.Render(fmt.Sprintf("%.1fGB/%.1fGB ", d.UsedGiB(), d.TotalGiB())) +
				MetricStyle(DiskColor(usagePercent)).Render(fmt.Sprintf("(%.1f%%)", usagePercent))
			lines = append(lines, line)
		}
	}

	return renderPane("Disk Usage", ColorCyan, strings.Join(lines, "\n"), width, diskPaneHeight)
}

func (m Model) renderLogoBlock(width, height int) string {
	if height < 1 {
		return ""
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, RenderLogo(m.rng))
}

func (m Model) renderCPUPane(width, height int) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("CPU Usage"))
	b.WriteString("\n\n")

	if m.snapshot != nil {
		for i, usage := range m.snapshot.Cores {
			barStyle := MetricStyle(CoreColor(usage))
			b.WriteString(valueStyle.Render(fmt.Sprintf("CPU %-2d", i)))
			b.WriteString(" [")
			b.WriteString(barStyle.Render(CPUBar(usage, CPUBarWidth)))
			b.WriteString("] ")
			b.WriteString(barStyle.Render(fmt.Sprintf("%.2f%%", usage)))
			if i < len(m.snapshot.Cores)-1 {
				b.WriteString("\n")
			}
		}
	}

	return renderPane("CPU Usage", ColorGreen, b.String(), width, height)
}

func (m Model) renderProcessPane(width, height int) string {
	var procs []ProcessMetrics
	if m.snapshot != nil {
		procs = m.snapshot.Processes
	}

	rows := renderProcessRows(procs, width-4, m.selected)
	return renderPane("Processes", ColorMagenta, rows, width, height)
}
