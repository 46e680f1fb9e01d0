package monitor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func sizedModel(t *testing.T, snap *Snapshot, width, height int) Model {
	t.Helper()
	m := NewModel(&stubSampler{snap: snap}, snap, time.Second)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func TestView_ContainsAllPanes(t *testing.T) {
	m := sizedModel(t, testSnapshot(), 120, 48)
	view := m.View()

	assert.Contains(t, view, "Memory Info")
	assert.Contains(t, view, "Disk Usage")
	assert.Contains(t, view, "CPU Usage")
	assert.Contains(t, view, "Processes")
}

func TestView_MemoryLines(t *testing.T) {
	m := sizedModel(t, testSnapshot(), 120, 48)
	view := m.View()

	assert.Contains(t, view, "Total: ")
	assert.Contains(t, view, "32.00 GB")
	assert.Contains(t, view, "16.00 GB")
	assert.Contains(t, view, "(50.0%)")
	assert.Contains(t, view, "Available: ")
}

func TestView_DiskLines(t *testing.T) {
	m := sizedModel(t, testSnapshot(), 120, 48)
	view := m.View()

	// 400 GiB used of 500, 80%
	assert.Contains(t, view, "sda1: ")
	assert.Contains(t, view, "400.0GB/500.0GB")
	assert.Contains(t, view, "(80.0%)")
}

func TestView_ShowsAtMostThreeDisks(t *testing.T) {
	snap := testSnapshot()
	snap.Disks = []DiskMetrics{
		{Name: "sda1", TotalBytes: 100 * bytesPerGiB, AvailableBytes: 50 * bytesPerGiB},
		{Name: "sdb1", TotalBytes: 100 * bytesPerGiB, AvailableBytes: 50 * bytesPerGiB},
		{Name: "sdc1", TotalBytes: 100 * bytesPerGiB, AvailableBytes: 50 * bytesPerGiB},
		{Name: "sdd1", TotalBytes: 100 * bytesPerGiB, AvailableBytes: 50 * bytesPerGiB},
	}

	view := sizedModel(t, snap, 120, 48).View()

	assert.Contains(t, view, "sda1")
	assert.Contains(t, view, "sdb1")
	assert.Contains(t, view, "sdc1")
	assert.NotContains(t, view, "sdd1")
}

func TestView_CPUBars(t *testing.T) {
	m := sizedModel(t, testSnapshot(), 120, 48)
	view := m.View()

	assert.Contains(t, view, "CPU 0")
	assert.Contains(t, view, "CPU 1")
	assert.Contains(t, view, "12.50%")
	assert.Contains(t, view, "88.00%")
	// 88% of a 10-cell bar rounds to 9 filled cells
	assert.Contains(t, view, "█████████")
}

func TestView_ProcessTable(t *testing.T) {
	m := sizedModel(t, testSnapshot(), 120, 48)
	view := m.View()

	assert.Contains(t, view, "PID")
	assert.Contains(t, view, "CPU% (max 100)")
	assert.Contains(t, view, "browser")
	assert.Contains(t, view, "42.0%")
	assert.Contains(t, view, "1500.0 MB")
}

func TestView_NilSnapshotStillRenders(t *testing.T) {
	m := sizedModel(t, nil, 100, 40)
	view := m.View()

	// Panes render empty rather than panicking
	assert.Contains(t, view, "Memory Info")
	assert.Contains(t, view, "Processes")
}

func TestView_DefaultDimensions(t *testing.T) {
	m := NewModel(&stubSampler{snap: testSnapshot()}, testSnapshot(), time.Second)

	// No WindowSizeMsg yet; the fallback frame must still render
	assert.NotEmpty(t, m.View())
}
