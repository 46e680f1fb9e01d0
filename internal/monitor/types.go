package monitor

import (
	"sort"
	"time"
)

const (
	bytesPerMiB = 1024 * 1024
	bytesPerGiB = 1024 * 1024 * 1024
)

// Snapshot holds one full sample of host metrics, refreshed every tick.
type Snapshot struct {
	TakenAt   time.Time
	Memory    MemoryMetrics
	Cores     []float64 // per-core utilization, 0-100
	Disks     []DiskMetrics
	Processes []ProcessMetrics
}

// MemoryMetrics contains virtual memory usage information.
type MemoryMetrics struct {
	TotalBytes     uint64
	UsedBytes      uint64
	AvailableBytes uint64
}

// UsedPercent returns used memory as a percentage of total, or 0 when total is 0.
func (m MemoryMetrics) UsedPercent() float64 {
	if m.TotalBytes == 0 {
		return 0
	}
	return float64(m.UsedBytes) / float64(m.TotalBytes) * 100.0
}

// TotalGiB returns total memory in GiB.
func (m MemoryMetrics) TotalGiB() float64 {
	return float64(m.TotalBytes) / bytesPerGiB
}

// UsedGiB returns used memory in GiB.
func (m MemoryMetrics) UsedGiB() float64 {
	return float64(m.UsedBytes) / bytesPerGiB
}

// AvailableGiB returns available memory in GiB.
func (m MemoryMetrics) AvailableGiB() float64 {
	return float64(m.AvailableBytes) / bytesPerGiB
}

// DiskMetrics describes one disk. The disk list is enumerated once at startup;
// the usage figures are re-read on every refresh.
type DiskMetrics struct {
	Name           string
	TotalBytes     uint64
	AvailableBytes uint64
}

// UsedBytes returns the occupied capacity, or 0 when available exceeds total.
func (d DiskMetrics) UsedBytes() uint64 {
	if d.AvailableBytes > d.TotalBytes {
		return 0
	}
	return d.TotalBytes - d.AvailableBytes
}

// UsagePercent returns used capacity as a percentage of total, or 0 when total is 0.
func (d DiskMetrics) UsagePercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.UsedBytes()) / float64(d.TotalBytes) * 100.0
}

// UsedGiB returns used capacity in GiB.
func (d DiskMetrics) UsedGiB() float64 {
	return float64(d.UsedBytes()) / bytesPerGiB
}

// TotalGiB returns total capacity in GiB.
func (d DiskMetrics) TotalGiB() float64 {
	return float64(d.TotalBytes) / bytesPerGiB
}

// ProcessMetrics describes one process in the snapshot. CPUPercent is the raw
// sample and can exceed 100 on multi-core hosts; display code caps it.
type ProcessMetrics struct {
	PID         int32
	Name        string
	CPUPercent  float64
	MemoryBytes uint64
}

// DisplayCPU returns the CPU percentage capped at 100 for display.
// Sort order always uses the uncapped raw value.
func (p ProcessMetrics) DisplayCPU() float64 {
	if p.CPUPercent > 100.0 {
		return 100.0
	}
	return p.CPUPercent
}

// MemoryMiB returns resident memory in MiB.
func (p ProcessMetrics) MemoryMiB() float64 {
	return float64(p.MemoryBytes) / bytesPerMiB
}

// TopByCPU returns the n processes with the highest raw CPU usage in
// descending order. The input slice is not modified. Unorderable comparisons
// (NaN values) are treated as equal, so such entries keep their relative order.
func TopByCPU(procs []ProcessMetrics, n int) []ProcessMetrics {
	sorted := make([]ProcessMetrics, len(procs))
	copy(sorted, procs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CPUPercent > sorted[j].CPUPercent
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
