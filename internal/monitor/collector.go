package monitor

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
)

// Collector samples host metrics from the OS. The disk partition list is
// enumerated once at construction; everything else is re-sampled per Refresh.
type Collector struct {
	partitions []disk.PartitionStat
	procs      map[int32]*process.Process // cached handles so CPU% is a delta between refreshes
	log        logger.Logger
}

// NewCollector creates a collector and enumerates the disk partition list.
// Enumeration failure is fatal; there is nothing sensible to display without it.
func NewCollector(log logger.Logger) (*Collector, error) {
	if log == nil {
		log = logger.Noop()
	}

	partitions, err := disk.Partitions(false)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Cannot enumerate disk partitions",
			"Check that this platform is supported and /proc is readable.")
	}

	return &Collector{
		partitions: partitions,
		procs:      make(map[int32]*process.Process),
		log:        log,
	}, nil
}

// Refresh takes a full metrics sample. CPU, memory, and process failures are
// fatal and propagate; a single process vanishing mid-sample is skipped.
func (c *Collector) Refresh() (*Snapshot, error) {
	cores, err := cpu.Percent(0, true)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Cannot sample CPU utilization", "")
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Cannot sample memory usage", "")
	}

	procs, err := c.refreshProcesses()
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		TakenAt: time.Now(),
		Memory: MemoryMetrics{
			TotalBytes:     vm.Total,
			UsedBytes:      vm.Used,
			AvailableBytes: vm.Available,
		},
		Cores:     cores,
		Disks:     c.refreshDisks(),
		Processes: procs,
	}, nil
}

// Prime runs count synchronous refreshes spaced delay apart and returns the
// last snapshot. Used at startup so the first rendered frame shows settled
// CPU deltas instead of zeroes.
func (c *Collector) Prime(count int, delay time.Duration) (*Snapshot, error) {
	var snap *Snapshot
	var err error
	for i := 0; i < count; i++ {
		snap, err = c.Refresh()
		if err != nil {
			return nil, err
		}
		if i < count-1 {
			time.Sleep(delay)
		}
	}
	return snap, nil
}

// DiskCount returns the number of enumerated disk partitions.
func (c *Collector) DiskCount() int {
	return len(c.partitions)
}

// refreshDisks re-reads usage for the partition list captured at startup.
// A partition whose usage cannot be read this tick is skipped.
func (c *Collector) refreshDisks() []DiskMetrics {
	disks := make([]DiskMetrics, 0, len(c.partitions))
	for _, part := range c.partitions {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil {
			c.log.Debug("skipping disk %s: %v", part.Device, err)
			continue
		}
		disks = append(disks, DiskMetrics{
			Name:           part.Device,
			TotalBytes:     usage.Total,
			AvailableBytes: usage.Free,
		})
	}
	return disks
}

// refreshProcesses samples the full process table. Handles are cached between
// refreshes so the CPU figure is usage since the previous tick rather than
// since process start.
func (c *Collector) refreshProcesses() ([]ProcessMetrics, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Cannot enumerate processes", "")
	}

	seen := make(map[int32]bool, len(pids))
	procs := make([]ProcessMetrics, 0, len(pids))

	for _, pid := range pids {
		p, ok := c.procs[pid]
		if !ok {
			p, err = process.NewProcess(pid)
			if err != nil {
				// Vanished between enumeration and query
				continue
			}
			c.procs[pid] = p
		}
		seen[pid] = true

		// Percent(0) reports usage since the previous call on this handle,
		// which is the previous refresh; first call on a new handle reads 0.
		cpuPct, err := p.Percent(0)
		if err != nil {
			delete(c.procs, pid)
			continue
		}
		name, err := p.Name()
		if err != nil {
			delete(c.procs, pid)
			continue
		}

		var rss uint64
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			rss = mi.RSS
		}

		procs = append(procs, ProcessMetrics{
			PID:         pid,
			Name:        name,
			CPUPercent:  cpuPct,
			MemoryBytes: rss,
		})
	}

	// Drop cached handles for processes that exited
	for pid := range c.procs {
		if !seen[pid] {
			delete(c.procs, pid)
		}
	}

	return procs, nil
}
