package monitor

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/sysmon/internal/logger"
)

// DefaultRefreshInterval is the pause between metric refreshes. Quit keys are
// noticed between ticks, so responsiveness is not bound to this interval.
const DefaultRefreshInterval = 200 * time.Millisecond

// Warm-up schedule applied before the dashboard starts, so the first frame
// shows settled CPU deltas instead of zeroes.
const (
	WarmupTicks = 3
	WarmupDelay = 500 * time.Millisecond
)

// Sampler takes metric samples for the dashboard. *Collector is the
// production implementation.
type Sampler interface {
	Refresh() (*Snapshot, error)
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	sampler  Sampler
	snapshot *Snapshot
	interval time.Duration
	ticks    uint64 // diagnostic only; no behavior depends on it
	width    int
	height   int
	selected int // process-table cursor; nothing moves it
	quitting bool
	err      error
	rng      *rand.Rand
	log      logger.Logger
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// NewModel creates a dashboard model around a primed sampler. snapshot is the
// last warm-up sample, so the first frame renders real data.
func NewModel(sampler Sampler, snapshot *Snapshot, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return Model{
		sampler:  sampler,
		snapshot: snapshot,
		interval: interval,
		selected: -1,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      logger.Default(),
	}
}

// Init starts the refresh timer.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		snap, err := m.sampler.Refresh()
		if err != nil {
			// Unrecoverable; surface it after the program exits
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.snapshot = snap
		m.ticks++
		m.log.Debug("tick %d: %d cores, %d processes", m.ticks, len(snap.Cores), len(snap.Processes))
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Ticks returns how many refreshes have completed since the program started.
func (m Model) Ticks() uint64 {
	return m.ticks
}

// Snapshot returns the most recent metrics sample.
func (m Model) Snapshot() *Snapshot {
	return m.snapshot
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
