package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
)

// dashboardCommand starts the live TUI dashboard.
func dashboardCommand() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"Standard output is not a terminal",
			"Run sysmon from an interactive terminal session.")
	}

	collector, err := monitor.NewCollector(logger.Default())
	if err != nil {
		return err
	}

	// Warm up so the first frame shows settled CPU deltas
	snap, err := collector.Prime(monitor.WarmupTicks, monitor.WarmupDelay)
	if err != nil {
		return err
	}

	model := monitor.NewModel(collector, snap, monitor.DefaultRefreshInterval)

	// The program owns the terminal: alternate screen and raw mode are
	// entered here and restored on every exit path, including panics.
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Dashboard terminated unexpectedly", "")
	}

	// A refresh failure mid-session quits the program cleanly and surfaces here
	if m, ok := final.(monitor.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
