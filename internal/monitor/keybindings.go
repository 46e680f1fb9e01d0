package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit      = "q"
	KeyQuitUpper = "Q"
	KeyQuitEsc   = "esc"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise. Every key other than
// the quit keys is deliberately ignored.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitUpper, KeyQuitEsc:
		m.quitting = true
		return true, tea.Quit
	}

	return false, nil
}
