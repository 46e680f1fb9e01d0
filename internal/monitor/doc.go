// Package monitor implements a real-time TUI dashboard for local host metrics.
//
// The dashboard displays memory, disk, per-core CPU, and process statistics
// with color-coded severity and a decorative banner, redrawing on a fixed
// refresh interval until a quit key is pressed.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds application state (latest snapshot, dimensions, tick count)
//   - Update: Processes messages (keystrokes, tick events, window resizes)
//   - View: Renders the current state to a string for display
//
// # Key Components
//
//	Model       - The Bubble Tea model containing all dashboard state
//	Collector   - Samples CPU, memory, disk, and process metrics via gopsutil
//	Snapshot    - One full metrics sample plus the display transforms on it
//
// # Message Flow
//
// The dashboard operates on a tick-based refresh cycle:
//
//  1. tickMsg fires at the refresh interval (200ms)
//  2. the Collector takes a fresh Snapshot
//  3. View() re-renders the frame from the new Snapshot
//  4. a quit key (q, Q, or Esc) ends the program; other keys are ignored
//
// # Layout
//
// The frame is a fixed split: the top half is divided 50/50 into a left
// column (memory pane, disk pane, banner) and the CPU pane; the bottom half
// is the full-width process table showing the top 20 processes by raw CPU
// usage, with the displayed percentage capped at 100.
//
// # Warm-up
//
// Per-core CPU figures and per-process CPU figures are deltas between
// samples, so the collector is primed with three synchronous refreshes before
// the program starts; otherwise the first frame would show zeroes.
package monitor
