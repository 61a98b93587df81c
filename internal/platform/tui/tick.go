// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, tick scheduling and
// the SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the schedule that produced it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// ticker is a cancellable repeating tick schedule.
// At most one live schedule exists: Start and Stop both bump the generation,
// so ticks already in flight from an older schedule are recognized as stale
// and dropped.
type ticker struct {
	gen      uint64
	interval time.Duration
	running  bool
}

// Start cancels any current schedule and begins a new one at interval.
func (t *ticker) Start(interval time.Duration) tea.Cmd {
	t.arm(interval)
	return t.next()
}

// arm makes a new schedule live without sending its first tick; Continue
// sends it later.
func (t *ticker) arm(interval time.Duration) {
	t.gen++
	t.interval = interval
	t.running = true
}

// Stop cancels the current schedule.
func (t *ticker) Stop() {
	t.gen++
	t.running = false
}

// Running reports whether a schedule is active.
func (t *ticker) Running() bool {
	return t.running
}

// Interval returns the period of the current schedule.
func (t *ticker) Interval() time.Duration {
	return t.interval
}

// Accept reports whether msg belongs to the live schedule.
func (t *ticker) Accept(msg TickMsg) bool {
	return t.running && msg.Gen == t.gen
}

// Continue schedules the following tick of the live schedule.
func (t *ticker) Continue() tea.Cmd {
	if !t.running {
		return nil
	}
	return t.next()
}

func (t *ticker) next() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(ts time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: ts}
	})
}
