// Package tui provides the Bubble Tea integration for the hanoi game.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the model that scheduled it, so a tick still in flight
// from a finished game is not picked up by the next one.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh tick loop ID.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
