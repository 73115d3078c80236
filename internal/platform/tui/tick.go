// Package tui provides the Bubble Tea integration for the scroller.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one scheduler frame. ID names the model that
// armed it so a tick left over from a finished game is dropped.
type TickMsg struct {
	ID   string
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a single tick message
// after one frame interval. The model re-arms it while the scheduler is active.
func tickCmd(id string, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
