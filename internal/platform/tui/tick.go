// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping and rendering; all game
// rules live in the game package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a host frame. The game measures real elapsed
// time between these messages, so the simulation stays correct even when
// the terminal cannot keep up with the requested rate.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
