package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// KeyMap holds the key bindings recognized by the game. Bindings double as
// the source for the help footer.
type KeyMap struct {
	Flap  key.Binding
	Start key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the game's fixed key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "start/restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Start, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Flap, k.Start, k.Quit}}
}

// MapKey translates a key message to a game action. Keys outside the
// recognized set map to ActionNone and are ignored by the game.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}
