package game

// Mode is the game's top-level state. Exactly one mode is active at a time
// and transitions happen only inside State's tick handlers.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeEnd:
		return "End"
	default:
		return "Unknown"
	}
}
