package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI 256-color codes; the game core
// only ever deals in palette slots.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// Name returns the palette name used in theme configuration files.
func (c Color) Name() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// Palette lists every color a theme may override.
func Palette() []Color {
	return []Color{
		ColorDefault,
		ColorRed,
		ColorGreen,
		ColorYellow,
		ColorMagenta,
		ColorCyan,
		ColorWhite,
		ColorGray,
	}
}
