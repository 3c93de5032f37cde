// Package config provides YAML-based host configuration loading.
// Only host concerns live here: render tick rate, the terminal color
// theme and UI toggles. Gameplay constants are fixed in the game package
// and are intentionally not configurable.
package config

// Host contains all host-side configuration.
type Host struct {
	// TickRate is the render loop frequency in frames per second.
	// The simulation keeps its own fixed physics step regardless.
	TickRate int `yaml:"tick_rate"`

	// ShowHelp toggles the key-binding footer under the playfield.
	ShowHelp bool `yaml:"show_help"`

	// Theme remaps palette color names to ANSI 256-color codes,
	// e.g. {red: "196", white: "15"}. Unlisted colors keep their defaults.
	Theme map[string]string `yaml:"theme"`
}

// Default returns the hardcoded fallback configuration, used when even the
// embedded default YAML cannot be parsed.
func Default() Host {
	return Host{
		TickRate: 60,
		ShowHelp: true,
		Theme:    map[string]string{},
	}
}
