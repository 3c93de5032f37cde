package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The playfield dimensions are a fixed contract; the seed enables
// deterministic simulation in tests.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in characters
	ScreenH  int   // Playfield height in characters
	TickRate int   // Render ticks per second (simulation steps are gated separately)
	Seed     int64 // RNG seed, 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with the game's fixed playfield.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  50,
		TickRate: 60,
		Seed:     0,
	}
}
