// Package game implements the Flappy Dragon simulation: a dragon falling
// under gravity that must flap through gaps in scrolling obstacles. The
// package is dependency-free and knows nothing about terminals or Bubble
// Tea; the platform layer feeds it elapsed time and input frames, and
// hands it a screen buffer to draw into.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Fixed gameplay constants. These form the game's external contract and
// are deliberately not configurable.
const (
	ScreenWidth  = 80
	ScreenHeight = 50

	// FrameDuration is the physics step length in milliseconds. Simulation
	// advances once per accumulated step regardless of render frame rate.
	FrameDuration = 75.0

	Gravity          = 0.2  // Velocity gained per physics step while falling
	TerminalVelocity = 2.0  // Gravity stops accelerating at this speed
	FlapImpulse      = -2.0 // Velocity assigned by a flap

	PlayerStartX = 5
	PlayerStartY = 25

	GapCenterMin = 10 // Gap center range is [GapCenterMin, GapCenterMax)
	GapCenterMax = 40
	BaseGapSize  = 20 // Gap size is max(MinGapSize, BaseGapSize-score)
	MinGapSize   = 2
)

// State is the game orchestrator. It owns the player, the single live
// obstacle, the score, the physics-step accumulator and the current mode,
// and dispatches per-tick behavior on the mode.
type State struct {
	player    Player
	obstacle  Obstacle
	frameTime float64 // Accumulated elapsed ms toward the next physics step
	score     int
	mode      Mode
	rng       *rand.Rand
	quitting  bool
}

// New creates a game in the menu. The seed makes obstacle placement
// deterministic, which the tests rely on; the platform passes a time-based
// seed for normal play.
func New(cfg core.RuntimeConfig) *State {
	s := &State{
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	s.player = NewPlayer(PlayerStartX, PlayerStartY)
	s.obstacle = NewObstacle(ScreenWidth, 0, s.rng)
	s.mode = ModeMenu
	return s
}

// Tick advances the game by one host frame. elapsedMS is the wall time
// since the previous tick; input holds every action triggered since then.
func (s *State) Tick(elapsedMS float64, in core.InputFrame) {
	switch s.mode {
	case ModeMenu:
		s.tickMenu(in)
	case ModePlaying:
		s.tickPlaying(elapsedMS, in)
	case ModeEnd:
		s.tickEnd(in)
	}
}

// tickMenu handles the main menu: start or quit.
func (s *State) tickMenu(in core.InputFrame) {
	if in.Has(core.ActionStart) {
		s.restart()
	}
	if in.Has(core.ActionQuit) {
		s.quitting = true
	}
}

// tickPlaying runs one frame of the live game.
func (s *State) tickPlaying(elapsedMS float64, in core.InputFrame) {
	// Physics runs on its own fixed step, decoupled from render rate.
	s.frameTime += elapsedMS
	if s.frameTime > FrameDuration {
		s.frameTime = 0
		s.player.Advance()
	}

	// Flapping is not gated on the physics step: any tick may flap.
	if in.Has(core.ActionFlap) {
		s.player.Flap()
	}

	// Passing the obstacle scores a point and spawns the next one a full
	// screen ahead, sized with the incremented score.
	if s.player.X > s.obstacle.X {
		s.score++
		s.obstacle = NewObstacle(s.player.X+ScreenWidth, s.score, s.rng)
	}

	if int(s.player.Y) > ScreenHeight || s.obstacle.Hits(s.player) {
		s.mode = ModeEnd
	}
}

// tickEnd handles the game over screen: restart or quit.
func (s *State) tickEnd(in core.InputFrame) {
	if in.Has(core.ActionStart) {
		s.restart()
	}
	if in.Has(core.ActionQuit) {
		s.quitting = true
	}
}

// restart reinitializes every entity and forces Playing mode. Used for
// both the initial start from the menu and restarts after game over.
func (s *State) restart() {
	s.player = NewPlayer(PlayerStartX, PlayerStartY)
	s.frameTime = 0
	s.obstacle = NewObstacle(ScreenWidth, 0, s.rng)
	s.mode = ModePlaying
	s.score = 0
}

// Render draws the screen for the current mode.
func (s *State) Render(dst *core.Screen) {
	dst.Clear()
	switch s.mode {
	case ModeMenu:
		s.renderMenu(dst)
	case ModePlaying:
		s.renderPlaying(dst)
	case ModeEnd:
		s.renderEnd(dst)
	}
}

func (s *State) renderMenu(dst *core.Screen) {
	dst.DrawTextCentered(5, "Welcome to Flappy Dragon", core.ColorGreen)
	dst.DrawTextCentered(7, "Press (P) to start", core.ColorMagenta)
	dst.DrawTextCentered(9, "Press (Q) to quit", core.ColorRed)
}

func (s *State) renderPlaying(dst *core.Screen) {
	s.player.Render(dst)
	dst.DrawText(0, 0, "Press space to flap", core.ColorWhite)
	dst.DrawText(0, 1, fmt.Sprintf("Score: %d", s.score), core.ColorWhite)
	s.obstacle.Render(dst, s.player.X)
}

func (s *State) renderEnd(dst *core.Screen) {
	dst.DrawTextCentered(5, "You Died!", core.ColorWhite)
	dst.DrawTextCentered(6, fmt.Sprintf("Score: %d", s.score), core.ColorWhite)
	dst.DrawTextCentered(7, "Press (P) to restart", core.ColorMagenta)
	dst.DrawTextCentered(9, "Press (Q) to quit", core.ColorRed)
}

// Mode returns the currently active mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// Quitting reports whether the game asked the host to terminate.
func (s *State) Quitting() bool {
	return s.quitting
}
