package game

import (
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// dragonFrames is the cyclic wing animation sequence. Cosmetic only: the
// frame index never affects physics or collision.
var dragonFrames = [...]rune{'◐', '◓', '◑', '◒', '◑', '◓'}

// Player is the dragon. X is total distance traveled in world columns;
// the sprite itself is always drawn in the leftmost screen column and the
// world scrolls past it.
type Player struct {
	X        int     // Horizontal world position, increases by 1 per physics step
	Y        float64 // Vertical position, 0 is the top of the screen
	Velocity float64 // Vertical velocity, negative is up
	Frame    int     // Index into dragonFrames
}

// NewPlayer creates a player at the given world position with zero velocity.
func NewPlayer(x, y int) Player {
	return Player{
		X: x,
		Y: float64(y),
	}
}

// Advance applies one physics step: gravity accelerates the fall up to
// terminal velocity, the player moves one column forward, and the vertical
// position is clamped so it never goes above the screen.
func (p *Player) Advance() {
	if p.Velocity < TerminalVelocity {
		p.Velocity += Gravity
	}
	p.Y += p.Velocity
	p.X++
	if p.Y < 0 {
		p.Y = 0
	}
	p.Frame = (p.Frame + 1) % len(dragonFrames)
}

// Flap sets the vertical velocity to the flap impulse. The assignment is
// an override, not an addition: flapping while already rising does not
// stack impulses.
func (p *Player) Flap() {
	p.Velocity = FlapImpulse
}

// Render draws the dragon sprite. The player occupies screen column 0; its
// world X only matters for scrolling obstacles.
func (p *Player) Render(dst *core.Screen) {
	dst.SetCell(0, int(p.Y), dragonFrames[p.Frame], core.ColorYellow)
}
