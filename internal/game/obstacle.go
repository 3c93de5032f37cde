package game

import (
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Obstacle is a single vertical wall with a gap the dragon must pass
// through. Exactly one obstacle is live at a time; State replaces it by
// value whenever the player passes it.
type Obstacle struct {
	X    int // Horizontal world position of the obstacle column
	GapY int // Vertical center of the gap
	Size int // Total gap height, shrinks as the score grows
}

// NewObstacle creates an obstacle at the given world position. The gap
// center is drawn from the supplied RNG; the gap size follows the one
// difficulty rule the game has: max(2, 20-score).
func NewObstacle(x, score int, rng *rand.Rand) Obstacle {
	return Obstacle{
		X:    x,
		GapY: GapCenterMin + rng.Intn(GapCenterMax-GapCenterMin),
		Size: core.Max(MinGapSize, BaseGapSize-score),
	}
}

// Hits reports whether the player collides with this obstacle.
//
// The check is a discrete single-sample comparison: it fires only on the
// exact physics step where the player's column equals the obstacle's
// column, and the vertical test truncates the player's position to an
// integer. The integer-exact semantics are part of the game's observable
// behavior and must not be widened to an interval check.
func (o Obstacle) Hits(p Player) bool {
	half := o.Size / 2
	py := int(p.Y)
	return p.X == o.X && (py < o.GapY-half || py > o.GapY+half)
}

// Render draws the obstacle's two bar segments at its screen-relative
// column. The bottom segment extends one gap-size below the gap center.
func (o Obstacle) Render(dst *core.Screen, playerX int) {
	screenX := o.X - playerX
	half := o.Size / 2

	// Segment above the gap
	dst.DrawVLine(screenX, 0, o.GapY-half, '|', core.ColorRed)

	// Segment below the gap
	dst.DrawVLine(screenX, o.GapY+half, o.Size-half, '|', core.ColorRed)
}
