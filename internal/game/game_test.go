package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  ScreenWidth,
		ScreenH:  ScreenHeight,
		TickRate: 60,
		Seed:     seed,
	}
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestObstacleGapSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Linear region: gap shrinks by exactly one per point
	for score := 0; score < 18; score++ {
		o := NewObstacle(ScreenWidth, score, rng)
		if o.Size != BaseGapSize-score {
			t.Errorf("score %d: gap size = %d, expected %d", score, o.Size, BaseGapSize-score)
		}
	}

	// Floor: gap never shrinks below 2
	for _, score := range []int{18, 19, 20, 50, 1000} {
		o := NewObstacle(ScreenWidth, score, rng)
		if o.Size != MinGapSize {
			t.Errorf("score %d: gap size = %d, expected floor %d", score, o.Size, MinGapSize)
		}
	}
}

func TestObstacleGapCenterRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		o := NewObstacle(ScreenWidth, 0, rng)
		if o.GapY < GapCenterMin || o.GapY >= GapCenterMax {
			t.Fatalf("gap center %d outside [%d, %d)", o.GapY, GapCenterMin, GapCenterMax)
		}
	}
}

func TestPlayerNeverAboveScreen(t *testing.T) {
	// Even starting with a strong upward velocity, Y clamps at 0
	p := NewPlayer(PlayerStartX, 1)
	p.Velocity = -10.0

	for i := 0; i < 100; i++ {
		p.Advance()
		if p.Y < 0 {
			t.Fatalf("player Y went negative (%f) after %d steps", p.Y, i+1)
		}
	}
}

func TestPlayerFlapOverridesVelocity(t *testing.T) {
	tests := []struct {
		name string
		vel  float64
	}{
		{"falling fast", 2.0},
		{"falling slow", 0.3},
		{"stationary", 0.0},
		{"already rising", -2.0},
		{"rising faster than impulse", -5.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(PlayerStartX, PlayerStartY)
			p.Velocity = tc.vel
			p.Flap()
			if p.Velocity != FlapImpulse {
				t.Errorf("Flap() velocity = %f, expected exactly %f", p.Velocity, FlapImpulse)
			}
		})
	}
}

func TestPlayerGravityCap(t *testing.T) {
	p := NewPlayer(PlayerStartX, 0)

	// Velocity increases by 0.2 per step until the cap
	for i := 1; i <= 10; i++ {
		p.Advance()
		expected := Gravity * float64(i)
		if p.Velocity > TerminalVelocity {
			t.Fatalf("velocity %f exceeded terminal velocity after %d steps", p.Velocity, i)
		}
		if i <= 9 && !almostEqual(p.Velocity, expected) {
			t.Errorf("step %d: velocity = %f, expected %f", i, p.Velocity, expected)
		}
	}

	// Under gravity alone the velocity stays bounded
	for i := 0; i < 100; i++ {
		p.Advance()
		if p.Velocity > TerminalVelocity+Gravity+1e-9 {
			t.Fatalf("velocity %f ran away past the cap", p.Velocity)
		}
	}
}

func TestPlayerAdvanceMovesForward(t *testing.T) {
	p := NewPlayer(PlayerStartX, PlayerStartY)

	for i := 1; i <= 20; i++ {
		p.Advance()
		if p.X != PlayerStartX+i {
			t.Fatalf("after %d steps X = %d, expected %d", i, p.X, PlayerStartX+i)
		}
	}
}

func TestPlayerFrameCycles(t *testing.T) {
	p := NewPlayer(PlayerStartX, PlayerStartY)

	for i := 0; i < 3*len(dragonFrames); i++ {
		p.Advance()
		if p.Frame < 0 || p.Frame >= len(dragonFrames) {
			t.Fatalf("frame index %d out of bounds after %d steps", p.Frame, i+1)
		}
	}
}

func TestObstacleCollision(t *testing.T) {
	// Obstacle at x=10 with gap window [20, 30]
	obstacle := Obstacle{X: 10, GapY: 25, Size: 10}

	tests := []struct {
		name     string
		playerX  int
		playerY  float64
		expected bool
	}{
		{"above gap at obstacle column", 10, 5, true},
		{"below gap at obstacle column", 10, 40, true},
		{"inside gap at obstacle column", 10, 25, false},
		{"at gap top edge", 10, 20, false},
		{"at gap bottom edge", 10, 30, false},
		{"just above gap", 10, 19, true},
		{"just below gap", 10, 31, true},
		{"outside gap but wrong column", 9, 5, false},
		{"outside gap one column past", 11, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{X: tc.playerX, Y: tc.playerY}
			if got := obstacle.Hits(p); got != tc.expected {
				t.Errorf("Hits(x=%d, y=%f) = %v, expected %v", tc.playerX, tc.playerY, got, tc.expected)
			}
		})
	}
}

func TestMenuStartTransition(t *testing.T) {
	s := New(testConfig(42))

	if s.Mode() != ModeMenu {
		t.Fatalf("new game mode = %v, expected Menu", s.Mode())
	}

	s.Tick(16.0, frameWith(core.ActionStart))

	if s.Mode() != ModePlaying {
		t.Errorf("after start input mode = %v, expected Playing", s.Mode())
	}
	if s.Score() != 0 {
		t.Errorf("score after start = %d, expected 0", s.Score())
	}
	if s.player.X != PlayerStartX || s.player.Y != float64(PlayerStartY) || s.player.Velocity != 0 {
		t.Errorf("player not reset: got (%d, %f, %f), expected (%d, %d, 0)",
			s.player.X, s.player.Y, s.player.Velocity, PlayerStartX, PlayerStartY)
	}
	if s.obstacle.X != ScreenWidth {
		t.Errorf("obstacle at %d, expected %d", s.obstacle.X, ScreenWidth)
	}
}

func TestMenuQuit(t *testing.T) {
	s := New(testConfig(42))

	s.Tick(16.0, frameWith(core.ActionQuit))

	if !s.Quitting() {
		t.Error("quit input in menu should set the quitting flag")
	}
}

func TestMenuIgnoresFlap(t *testing.T) {
	s := New(testConfig(42))

	s.Tick(16.0, frameWith(core.ActionFlap))

	if s.Mode() != ModeMenu {
		t.Errorf("flap in menu changed mode to %v", s.Mode())
	}
	if s.Quitting() {
		t.Error("flap in menu should not quit")
	}
}

func TestPlayingIgnoresQuitAndStart(t *testing.T) {
	s := New(testConfig(42))
	s.Tick(16.0, frameWith(core.ActionStart))

	s.Tick(16.0, frameWith(core.ActionQuit))
	if s.Quitting() {
		t.Error("quit input during play should be ignored")
	}

	scoreBefore := s.Score()
	s.Tick(16.0, frameWith(core.ActionStart))
	if s.Mode() != ModePlaying || s.Score() != scoreBefore {
		t.Error("start input during play should be a no-op")
	}
}

func TestPhysicsStepGating(t *testing.T) {
	s := New(testConfig(42))
	s.Tick(16.0, frameWith(core.ActionStart))

	// Small elapsed times accumulate without advancing physics
	for i := 0; i < 4; i++ {
		s.Tick(16.0, core.NewInputFrame()) // 64ms total, under the 75ms step
	}
	if s.player.X != PlayerStartX {
		t.Fatalf("player advanced after only 64ms accumulated, X = %d", s.player.X)
	}

	// Crossing the threshold advances exactly one step and resets the accumulator
	s.Tick(16.0, core.NewInputFrame())
	if s.player.X != PlayerStartX+1 {
		t.Errorf("player X = %d after crossing step threshold, expected %d", s.player.X, PlayerStartX+1)
	}
	if s.frameTime != 0 {
		t.Errorf("accumulator = %f after physics step, expected 0", s.frameTime)
	}
}

func TestFlapIndependentOfPhysicsStep(t *testing.T) {
	s := New(testConfig(42))
	s.Tick(16.0, frameWith(core.ActionStart))

	// Flap on a tick that does not cross the physics threshold
	s.Tick(1.0, frameWith(core.ActionFlap))

	if s.player.Velocity != FlapImpulse {
		t.Errorf("flap between physics steps should apply immediately, velocity = %f", s.player.Velocity)
	}
}

func TestFallOffScreenEndsGame(t *testing.T) {
	s := New(testConfig(42))
	s.Tick(16.0, frameWith(core.ActionStart))

	s.player.Y = 51 // Below the 50-row screen

	s.Tick(1.0, core.NewInputFrame())

	if s.Mode() != ModeEnd {
		t.Errorf("mode = %v after falling off screen, expected End", s.Mode())
	}
}

func TestCollisionEndsGame(t *testing.T) {
	s := New(testConfig(42))
	s.Tick(16.0, frameWith(core.ActionStart))

	// Park the player in the obstacle's column, outside the gap
	s.obstacle = Obstacle{X: s.player.X, GapY: 25, Size: 10}
	s.player.Y = 5

	s.Tick(1.0, core.NewInputFrame())

	if s.Mode() != ModeEnd {
		t.Errorf("mode = %v after collision, expected End", s.Mode())
	}
}

func TestScoreAndObstacleReplacement(t *testing.T) {
	s := New(testConfig(42))
	s.Tick(16.0, frameWith(core.ActionStart))

	s.player.X = 100
	s.player.Y = 25
	s.obstacle = Obstacle{X: 99, GapY: 25, Size: 20}

	s.Tick(1.0, core.NewInputFrame())

	if s.Score() != 1 {
		t.Errorf("score = %d after passing obstacle, expected 1", s.Score())
	}
	if s.obstacle.X != 100+ScreenWidth {
		t.Errorf("new obstacle at %d, expected %d", s.obstacle.X, 100+ScreenWidth)
	}
	if s.obstacle.Size != BaseGapSize-1 {
		t.Errorf("new obstacle sized %d, expected %d (uses incremented score)", s.obstacle.Size, BaseGapSize-1)
	}
}

func TestEndRestartTransition(t *testing.T) {
	s := New(testConfig(42))
	s.Tick(16.0, frameWith(core.ActionStart))
	s.player.Y = 51
	s.Tick(1.0, core.NewInputFrame())
	if s.Mode() != ModeEnd {
		t.Fatalf("setup failed, mode = %v", s.Mode())
	}

	s.Tick(16.0, frameWith(core.ActionStart))

	if s.Mode() != ModePlaying {
		t.Errorf("restart from End gave mode %v, expected Playing", s.Mode())
	}
	if s.Score() != 0 {
		t.Errorf("score = %d after restart, expected 0", s.Score())
	}
	if s.player.X != PlayerStartX || s.player.Y != float64(PlayerStartY) {
		t.Errorf("player not reset after restart: (%d, %f)", s.player.X, s.player.Y)
	}
}

func TestEndQuit(t *testing.T) {
	s := New(testConfig(42))
	s.Tick(16.0, frameWith(core.ActionStart))
	s.player.Y = 51
	s.Tick(1.0, core.NewInputFrame())

	s.Tick(16.0, frameWith(core.ActionQuit))

	if !s.Quitting() {
		t.Error("quit input on the game over screen should set the quitting flag")
	}
}

func TestDeterminism(t *testing.T) {
	// Same seed and same inputs must produce identical runs
	run := func() (int, Mode, Obstacle) {
		s := New(testConfig(12345))
		s.Tick(16.0, frameWith(core.ActionStart))
		for i := 0; i < 2000; i++ {
			in := core.NewInputFrame()
			if i%20 == 0 {
				in.Set(core.ActionFlap)
			}
			s.Tick(16.0, in)
			if s.Mode() == ModeEnd {
				break
			}
		}
		return s.Score(), s.Mode(), s.obstacle
	}

	score1, mode1, obs1 := run()
	score2, mode2, obs2 := run()

	if score1 != score2 || mode1 != mode2 || obs1 != obs2 {
		t.Errorf("runs diverged: (%d, %v, %+v) vs (%d, %v, %+v)",
			score1, mode1, obs1, score2, mode2, obs2)
	}
}

func TestRenderMenu(t *testing.T) {
	s := New(testConfig(1))
	screen := core.NewScreen(ScreenWidth, ScreenHeight)

	s.Render(screen)

	if !strings.Contains(screen.Row(5), "Welcome to Flappy Dragon") {
		t.Errorf("menu title missing, row 5 = %q", screen.Row(5))
	}
	if !strings.Contains(screen.Row(7), "Press (P) to start") {
		t.Errorf("start hint missing, row 7 = %q", screen.Row(7))
	}
	if !strings.Contains(screen.Row(9), "Press (Q) to quit") {
		t.Errorf("quit hint missing, row 9 = %q", screen.Row(9))
	}
}

func TestRenderPlaying(t *testing.T) {
	s := New(testConfig(1))
	s.Tick(16.0, frameWith(core.ActionStart))
	screen := core.NewScreen(ScreenWidth, ScreenHeight)

	s.Render(screen)

	if !strings.Contains(screen.Row(0), "Press space to flap") {
		t.Errorf("flap hint missing, row 0 = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "Score: 0") {
		t.Errorf("score missing, row 1 = %q", screen.Row(1))
	}

	// Player sprite sits in the leftmost column at its vertical position
	cell := screen.GetCell(0, PlayerStartY)
	if cell.Rune == ' ' {
		t.Error("player sprite not drawn at column 0")
	}

	// Obstacle bars are drawn at its screen-relative column
	screenX := s.obstacle.X - s.player.X
	found := false
	for y := 0; y < ScreenHeight; y++ {
		if screen.Get(screenX, y) == '|' {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("no obstacle bars drawn at screen column %d", screenX)
	}
}

func TestRenderEnd(t *testing.T) {
	s := New(testConfig(1))
	s.Tick(16.0, frameWith(core.ActionStart))
	s.player.Y = 51
	s.Tick(1.0, core.NewInputFrame())
	screen := core.NewScreen(ScreenWidth, ScreenHeight)

	s.Render(screen)

	if !strings.Contains(screen.Row(5), "You Died!") {
		t.Errorf("game over text missing, row 5 = %q", screen.Row(5))
	}
	if !strings.Contains(screen.Row(6), "Score:") {
		t.Errorf("final score missing, row 6 = %q", screen.Row(6))
	}
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
