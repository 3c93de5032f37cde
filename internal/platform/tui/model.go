package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/game"
)

// Model is the Bubble Tea model hosting the game. It owns the tick loop,
// buffers key input into frames, and renders the game's screen buffer.
type Model struct {
	game       *game.State
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	styles     StyleTable
	showHelp   bool
	runtime    core.RuntimeConfig
	inputFrame core.InputFrame
	lastTick   time.Time
	termW      int
	termH      int
	quitting   bool
}

// NewModel creates the host model for a fresh game.
func NewModel(runtime core.RuntimeConfig, host config.Host) Model {
	// Use a time-based seed unless one was injected
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game.New(runtime),
		screen:     core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     NewStyleTable(host.Theme),
		showHelp:   host.ShowHelp,
		runtime:    runtime,
		inputFrame: core.NewInputFrame(),
		termW:      runtime.ScreenW,
		termH:      runtime.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is a fixed 80x50 contract; resizing only
		// recenters it within the terminal.
		m.termW = msg.Width
		m.termH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey buffers recognized keys into the frame consumed by the next
// tick. Ctrl+C is a host-level escape hatch that bypasses the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if action := m.keys.MapKey(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one host frame: feed elapsed time and buffered input to
// the game, then schedule the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(m.runtime.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.game.Tick(float64(elapsed.Microseconds())/1000.0, m.inputFrame)
	m.inputFrame.Clear()

	if m.game.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen, m.styles)

	if m.showHelp {
		view += "\n" + m.help.View(m.keys)
	}

	// Center the fixed playfield when the terminal is larger than it
	if m.termW > m.runtime.ScreenW || m.termH > m.runtime.ScreenH {
		return lipgloss.Place(m.termW, m.termH, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Run starts the Bubble Tea program hosting the game.
func Run(runtime core.RuntimeConfig, host config.Host) error {
	model := NewModel(runtime, host)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
