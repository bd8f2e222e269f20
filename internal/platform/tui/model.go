package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/engine"
	"github.com/vovakirdan/pixel-snake/internal/game"
)

// ErrNotTerminal is returned when stdout is not an interactive terminal.
var ErrNotTerminal = errors.New("tui: stdout is not a terminal")

// Model is the Bubble Tea model running one game.
type Model struct {
	app      *engine.App
	ctrl     *game.Controller
	screen   *core.Screen
	canvas   *core.ScreenCanvas
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	dropped  uint64
	quitting bool
}

// NewModel creates a model for a fresh game. The screen is sized so that
// one grid cell takes two columns and one row.
func NewModel(app *engine.App) Model {
	w, h := ScreenSize(app)
	screen := core.NewScreen(w, h)

	return Model{
		app:    app,
		ctrl:   app.NewController(),
		screen: screen,
		canvas: screen.Canvas(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// ScreenSize returns the character grid needed for the configured window.
func ScreenSize(app *engine.App) (cols, rows int) {
	cfg := app.Config.MainWindow
	return cfg.Width * 2 / core.CellSize, cfg.Height / core.CellSize
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.app.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Set(action)
	return m, nil
}

// handleTick runs one engine frame with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if _, status := engine.Frame(m.ctrl, m.input, m.canvas, m.app.Logger); status == engine.FrameDropped {
		m.dropped++
	}
	m.input.Clear()

	return m, tickCmd(m.app.FrameInterval())
}

// Controller exposes the running game.
func (m Model) Controller() *game.Controller {
	return m.ctrl
}

// Screen exposes the character buffer the last frame was drawn into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run plays the game in the terminal until the user quits or ctx is cancelled.
func Run(ctx context.Context, app *engine.App) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	cols, rows := ScreenSize(app)
	if w, h, err := term.GetSize(fd); err == nil && (w < cols || h < rows+1) {
		app.Logger.Warn("terminal too small, field will be cut off",
			"have", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", cols, rows+1))
	}

	model := NewModel(app)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil && (!errors.Is(err, tea.ErrProgramKilled) || ctx.Err() == nil) {
		return fmt.Errorf("tui: %w", err)
	}

	if m, ok := final.(Model); ok {
		app.Logger.Info("game finished",
			"score", m.ctrl.Score(), "frames", m.ctrl.Frames(), "dropped", m.dropped)
	}
	return nil
}
