// Package window plays the game in a native raylib window.
package window

import (
	"context"
	"errors"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/engine"
	"github.com/vovakirdan/pixel-snake/internal/registry"
)

// Window placement and title.
const (
	Title = "Snake"
	PosX  = 30
	PosY  = 30
)

// ID is the command-line name of the window frontend.
const ID = "window"

// ErrWindowUnavailable is returned when raylib could not open a window.
var ErrWindowUnavailable = errors.New("window: could not open window")

func init() {
	// raylib must be driven from the main OS thread.
	runtime.LockOSThread()

	registry.Register(ID, func() registry.Frontend { return frontend{} })
}

// Window is an engine.Platform backed by a raylib window.
type Window struct {
	canvas canvas
	input  core.InputFrame
	closed bool
}

// Open creates the window at the configured size and frame rate.
func Open(app *engine.App) (*Window, error) {
	cfg := app.Config.MainWindow

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), Title)
	if !rl.IsWindowReady() {
		return nil, ErrWindowUnavailable
	}
	rl.SetWindowPosition(PosX, PosY)
	rl.SetTargetFPS(int32(cfg.FPS))
	// Only the close button quits.
	rl.SetExitKey(rl.KeyNull)

	app.Logger.Debug("window opened", "width", cfg.Width, "height", cfg.Height, "fps", cfg.FPS)
	return &Window{}, nil
}

// Poll drains the key queue in press order.
func (w *Window) Poll() (core.InputFrame, bool) {
	if rl.WindowShouldClose() {
		return core.InputFrame{}, true
	}

	w.input.Clear()
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		w.input.Set(MapKey(k))
	}
	return w.input, false
}

// BeginFrame starts drawing and returns the window canvas.
func (w *Window) BeginFrame() core.Canvas {
	rl.BeginDrawing()
	return w.canvas
}

// EndFrame swaps buffers and waits out the rest of the frame.
func (w *Window) EndFrame() {
	rl.EndDrawing()
}

// Close destroys the window. Calling it twice is safe.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	rl.CloseWindow()
	return nil
}

// MapKey translates a raylib key code to a game action.
func MapKey(k int32) core.Action {
	switch k {
	case rl.KeyUp:
		return core.ActionUp
	case rl.KeyDown:
		return core.ActionDown
	case rl.KeyLeft:
		return core.ActionLeft
	case rl.KeyRight:
		return core.ActionRight
	case rl.KeyP:
		return core.ActionPause
	case rl.KeyR:
		return core.ActionRestart
	}
	return core.ActionNone
}

type frontend struct{}

func (frontend) ID() string { return ID }
func (frontend) Title() string { return "Window (raylib)" }

func (frontend) Run(ctx context.Context, app *engine.App) error {
	w, err := Open(app)
	if err != nil {
		return err
	}
	return engine.Run(ctx, app, w, app.NewController())
}
