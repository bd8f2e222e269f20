// Package engine ties the game controller to a frontend: it carries the
// application context and runs the input → update → render frame loop.
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/game"
)

// App is the application context handed to every frontend.
type App struct {
	Config config.Config
	Logger *log.Logger
	Seed   int64
}

// NewApp builds the application context. A zero seed is replaced with a
// time-based one; a nil logger discards output.
func NewApp(cfg config.Config, logger *log.Logger, seed int64) *App {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{
		Config: cfg,
		Logger: logger,
		Seed:   seed,
	}
}

// FrameInterval is the time one frame should take at the configured rate.
func (a *App) FrameInterval() time.Duration {
	fps := a.Config.MainWindow.FPS
	if fps <= 0 {
		fps = core.DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// NewController starts a new game controller with this context's settings.
func (a *App) NewController() *game.Controller {
	return game.NewController(a.Seed, a.Logger.WithPrefix("game"))
}
