package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/game"
)

// ErrLoopPanic is returned by Run when a frame panicked.
var ErrLoopPanic = errors.New("engine: frame loop panicked")

// Platform is a frontend that can be driven by Run: it polls input once per
// frame, hands out a canvas, presents it and paces the loop.
type Platform interface {
	// Poll drains pending input without blocking. quit is set when the
	// user asked to leave (window closed).
	Poll() (in core.InputFrame, quit bool)

	// BeginFrame returns the canvas for the next frame.
	BeginFrame() core.Canvas

	// EndFrame presents the frame and blocks until the frame interval has elapsed.
	EndFrame()

	// Close releases the platform's resources.
	Close() error
}

// FrameStatus tells whether a frame was completed or dropped.
type FrameStatus int

const (
	FrameOK FrameStatus = iota
	FrameDropped
)

func (s FrameStatus) String() string {
	if s == FrameDropped {
		return "dropped"
	}
	return "ok"
}

// Frame runs one update and one render. Failures are logged and reported as
// a dropped frame; the caller carries on with the next frame.
func Frame(ctrl *game.Controller, in core.InputFrame, dst core.Canvas, logger *log.Logger) (core.StepResult, FrameStatus) {
	status := FrameOK

	result, err := ctrl.Update(in)
	if err != nil {
		logger.Error("update failed, frame dropped", "err", err)
		status = FrameDropped
	}

	if err := ctrl.Render(dst); err != nil {
		logger.Error("render failed, frame dropped", "err", err)
		status = FrameDropped
	}

	return result, status
}

// Run drives ctrl on p until the user quits or ctx is cancelled.
// The platform is always closed on return, including after a panic, which is
// reported as ErrLoopPanic.
func Run(ctx context.Context, app *App, p Platform, ctrl *game.Controller) (err error) {
	logger := app.Logger
	var frames, dropped uint64

	defer func() {
		if r := recover(); r != nil {
			logger.Error("frame loop crashed", "panic", r, "frames", frames)
			err = fmt.Errorf("%w: %v", ErrLoopPanic, r)
		}
		if closeErr := p.Close(); closeErr != nil {
			logger.Error("platform teardown failed", "err", closeErr)
			err = errors.Join(err, closeErr)
		}
		logger.Info("loop stopped", "frames", frames, "dropped", dropped, "score", ctrl.Score())
	}()

	logger.Info("loop started", "fps", app.Config.MainWindow.FPS, "seed", app.Seed)

	for {
		if ctx.Err() != nil {
			logger.Debug("context done", "err", ctx.Err())
			return nil
		}

		in, quit := p.Poll()
		if quit {
			return nil
		}

		_, status := Frame(ctrl, in, p.BeginFrame(), logger)
		p.EndFrame()

		frames++
		if status == FrameDropped {
			dropped++
		}
	}
}
