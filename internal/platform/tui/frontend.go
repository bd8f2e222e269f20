package tui

import (
	"context"

	"github.com/vovakirdan/pixel-snake/internal/engine"
	"github.com/vovakirdan/pixel-snake/internal/registry"
)

// ID is the command-line name of the terminal frontend.
const ID = "terminal"

func init() {
	registry.Register(ID, func() registry.Frontend { return frontend{} })
}

type frontend struct{}

func (frontend) ID() string { return ID }
func (frontend) Title() string { return "Terminal (Bubble Tea)" }

func (frontend) Run(ctx context.Context, app *engine.App) error {
	return Run(ctx, app)
}
