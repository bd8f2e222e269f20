package game

import (
	"fmt"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// HUD layout and messages.
const (
	hudX            = 10
	hudY            = 10
	hudFontSize     = 20
	overlayFontSize = 40
	overlayMinSize  = 10
	overlayMargin   = 20 // Horizontal space kept free on each side

	GameOverText = "Game Over! Press R to restart"
	PausedText   = "Paused"
)

// Render draws the current frame. It runs in every state.
func (c *Controller) Render(dst core.Canvas) error {
	if dst == nil {
		return ErrNilCanvas
	}

	dst.Clear(core.ColorBlack)

	for _, seg := range c.snake.body {
		dst.FillRect(core.CellRect(seg, core.CellSize), core.ColorGreen)
	}
	dst.FillRect(core.CellRect(c.apple.Position(), core.CellSize), core.ColorRed)

	dst.DrawText(fmt.Sprintf("Score: %d", c.score), hudX, hudY, hudFontSize, core.ColorWhite)

	switch c.state {
	case StateGameOver:
		drawOverlay(dst, GameOverText, core.ColorRed)
	case StatePaused:
		drawOverlay(dst, PausedText, core.ColorWhite)
	}
	return nil
}

// drawOverlay centers text, shrinking the font until it fits the canvas width.
func drawOverlay(dst core.Canvas, text string, c core.Color) {
	w, _ := dst.Size()
	size := overlayFontSize
	for size > overlayMinSize && dst.MeasureText(text, size) > w-2*overlayMargin {
		size -= 2
	}
	core.DrawTextCentered(dst, text, size, c)
}
