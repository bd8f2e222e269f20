package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

var palette = map[core.Color]rl.Color{
	core.ColorDefault: rl.RayWhite,
	core.ColorBlack:   {R: 0, G: 0, B: 0, A: 255},
	core.ColorGreen:   {R: 0, G: 255, B: 0, A: 255},
	core.ColorRed:     {R: 255, G: 0, B: 0, A: 255},
	core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
}

// RGBA returns the raylib color for a palette entry.
func RGBA(c core.Color) rl.Color {
	if col, ok := palette[c]; ok {
		return col
	}
	return palette[core.ColorDefault]
}

// canvas draws straight into the current raylib frame.
type canvas struct{}

func (canvas) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (canvas) Clear(c core.Color) {
	rl.ClearBackground(RGBA(c))
}

func (canvas) FillRect(r core.Rect, c core.Color) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), RGBA(c))
}

func (canvas) DrawText(text string, x, y, size int, c core.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), RGBA(c))
}

func (canvas) MeasureText(text string, size int) int {
	return int(rl.MeasureText(text, int32(size)))
}
