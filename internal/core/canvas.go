package core

// Canvas is the drawing surface a frame is rendered into. Coordinates and
// sizes are in pixel units; each frontend decides how a pixel maps to its
// output (a raylib window, a terminal cell grid).
type Canvas interface {
	// Size returns the drawable area.
	Size() (w, h int)

	// Clear fills the whole canvas with a color.
	Clear(c Color)

	// FillRect draws a solid rectangle.
	FillRect(r Rect, c Color)

	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, x, y, size int, c Color)

	// MeasureText returns the width text would occupy at the given size.
	MeasureText(text string, size int) int
}

// DrawTextCentered draws text centered on the canvas.
func DrawTextCentered(dst Canvas, text string, size int, c Color) {
	w, h := dst.Size()
	x := (w - dst.MeasureText(text, size)) / 2
	y := (h - size) / 2
	dst.DrawText(text, x, y, size, c)
}
