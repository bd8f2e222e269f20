package core

// Terminal cells are roughly twice as tall as they are wide, so one grid
// cell maps to two columns and one row.
const (
	colsPerCell = 2
	rowsPerCell = 1
)

// ScreenCanvas adapts a Screen to the Canvas interface, mapping pixel units
// onto character cells at one grid cell per two columns.
type ScreenCanvas struct {
	screen *Screen
	unit   int // Pixels per grid cell
}

// Canvas returns a Canvas drawing into s with the standard cell size.
func (s *Screen) Canvas() *ScreenCanvas {
	return &ScreenCanvas{screen: s, unit: CellSize}
}

// Size reports the screen size converted back to pixel units.
func (c *ScreenCanvas) Size() (int, int) {
	return c.screen.Width() * c.unit / colsPerCell, c.screen.Height() * c.unit / rowsPerCell
}

// Clear paints every cell with a blank of the given color.
func (c *ScreenCanvas) Clear(col Color) {
	c.screen.Fill(Cell{Rune: ' ', Color: col})
}

// FillRect paints the cells covered by r with solid blocks.
func (c *ScreenCanvas) FillRect(r Rect, col Color) {
	x0, y0 := c.toCell(r.X, r.Y)
	x1, y1 := c.toCell(r.Right(), r.Bottom())
	c.screen.DrawRect(NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1)), '█', col)
}

// DrawText writes text starting at the cell containing (x, y). The size is
// ignored; terminals have one font size.
func (c *ScreenCanvas) DrawText(text string, x, y, _ int, col Color) {
	cx, cy := c.toCell(x, y)
	c.screen.DrawText(cx, cy, text, col)
}

// MeasureText returns the pixel width of text at one column per character.
func (c *ScreenCanvas) MeasureText(text string, _ int) int {
	return len([]rune(text)) * c.unit / colsPerCell
}

func (c *ScreenCanvas) toCell(x, y int) (int, int) {
	return floorDiv(x*colsPerCell, c.unit), floorDiv(y*rowsPerCell, c.unit)
}

// floorDiv divides rounding toward negative infinity so off-field pixels
// stay off-screen.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
