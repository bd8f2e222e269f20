// Package core provides fundamental types and utilities shared by the game and
// its frontends. It contains no external dependencies (no raylib, no Bubble Tea)
// to keep game logic pure and testable.
package core

// Grid and play-field dimensions, in pixel units.
const (
	CellSize  = 20  // Edge length of one grid cell
	FieldSize = 600 // Edge length of the square play field
)

// PlayField is the fixed logical area the snake lives in.
var PlayField = NewRect(0, 0, FieldSize, FieldSize)

// StartPosition is where a fresh snake's single segment is placed.
var StartPosition = Position{X: 300, Y: 300}

// Position is a pixel coordinate aligned to the cell grid.
type Position struct {
	X, Y int
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Aligned reports whether p sits on a cell boundary of the given size.
func (p Position) Aligned(cell int) bool {
	return p.X%cell == 0 && p.Y%cell == 0
}

// Direction represents a heading on the grid.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit vector for d scaled by the cell size.
func (d Direction) Vector(cell int) Position {
	switch d {
	case DirUp:
		return Position{X: 0, Y: -cell}
	case DirDown:
		return Position{X: 0, Y: cell}
	case DirLeft:
		return Position{X: -cell, Y: 0}
	default:
		return Position{X: cell, Y: 0}
	}
}

// Opposite returns the exact reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rect represents an axis-aligned box in pixel units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CellRect returns the rectangle covered by the grid cell at p.
func CellRect(p Position, cell int) Rect {
	return NewRect(p.X, p.Y, cell, cell)
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
