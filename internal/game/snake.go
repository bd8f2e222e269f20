package game

import "github.com/vovakirdan/pixel-snake/internal/core"

// Snake is an ordered list of grid-aligned segments, head first.
type Snake struct {
	body     []core.Position
	heading  core.Direction
	lastMove core.Direction // Heading used by the most recent Move
	cell     int
	field    core.Rect
}

// NewSnake creates a single-segment snake at start, heading right.
func NewSnake(start core.Position, cell int, field core.Rect) *Snake {
	body := make([]core.Position, 1, (field.W/cell)*(field.H/cell)+1)
	body[0] = start
	return &Snake{
		body:     body,
		heading:  core.DirRight,
		lastMove: core.DirRight,
		cell:     cell,
		field:    field,
	}
}

// Move advances the snake one cell along its heading, keeping its length.
// Bounds are not checked here; see CheckCollision.
func (s *Snake) Move() {
	if len(s.body) == 0 {
		return
	}
	newHead := s.body[0].Add(s.heading.Vector(s.cell))

	// Shift in place: drop the tail, prepend the new head.
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
	s.lastMove = s.heading
}

// Grow appends a copy of the tail segment. The duplicate is consumed by the
// next Move, so the body ends up exactly one segment longer.
func (s *Snake) Grow() {
	if len(s.body) == 0 {
		return
	}
	s.body = append(s.body, s.body[len(s.body)-1])
}

// CheckCollision reports whether the head left the play field or overlaps
// another segment.
func (s *Snake) CheckCollision() bool {
	if len(s.body) == 0 {
		return false
	}
	head := s.body[0]
	if !s.field.Contains(head.X, head.Y) {
		return true
	}
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// SetDirection changes the heading unless d is the exact reverse of the
// current heading or of the heading the last move was made with.
// Returns whether the change was accepted.
func (s *Snake) SetDirection(d core.Direction) bool {
	if d == s.heading.Opposite() || d == s.lastMove.Opposite() {
		return false
	}
	s.heading = d
	return true
}

// Head returns the first segment.
func (s *Snake) Head() core.Position {
	if len(s.body) == 0 {
		return core.Position{}
	}
	return s.body[0]
}

// Next returns the cell the head moves into on the next Move.
func (s *Snake) Next() core.Position {
	return s.Head().Add(s.heading.Vector(s.cell))
}

// Body returns a copy of all segments, head first.
func (s *Snake) Body() []core.Position {
	out := make([]core.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
