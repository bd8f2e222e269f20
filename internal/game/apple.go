package game

import (
	"math/rand"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// Placement retry bounds. When exhausted the last candidate is accepted even
// if it overlaps the snake; the game keeps running instead of spinning.
const (
	InitialSpawnAttempts = 10000
	RespawnAttempts      = 100
)

// Apple is the single piece of food on the field.
type Apple struct {
	position core.Position
	rng      *rand.Rand
	cell     int
	field    core.Rect
}

// NewApple creates an apple that draws its positions from rng.
// Call Spawn to place it.
func NewApple(rng *rand.Rand, cell int, field core.Rect) *Apple {
	return &Apple{
		rng:   rng,
		cell:  cell,
		field: field,
	}
}

// Position returns the apple's current cell.
func (a *Apple) Position() core.Position {
	return a.position
}

// Regenerate returns a uniformly random grid-aligned position inside the field.
// It does not move the apple.
func (a *Apple) Regenerate() core.Position {
	cols := a.field.W / a.cell
	rows := a.field.H / a.cell
	return core.Position{
		X: a.field.X + a.rng.Intn(cols)*a.cell,
		Y: a.field.Y + a.rng.Intn(rows)*a.cell,
	}
}

// Spawn performs the initial placement, avoiding the snake and the cell its
// head moves into next.
// Reports false if the retry bound was exhausted and the apple may overlap it.
func (a *Apple) Spawn(s *Snake) bool {
	return a.place(s, InitialSpawnAttempts)
}

// Respawn moves the apple after it was eaten, avoiding the snake and the cell
// its head moves into next.
// Reports false if the retry bound was exhausted and the apple may overlap it.
func (a *Apple) Respawn(s *Snake) bool {
	return a.place(s, RespawnAttempts)
}

func (a *Apple) place(s *Snake, attempts int) bool {
	pos := a.Regenerate()
	for i := 0; i < attempts && blocked(s, pos); i++ {
		pos = a.Regenerate()
	}
	a.position = pos
	return !blocked(s, pos)
}

// blocked reports whether p is under the snake or about to be.
func blocked(s *Snake, p core.Position) bool {
	return p == s.Next() || s.Occupies(p)
}
