package game

import "github.com/vovakirdan/pixel-snake/internal/core"

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Frames   uint64
	Score    int
	SnakeLen int
	Head     core.Position
	Heading  core.Direction
	Apple    core.Position
	State    State
}

// Snapshot returns the current game snapshot.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Tick:     c.tick,
		Frames:   c.frames,
		Score:    c.score,
		SnakeLen: c.snake.Len(),
		Head:     c.snake.Head(),
		Heading:  c.snake.Heading(),
		Apple:    c.apple.Position(),
		State:    c.state,
	}
}
