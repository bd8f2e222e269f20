// Package game implements the Snake rules: the snake itself, the apple and the
// controller that owns both together with score and play state.
package game

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

var (
	// ErrEmptySnake is returned by Update when the snake has no segments left.
	ErrEmptySnake = errors.New("game: snake has no segments")

	// ErrNilCanvas is returned by Render when there is nothing to draw on.
	ErrNilCanvas = errors.New("game: nil canvas")
)

// State is the controller's play state.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Controller owns the snake, the apple, the score and the play state, and
// advances them one frame at a time.
type Controller struct {
	rng    *rand.Rand
	logger *log.Logger

	snake  *Snake
	apple  *Apple
	score  int
	frames uint64 // Frames spent playing since the last reset
	tick   uint64 // Update calls since construction
	state  State
}

// NewController creates a controller and starts the first game. Apple
// placement is driven by seed, so equal seeds and inputs replay the same game.
// A nil logger discards all output.
func NewController(seed int64, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
	c.Reset()
	return c
}

// Reset starts a new game: score, frame counter, snake, apple and state are
// all replaced together.
func (c *Controller) Reset() {
	c.score = 0
	c.frames = 0
	c.state = StatePlaying
	c.snake = NewSnake(core.StartPosition, core.CellSize, core.PlayField)
	c.apple = NewApple(c.rng, core.CellSize, core.PlayField)
	if !c.apple.Spawn(c.snake) {
		c.logger.Warn("apple spawned on the snake", "attempts", InitialSpawnAttempts, "apple", c.apple.Position())
	}
	c.logger.Debug("game reset", "apple", c.apple.Position())
}

// Update consumes one frame of input and, while playing, advances the game:
// eat the apple if the head is on it, move, then check for collisions.
func (c *Controller) Update(in core.InputFrame) (core.StepResult, error) {
	c.tick++

	if c.snake == nil || c.snake.Len() == 0 {
		return core.StepResult{State: c.gameState()}, ErrEmptySnake
	}

	restarted := c.handleInput(in)

	var result core.StepResult
	if c.state == StatePlaying && !restarted {
		if c.snake.Head() == c.apple.Position() {
			c.eat()
			result.Ate = true
		}

		c.snake.Move()
		c.frames++
		result.Moved = true

		if c.snake.CheckCollision() {
			c.state = StateGameOver
			c.logger.Info("game over", "score", c.score, "length", c.snake.Len(), "head", c.snake.Head())
		}
	}

	result.State = c.gameState()
	return result, nil
}

// handleInput applies the frame's actions in arrival order.
// Reports whether the game was restarted; the fresh snake is shown for one
// frame before it starts moving.
func (c *Controller) handleInput(in core.InputFrame) (restarted bool) {
	for _, a := range in.Actions() {
		switch a {
		case core.ActionRestart:
			if c.state == StateGameOver {
				c.logger.Info("restart", "previous_score", c.score)
				c.Reset()
				restarted = true
			}
		case core.ActionPause:
			switch c.state {
			case StatePlaying:
				c.state = StatePaused
			case StatePaused:
				c.state = StatePlaying
			}
		default:
			dir, ok := a.Direction()
			if !ok || c.state != StatePlaying {
				continue
			}
			if !c.snake.SetDirection(dir) {
				c.logger.Debug("direction rejected", "requested", dir, "heading", c.snake.Heading())
			}
		}
	}
	return restarted
}

// eat scores the apple, grows the snake and moves the apple elsewhere.
func (c *Controller) eat() {
	c.score++
	c.snake.Grow()
	if !c.apple.Respawn(c.snake) {
		c.logger.Warn("apple respawned on the snake", "attempts", RespawnAttempts, "apple", c.apple.Position())
	}
	c.logger.Debug("apple eaten", "score", c.score, "length", c.snake.Len(), "apple", c.apple.Position())
}

func (c *Controller) gameState() core.GameState {
	return core.GameState{
		Score:    c.score,
		GameOver: c.state == StateGameOver,
		Paused:   c.state == StatePaused,
	}
}

// State returns the current play state.
func (c *Controller) State() State {
	return c.state
}

// Score returns the number of apples eaten since the last reset.
func (c *Controller) Score() int {
	return c.score
}

// Frames returns the number of frames played since the last reset.
func (c *Controller) Frames() uint64 {
	return c.frames
}

// Snake returns the current snake.
func (c *Controller) Snake() *Snake {
	return c.snake
}

// Apple returns the current apple.
func (c *Controller) Apple() *Apple {
	return c.apple
}
