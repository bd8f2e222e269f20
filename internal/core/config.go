package core

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 10

// GameState represents the current state of a game as seen by a frontend.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by the controller after each update.
type StepResult struct {
	State GameState
	Moved bool // Whether the snake advanced this frame
	Ate   bool // Whether the apple was eaten this frame
}
