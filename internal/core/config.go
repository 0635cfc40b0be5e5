package core

// Canvas pixels per terminal cell. Terminal cells are roughly twice as tall
// as they are wide, so the vertical scale is doubled to keep circles round.
const (
	CellPixelsX = 10
	CellPixelsY = 20
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and device class.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frame callbacks per second (default 60)
	Seed     int64  // RNG seed; 0 means use current time in platform layer
	Device   string // Device class: "terminal", "desktop", "tablet", "mobile"
	Touch    bool   // Whether the device reserves on-screen touch controls

	// CanvasW and CanvasH override the canvas size in pixels for pixel
	// frontends. Zero means derive it from the cell grid.
	CanvasW float64
	CanvasH float64
}

// CanvasSize returns the canvas size in pixels.
func (c RuntimeConfig) CanvasSize() (w, h float64) {
	if c.CanvasW > 0 && c.CanvasH > 0 {
		return c.CanvasW, c.CanvasH
	}
	return float64(c.ScreenW * CellPixelsX), float64(c.ScreenH * CellPixelsY)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // "menu", "playing", "paused", "gameover"
	Score    int    // Current score
	Lives    int    // Remaining lives
	Wave     int    // Current difficulty wave
	GameOver bool   // Whether the session has ended
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event

	// Continue is false once the simulation no longer wants frames
	// (menu, paused, game over). Platforms stop scheduling ticks until a
	// state transition asks for them again.
	Continue bool
}
