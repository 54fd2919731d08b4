package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second, drives short animations
	Seed     int64 // RNG seed for the resolver; 0 means time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState summarises a game for the platform.
type GameState struct {
	Black    int    // Black pieces on the board
	White    int    // White pieces on the board
	Turn     string // Player to act, empty once over
	GameOver bool   // Whether the match has ended
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	// Event is a short description of what the step did, empty if nothing.
	Event string
}
