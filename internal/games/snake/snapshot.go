package snake

// GameStateType names the state machine's current state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game for determinism tests and debug output.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	Interval  int64 // Milliseconds
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case e.state.GameOver:
		state = StateGameOver
	case e.paused:
		state = StatePaused
	}

	headX, headY := 0, 0
	if len(e.state.Snake) > 0 {
		headX = e.state.Snake[0].X
		headY = e.state.Snake[0].Y
	}

	return Snapshot{
		Tick:      e.tick,
		Score:     e.state.Score,
		HighScore: e.highScore,
		SnakeLen:  len(e.state.Snake),
		HeadX:     headX,
		HeadY:     headY,
		Dir:       e.state.Direction,
		FoodX:     e.state.Food.X,
		FoodY:     e.state.Food.Y,
		Interval:  e.Interval().Milliseconds(),
		State:     state,
	}
}
