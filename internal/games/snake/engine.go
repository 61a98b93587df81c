// Package snake implements the Snake game on a wrap-around grid.
//
// The simulation lives in pure transition functions over State (Tick,
// ChangeDirection, Restart). Engine wraps one State together with the side
// effects a running game needs: the high-score store, the eat cue and the
// random source.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// GameID identifies the game in the score history.
	GameID = "snake"

	// Title is the display name.
	Title = "Snake"

	// HighScoreKey is the store key the best score is persisted under.
	HighScoreKey = "highScore"
)

// ErrGridSize is returned for a board too small for the starting snake.
var ErrGridSize = errors.New("snake: invalid grid size")

// HighScoreStore is the persistent scalar store for the best score.
// Get reports false for a missing or unreadable value.
type HighScoreStore interface {
	Get(key string) (int, bool)
	Set(key string, value int) error
}

// EatCue is played once for every food eaten. Failures are the cue's own
// business; the game never observes them.
type EatCue interface {
	Play()
}

// EngineConfig configures a new Engine.
type EngineConfig struct {
	GridSize int            // Board dimension; 0 means DefaultGridSize
	Seed     int64          // RNG seed; 0 means seed from the clock
	Rand     Rand           // Overrides Seed when set
	Store    HighScoreStore // May be nil: the high score is then kept in memory only
	Cue      EatCue         // May be nil
	Theme    Theme
}

// Engine runs one game. It is not safe for concurrent use; the platform
// calls it from a single event loop.
type Engine struct {
	state     State
	rnd       Rand
	store     HighScoreStore
	cue       EatCue
	theme     Theme
	highScore int
	tick      uint64
	paused    bool
}

// NewEngine creates an engine with a fresh game and the persisted high score.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	gridSize := cfg.GridSize
	if gridSize == 0 {
		gridSize = DefaultGridSize
	}
	if gridSize < MinGridSize {
		return nil, fmt.Errorf("%w: %d is below the minimum of %d", ErrGridSize, gridSize, MinGridSize)
	}

	rnd := cfg.Rand
	if rnd == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rnd = rand.New(rand.NewSource(seed))
	}

	theme := cfg.Theme
	if theme == (Theme{}) {
		theme = DefaultTheme()
	}

	e := &Engine{
		rnd:   rnd,
		store: cfg.Store,
		cue:   cfg.Cue,
		theme: theme,
	}
	if e.store != nil {
		// Missing or malformed values read as zero.
		if hs, ok := e.store.Get(HighScoreKey); ok && hs > 0 {
			e.highScore = hs
		}
	}
	e.state = NewState(gridSize, rnd)
	return e, nil
}

// ID returns the identifier scores are recorded under.
func (e *Engine) ID() string {
	return GameID
}

// State returns a copy of the current simulation state.
func (e *Engine) State() State {
	s := e.state
	s.Snake = append([]Point(nil), e.state.Snake...)
	return s
}

// HighScore returns the best score seen, including the running game.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Interval returns the tick interval for the current score.
func (e *Engine) Interval() time.Duration {
	return Interval(e.state.Score)
}

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// SetPaused pauses or resumes the game. A finished game cannot be paused.
func (e *Engine) SetPaused(paused bool) {
	if e.state.GameOver {
		paused = false
	}
	e.paused = paused
}

// Tick advances the game one step.
// The returned error only reports a failed high-score write; the game state
// has already advanced when it is returned.
func (e *Engine) Tick() (Events, error) {
	if e.paused {
		return Events{}, nil
	}

	next, ev := Tick(e.state, e.rnd)
	e.state = next
	if ev.Moved || ev.Died {
		e.tick++
	}

	if ev.Ate && e.cue != nil {
		e.cue.Play()
	}

	return ev, e.recordHighScore()
}

// recordHighScore writes the score through to the store as soon as it beats
// the best one.
func (e *Engine) recordHighScore() error {
	if e.state.Score <= e.highScore {
		return nil
	}
	e.highScore = e.state.Score
	if e.store == nil {
		return nil
	}
	if err := e.store.Set(HighScoreKey, e.highScore); err != nil {
		return fmt.Errorf("snake: cannot save high score: %w", err)
	}
	return nil
}

// ChangeDirection requests a turn and reports whether it was accepted.
func (e *Engine) ChangeDirection(d Direction) bool {
	if e.paused {
		return false
	}
	next := ChangeDirection(e.state, d)
	accepted := next.InputLocked && !e.state.InputLocked
	e.state = next
	return accepted
}

// Restart starts a new game. The high score is kept.
func (e *Engine) Restart() {
	e.state = Restart(e.state, e.rnd)
	e.tick = 0
	e.paused = false
}
