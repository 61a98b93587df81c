package snake

import "slices"

const (
	// DefaultGridSize is the board dimension used when none is configured.
	DefaultGridSize = 20

	// MinGridSize is the smallest board that fits the fixed starting snake.
	MinGridSize = 10

	// PointsPerFood is the score awarded for each food eaten.
	PointsPerFood = 10
)

// initialSnake is the starting body, head first.
var initialSnake = []Point{{X: 9, Y: 9}, {X: 8, Y: 9}}

// InitialSnake returns a copy of the starting body.
func InitialSnake() []Point {
	return slices.Clone(initialSnake)
}

// Rand is the random source used for food placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// State is the complete simulation state. Transition functions take a State
// by value and return a new one; the Snake slice is never shared between
// the input and the result.
type State struct {
	GridSize    int
	Snake       []Point // Head at index 0
	Food        Point
	Direction   Direction
	Score       int
	GameOver    bool
	InputLocked bool // A direction change was already accepted this tick
}

// Events reports what a single tick did.
type Events struct {
	Moved bool // The snake advanced (with or without growing)
	Ate   bool // Food was eaten this tick
	Died  bool // The snake ran into itself this tick
}

// NewState returns the starting state for a gridSize board.
func NewState(gridSize int, rnd Rand) State {
	s := State{GridSize: gridSize}
	return Restart(s, rnd)
}

// Head returns the snake's head cell.
func (s State) Head() Point {
	return s.Snake[0]
}

// Occupied reports whether any snake segment sits on p.
func (s State) Occupied(p Point) bool {
	return occupies(s.Snake, p)
}

func occupies(body []Point, p Point) bool {
	return slices.Contains(body, p)
}

// Tick advances the simulation by one cell.
//
// A game-over state is returned untouched. Otherwise the head moves one cell
// in the current direction, wrapping at the edges. Running into any current
// segment ends the game and leaves the body as it was. Landing on food grows
// the snake, adds PointsPerFood and places new food clear of the new body.
// Every tick that runs unlocks input.
func Tick(s State, rnd Rand) (State, Events) {
	if s.GameOver || len(s.Snake) == 0 {
		return s, Events{}
	}

	next := s
	next.InputLocked = false

	newHead := s.Head().Step(s.Direction, s.GridSize)

	if s.Occupied(newHead) {
		next.Snake = slices.Clone(s.Snake)
		next.GameOver = true
		return next, Events{Died: true}
	}

	if newHead == s.Food {
		body := make([]Point, 0, len(s.Snake)+1)
		body = append(body, newHead)
		body = append(body, s.Snake...)

		next.Snake = body
		next.Score += PointsPerFood
		next.Food = PlaceFood(body, s.GridSize, rnd)
		return next, Events{Moved: true, Ate: true}
	}

	body := make([]Point, 0, len(s.Snake))
	body = append(body, newHead)
	body = append(body, s.Snake[:len(s.Snake)-1]...)
	next.Snake = body
	return next, Events{Moved: true}
}

// ChangeDirection queues a turn for the next tick.
// It is ignored when a turn was already accepted since the last tick, when
// the game is over, or when d would reverse the snake onto itself.
func ChangeDirection(s State, d Direction) State {
	if s.InputLocked || s.GameOver {
		return s
	}
	if d == s.Direction.Opposite() {
		return s
	}
	s.Direction = d
	s.InputLocked = true
	return s
}

// Restart resets everything except the board size.
func Restart(s State, rnd Rand) State {
	body := InitialSnake()
	return State{
		GridSize:  s.GridSize,
		Snake:     body,
		Food:      PlaceFood(body, s.GridSize, rnd),
		Direction: DirRight,
	}
}

// NoFood marks a board with no free cell left to put food on.
var NoFood = Point{X: -1, Y: -1}

// PlaceFood picks a uniformly random cell that no segment of body occupies.
// It samples x then y and rejects occupied cells until it finds a free one.
// A board the body fills completely gets NoFood.
func PlaceFood(body []Point, gridSize int, rnd Rand) Point {
	if len(body) >= gridSize*gridSize {
		return NoFood
	}
	for {
		p := Point{X: rnd.Intn(gridSize), Y: rnd.Intn(gridSize)}
		if !occupies(body, p) {
			return p
		}
	}
}
