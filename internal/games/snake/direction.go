package snake

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset for a step in this direction.
// Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Point is a cell coordinate on the board.
type Point struct {
	X, Y int
}

// Step returns p moved one cell in d on a gridSize x gridSize torus.
func (p Point) Step(d Direction, gridSize int) Point {
	dx, dy := d.Delta()
	return Point{
		X: wrap(p.X+dx, gridSize),
		Y: wrap(p.Y+dy, gridSize),
	}
}

// wrap folds v into [0, n). A single step never goes further than one
// cell past an edge, but the modulo form keeps it correct for any offset.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
