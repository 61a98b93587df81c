package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// CellTag classifies one board cell for rendering.
type CellTag uint8

const (
	CellEmpty CellTag = iota
	CellSnake
	CellHead
	CellFood
)

func (t CellTag) String() string {
	switch t {
	case CellSnake:
		return "snake"
	case CellHead:
		return "head"
	case CellFood:
		return "food"
	default:
		return "empty"
	}
}

// Project maps a state onto a GridSize x GridSize array of cell tags,
// indexed [y][x]. It reads s and nothing else.
func Project(s State) [][]CellTag {
	n := s.GridSize
	grid := make([][]CellTag, n)
	for y := range grid {
		grid[y] = make([]CellTag, n)
	}

	board := core.NewRect(0, 0, n, n)
	inBounds := func(p Point) bool {
		return board.Contains(p.X, p.Y)
	}

	if inBounds(s.Food) {
		grid[s.Food.Y][s.Food.X] = CellFood
	}
	for i, seg := range s.Snake {
		if !inBounds(seg) {
			continue
		}
		if i == 0 {
			grid[seg.Y][seg.X] = CellHead
		} else {
			grid[seg.Y][seg.X] = CellSnake
		}
	}
	return grid
}
