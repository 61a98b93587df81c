package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme holds the colors the board is drawn with.
type Theme struct {
	Snake  core.Color
	Head   core.Color
	Food   core.Color
	Grid   core.Color
	Border core.Color
	Text   core.Color
	Alert  core.Color
}

// DefaultTheme returns the stock colors.
func DefaultTheme() Theme {
	return Theme{
		Snake:  core.ColorGreen,
		Head:   core.ColorBrightGreen,
		Food:   core.ColorBrightRed,
		Grid:   core.ColorGray,
		Border: core.ColorWhite,
		Text:   core.ColorBrightGreen,
		Alert:  core.ColorBrightRed,
	}
}

// Each board cell is two terminal columns wide so the grid looks square.
const cellWidth = 2

const (
	hudRows    = 1 // Score line above the board
	statusRows = 1 // Restart button below the board
)

const restartLabel = "[R] Restart Game"

var cellGlyphs = map[CellTag][cellWidth]rune{
	CellEmpty: {' ', '·'},
	CellSnake: {'█', '█'},
	CellHead:  {'█', '█'},
	CellFood:  {'●', ' '},
}

// RequiredSize returns the smallest screen that fits the board.
func (e *Engine) RequiredSize() (w, h int) {
	n := e.state.GridSize
	return n*cellWidth + 2, n + 2 + hudRows + statusRows
}

// FitsScreen reports whether a w x h screen can show the whole board.
func (e *Engine) FitsScreen(w, h int) bool {
	rw, rh := e.RequiredSize()
	return w >= rw && h >= rh
}

// Render draws the game onto dst. It only reads engine state.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	if !e.FitsScreen(dst.Width(), dst.Height()) {
		rw, rh := e.RequiredSize()
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Terminal too small", e.theme.Alert)
		dst.DrawTextCentered(mid, fmt.Sprintf("need %dx%d, have %dx%d", rw, rh, dst.Width(), dst.Height()), e.theme.Text)
		return
	}

	rw, rh := e.RequiredSize()
	area := dst.Bounds().CenteredIn(rw, rh)

	e.renderHUD(dst, area)

	board := core.NewRect(area.X, area.Y+hudRows, rw, rh-hudRows-statusRows)
	e.renderBoard(dst, board)

	e.renderStatus(dst, area.X, board.Bottom())

	switch {
	case e.state.GameOver:
		e.renderOverlay(dst, board, "Game Over!", fmt.Sprintf("Score: %d", e.state.Score))
	case e.paused:
		e.renderOverlay(dst, board, "Paused", "Press P to continue")
	}
}

// renderHUD draws score and high score above the board.
func (e *Engine) renderHUD(dst *core.Screen, area core.Rect) {
	score := fmt.Sprintf("Score: %d", e.state.Score)
	high := fmt.Sprintf("High Score: %d", e.highScore)

	dst.DrawTextColored(area.X, area.Y, score, e.theme.Text)
	dst.DrawTextColored(area.Right()-len(high), area.Y, high, e.theme.Grid)
}

// renderBoard draws the border and every cell of the projection.
func (e *Engine) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board, e.theme.Border)

	grid := Project(e.state)
	for y, row := range grid {
		for x, tag := range row {
			glyph := cellGlyphs[tag]
			color := e.cellColor(tag)
			sx := board.X + 1 + x*cellWidth
			sy := board.Y + 1 + y
			for i, r := range glyph {
				dst.SetColored(sx+i, sy, r, color)
			}
		}
	}
}

func (e *Engine) cellColor(tag CellTag) core.Color {
	switch tag {
	case CellSnake:
		return e.theme.Snake
	case CellHead:
		return e.theme.Head
	case CellFood:
		return e.theme.Food
	default:
		return e.theme.Grid
	}
}

// renderStatus draws the restart button line, highlighted once the game is over.
func (e *Engine) renderStatus(dst *core.Screen, x, y int) {
	if e.state.GameOver {
		dst.DrawTextColored(x, y, restartLabel, e.theme.Alert)
		return
	}
	dst.DrawText(x, y, restartLabel)
}

// renderOverlay draws a framed two-line message centered on the board.
func (e *Engine) renderOverlay(dst *core.Screen, board core.Rect, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := board.CenteredIn(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, e.theme.Alert)

	drawCentered(dst, box, box.Y+1, line1, e.theme.Alert)
	dst.DrawHLine(box.X+1, box.Y+2, box.W-2, '─', e.theme.Border)
	drawCentered(dst, box, box.Y+3, line2, e.theme.Text)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-len(text))/2
	dst.DrawTextColored(x, y, text, c)
}
