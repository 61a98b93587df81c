package snake

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fakeStore is an in-memory HighScoreStore that records writes.
type fakeStore struct {
	values map[string]int
	sets   []int
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]int)}
}

func (s *fakeStore) Get(key string) (int, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *fakeStore) Set(key string, value int) error {
	if s.err != nil {
		return s.err
	}
	s.values[key] = value
	s.sets = append(s.sets, value)
	return nil
}

type countingCue struct {
	plays int
}

func (c *countingCue) Play() {
	c.plays++
}

func newTestEngine(t *testing.T, store HighScoreStore, cue EatCue) *Engine {
	t.Helper()
	cfg := EngineConfig{Seed: 42}
	if store != nil {
		cfg.Store = store
	}
	if cue != nil {
		cfg.Cue = cue
	}
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return e
}

// feed puts food directly in front of the head.
func feed(e *Engine) {
	e.state.Food = e.state.Head().Step(e.state.Direction, e.state.GridSize)
}

func TestEngineDefaults(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	snap := e.Snapshot()
	if snap.SnakeLen != 2 || snap.HeadX != 9 || snap.HeadY != 9 {
		t.Errorf("Unexpected initial snake: %+v", snap)
	}
	if snap.Dir != DirRight || snap.State != StateRunning {
		t.Errorf("Unexpected initial state: %+v", snap)
	}
	if snap.Interval != 200 {
		t.Errorf("Initial interval = %dms, expected 200ms", snap.Interval)
	}
	if e.State().GridSize != DefaultGridSize {
		t.Errorf("GridSize = %d, expected %d", e.State().GridSize, DefaultGridSize)
	}
}

func TestEngineGridTooSmall(t *testing.T) {
	_, err := NewEngine(EngineConfig{GridSize: MinGridSize - 1})
	if !errors.Is(err, ErrGridSize) {
		t.Errorf("Expected ErrGridSize, got %v", err)
	}
}

func TestEngineLoadsHighScore(t *testing.T) {
	store := newFakeStore()
	store.values[HighScoreKey] = 70

	e := newTestEngine(t, store, nil)
	if e.HighScore() != 70 {
		t.Errorf("HighScore() = %d, expected 70", e.HighScore())
	}
}

func TestEngineMissingHighScore(t *testing.T) {
	e := newTestEngine(t, newFakeStore(), nil)
	if e.HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0", e.HighScore())
	}
}

func TestEngineHighScoreWriteThrough(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(t, store, nil)

	feed(e)
	if _, err := e.Tick(); err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if e.HighScore() != 10 || store.values[HighScoreKey] != 10 {
		t.Errorf("After first food: high=%d stored=%d, expected 10", e.HighScore(), store.values[HighScoreKey])
	}

	// A plain move must not write.
	e.state.Food = Point{0, 0}
	if _, err := e.Tick(); err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}

	feed(e)
	if _, err := e.Tick(); err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if len(store.sets) != 2 || store.sets[1] != 20 {
		t.Errorf("Writes = %v, expected [10 20]", store.sets)
	}
}

func TestEngineHighScoreNotWrittenBelowBest(t *testing.T) {
	store := newFakeStore()
	store.values[HighScoreKey] = 50
	e := newTestEngine(t, store, nil)

	feed(e)
	if _, err := e.Tick(); err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}

	if len(store.sets) != 0 {
		t.Errorf("Score 10 below best 50 should not be written, got %v", store.sets)
	}
	if e.HighScore() != 50 {
		t.Errorf("HighScore() = %d, expected 50", e.HighScore())
	}
}

func TestEngineStoreError(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("disk full")
	e := newTestEngine(t, store, nil)

	feed(e)
	ev, err := e.Tick()

	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Expected wrapped store error, got %v", err)
	}
	if !ev.Ate || e.State().Score != 10 {
		t.Error("Game should advance even when the store write fails")
	}
}

func TestEngineCuePlaysOncePerFood(t *testing.T) {
	cue := &countingCue{}
	e := newTestEngine(t, nil, cue)

	feed(e)
	e.Tick()
	e.state.Food = Point{0, 0}
	e.Tick()
	feed(e)
	e.Tick()

	if cue.plays != 2 {
		t.Errorf("Cue played %d times, expected 2", cue.plays)
	}
}

func TestEngineRestartKeepsHighScore(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(t, store, nil)

	feed(e)
	e.Tick()
	feed(e)
	e.Tick()
	e.ChangeDirection(DirUp)
	e.Restart()

	snap := e.Snapshot()
	if snap.Score != 0 || snap.SnakeLen != 2 || snap.Dir != DirRight || snap.State != StateRunning {
		t.Errorf("Restart did not reset the game: %+v", snap)
	}
	if e.HighScore() != 20 {
		t.Errorf("HighScore() = %d after restart, expected 20", e.HighScore())
	}
}

func TestEngineChangeDirection(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	if e.ChangeDirection(DirLeft) {
		t.Error("Reversal should be rejected")
	}
	if !e.ChangeDirection(DirUp) {
		t.Error("Turning up should be accepted")
	}
	if e.ChangeDirection(DirLeft) {
		t.Error("Second turn in one tick should be rejected")
	}
}

func TestEnginePause(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	before := e.Snapshot()

	e.SetPaused(true)
	ev, _ := e.Tick()
	if ev.Moved {
		t.Error("Paused engine should not move")
	}
	if e.ChangeDirection(DirUp) {
		t.Error("Paused engine should not accept turns")
	}
	if e.Snapshot().State != StatePaused || e.Snapshot().HeadX != before.HeadX {
		t.Errorf("Unexpected paused snapshot: %+v", e.Snapshot())
	}

	e.SetPaused(false)
	if ev, _ := e.Tick(); !ev.Moved {
		t.Error("Resumed engine should move")
	}
}

func TestEngineCannotPauseAfterGameOver(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	e.state.GameOver = true

	e.SetPaused(true)
	if e.Paused() {
		t.Error("A finished game should not be pausable")
	}
}

func TestDeterminism(t *testing.T) {
	e1, _ := NewEngine(EngineConfig{Seed: 12345})
	e2, _ := NewEngine(EngineConfig{Seed: 12345})

	turns := map[int]Direction{20: DirDown, 40: DirLeft, 60: DirUp, 80: DirRight}
	for i := 0; i < 100; i++ {
		if d, ok := turns[i]; ok {
			e1.ChangeDirection(d)
			e2.ChangeDirection(d)
		}
		e1.Tick()
		e2.Tick()
	}

	if e1.Snapshot() != e2.Snapshot() {
		t.Errorf("Snapshots differ:\n%+v\n%+v", e1.Snapshot(), e2.Snapshot())
	}
}

func TestRender(t *testing.T) {
	store := newFakeStore()
	store.values[HighScoreKey] = 120
	e := newTestEngine(t, store, nil)

	screen := core.NewScreen(80, 24)
	e.Render(screen)
	content := screen.String()

	for _, want := range []string{"Score: 0", "High Score: 120", "[R] Restart Game", "┌"} {
		if !strings.Contains(content, want) {
			t.Errorf("Rendered screen missing %q", want)
		}
	}
	if strings.Contains(content, "Game Over!") {
		t.Error("Running game should not show the game over overlay")
	}

	// Head is bright green, two columns wide.
	w, h := e.RequiredSize()
	area := screen.Bounds().CenteredIn(w, h)
	hx := area.X + 1 + 9*cellWidth
	hy := area.Y + hudRows + 1 + 9
	if cell := screen.GetCell(hx, hy); cell.Rune != '█' || cell.Color != DefaultTheme().Head {
		t.Errorf("Head cell = %+v, expected colored block", cell)
	}
}

func TestRenderGameOver(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	e.state.GameOver = true

	screen := core.NewScreen(80, 24)
	e.Render(screen)

	if !strings.Contains(screen.String(), "Game Over!") {
		t.Error("Game over overlay missing")
	}
}

func TestRenderRestartLine(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	screen := core.NewScreen(80, 24)

	w, h := e.RequiredSize()
	area := screen.Bounds().CenteredIn(w, h)
	x, y := area.X, area.Bottom()-1

	e.Render(screen)
	if cell := screen.GetCell(x, y); cell.Rune != '[' || cell.Color != core.ColorDefault {
		t.Errorf("Running restart line = %+v, expected plain '['", cell)
	}

	e.state.GameOver = true
	e.Render(screen)
	if cell := screen.GetCell(x, y); cell.Rune != '[' || cell.Color != DefaultTheme().Alert {
		t.Errorf("Game over restart line = %+v, expected alert '['", cell)
	}
}

func TestRenderOverlaySeparator(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	e.SetPaused(true)
	screen := core.NewScreen(80, 24)
	e.Render(screen)

	w, h := e.RequiredSize()
	area := screen.Bounds().CenteredIn(w, h)
	board := core.NewRect(area.X, area.Y+hudRows, w, h-hudRows-statusRows)
	box := board.CenteredIn(len("Press P to continue")+4, 5)

	for x := box.X + 1; x < box.Right()-1; x++ {
		if cell := screen.GetCell(x, box.Y+2); cell.Rune != '─' {
			t.Fatalf("Separator cell (%d, %d) = %q, expected '─'", x, box.Y+2, cell.Rune)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	if e.FitsScreen(30, 10) {
		t.Fatal("30x10 should not fit a 20x20 board")
	}

	screen := core.NewScreen(30, 10)
	e.Render(screen)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Error("Too-small notice missing")
	}
}
