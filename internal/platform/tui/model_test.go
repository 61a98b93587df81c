package tui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// seqRand replays values, then returns 0.
type seqRand struct {
	values []int
}

func (r *seqRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

type fakeRecorder struct {
	saved []int
}

func (f *fakeRecorder) SaveScore(gameID string, score int) (int64, error) {
	f.saved = append(f.saved, score)
	return int64(len(f.saved)), nil
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// newTestModel builds a model whose food appears at (10,9), (11,9), (12,9)
// and then (0,0), straight ahead of the starting snake.
func newTestModel(t *testing.T, opts Options) (Model, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	engine, err := snake.NewEngine(snake.EngineConfig{
		Rand:  &seqRand{values: []int{10, 9, 11, 9, 12, 9, 0, 0}},
		Store: mem,
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if opts.Width == 0 {
		opts.Width, opts.Height = 80, 24
	}
	return NewModel(engine, opts), mem
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

// liveTick delivers a tick of the current schedule.
func liveTick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg{Gen: m.ticker.gen, Time: time.Now()})
}

func TestModelStartsTicking(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	if !m.ticker.Running() {
		t.Fatal("model should tick from the start")
	}
	if m.ticker.Interval() != snake.BaseInterval {
		t.Errorf("tick interval = %v, want %v", m.ticker.Interval(), snake.BaseInterval)
	}
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should schedule the first tick")
	}
	msg, ok := cmd().(TickMsg)
	if !ok || !m.ticker.Accept(msg) {
		t.Errorf("first tick %+v does not belong to the live schedule", msg)
	}
}

func TestModelLiveTickAdvances(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := liveTick(t, m)
	if cmd == nil {
		t.Error("live tick should schedule the next one")
	}
	if got := m.engine.State().Head(); got != (snake.Point{X: 10, Y: 9}) {
		t.Errorf("head = %v, want (10,9)", got)
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	stale := TickMsg{Gen: m.ticker.gen}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	before := m.engine.Snapshot()

	m, cmd := update(t, m, stale)
	if cmd != nil {
		t.Error("stale tick should not schedule anything")
	}
	if after := m.engine.Snapshot(); after != before {
		t.Errorf("stale tick changed the game: %+v -> %+v", before, after)
	}
}

func TestModelDirectionChangeReschedules(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	gen := m.ticker.gen

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if cmd == nil || m.ticker.gen == gen {
		t.Fatal("accepted turn should restart the schedule")
	}
	if m.engine.State().Direction != snake.DirUp {
		t.Errorf("direction = %v, want up", m.engine.State().Direction)
	}

	gen = m.ticker.gen
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if cmd != nil || m.ticker.gen != gen {
		t.Error("rejected turn should not touch the schedule")
	}
	if m.engine.State().Direction != snake.DirUp {
		t.Error("second turn within one tick should be ignored")
	}
}

func TestModelReversalIgnored(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	gen := m.ticker.gen

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if cmd != nil || m.ticker.gen != gen {
		t.Error("reversal should not reschedule")
	}
	if m.engine.State().Direction != snake.DirRight {
		t.Errorf("direction = %v, want right", m.engine.State().Direction)
	}
}

func TestModelPause(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	live := TickMsg{Gen: m.ticker.gen}

	m, _ = update(t, m, runeKey('p'))
	if !m.engine.Paused() || m.ticker.Running() {
		t.Fatal("p should pause and stop ticking")
	}
	before := m.engine.Snapshot()
	m, _ = update(t, m, live)
	if m.engine.Snapshot() != before {
		t.Error("tick advanced a paused game")
	}
	if !strings.Contains(stripANSI(m.View()), "Paused") {
		t.Error("paused view should say so")
	}

	m, cmd := update(t, m, runeKey('p'))
	if m.engine.Paused() || !m.ticker.Running() || cmd == nil {
		t.Error("second p should resume ticking")
	}
}

// playToDeath eats three foods, then turns back into the body.
func playToDeath(t *testing.T, m Model) Model {
	t.Helper()
	for range 3 {
		m, _ = liveTick(t, m)
	}
	for _, k := range []tea.KeyType{tea.KeyDown, tea.KeyLeft, tea.KeyUp} {
		m, _ = update(t, m, tea.KeyMsg{Type: k})
		m, _ = liveTick(t, m)
	}
	return m
}

func TestModelGameOver(t *testing.T) {
	rec := &fakeRecorder{}
	m, mem := newTestModel(t, Options{Scores: rec})

	m = playToDeath(t, m)

	st := m.engine.State()
	if !st.GameOver {
		t.Fatalf("game should be over, state %+v", st)
	}
	if st.Score != 30 {
		t.Errorf("score = %d, want 30", st.Score)
	}
	if m.ticker.Running() {
		t.Error("ticking should stop on game over")
	}
	if hs, ok := mem.Get(snake.HighScoreKey); !ok || hs != 30 {
		t.Errorf("stored high score = %d, %v; want 30", hs, ok)
	}
	if len(rec.saved) != 1 || rec.saved[0] != 30 {
		t.Errorf("saved scores = %v, want [30]", rec.saved)
	}

	// Pause is refused and a stray tick does not record twice.
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{Gen: m.ticker.gen})
	if m.engine.Paused() || len(rec.saved) != 1 {
		t.Errorf("paused=%v saved=%v after game over", m.engine.Paused(), rec.saved)
	}

	view := stripANSI(m.View())
	for _, want := range []string{"Game Over!", "High Score: 30", "[R] Restart Game"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelRestart(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = playToDeath(t, m)

	m, cmd := update(t, m, runeKey('r'))
	if cmd == nil || !m.ticker.Running() {
		t.Fatal("restart should start ticking")
	}
	if m.ticker.Interval() != snake.BaseInterval {
		t.Errorf("tick interval = %v, want %v", m.ticker.Interval(), snake.BaseInterval)
	}
	st := m.engine.State()
	if st.GameOver || st.Score != 0 || len(st.Snake) != 2 {
		t.Errorf("state after restart = %+v", st)
	}
	if m.engine.HighScore() != 30 {
		t.Errorf("HighScore() = %d, want 30", m.engine.HighScore())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.ticker.Running() {
		t.Error("quit should stop ticking")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResizeTooSmall(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !m.engine.Paused() || m.ticker.Running() {
		t.Fatal("too small a terminal should pause the game")
	}
	if !strings.Contains(stripANSI(m.View()), "Terminal too small") {
		t.Error("view should ask for a bigger terminal")
	}

	// Manual unpause is refused while the board does not fit.
	m, _ = update(t, m, runeKey('p'))
	if !m.engine.Paused() {
		t.Error("p should not resume a board that does not fit")
	}

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.engine.Paused() || !m.ticker.Running() || cmd == nil {
		t.Error("growing the terminal should resume the game")
	}
}

func TestModelResizeKeepsManualPause(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = update(t, m, runeKey('p'))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if !m.engine.Paused() {
		t.Error("a game paused by the player should stay paused")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	view := stripANSI(m.View())
	for _, want := range []string{"Score: 0", "High Score: 0", "[R] Restart Game"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}
}

func TestModelHelpLine(t *testing.T) {
	tests := []struct {
		name     string
		height   int
		showHelp bool
		want     bool
	}{
		{"room for help", 30, true, true},
		{"no room", 24, true, false},
		{"disabled", 30, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, Options{Width: 80, Height: tt.height, ShowHelp: tt.showHelp})
			view := stripANSI(m.View())
			if got := strings.Contains(view, "restart"); got != tt.want {
				t.Errorf("help shown = %v, want %v", got, tt.want)
			}
			if lines := strings.Count(view, "\n") + 1; lines != tt.height {
				t.Errorf("view has %d lines, want %d", lines, tt.height)
			}
		})
	}
}

func TestModelStartsPausedWhenTooSmall(t *testing.T) {
	m, _ := newTestModel(t, Options{Width: 20, Height: 10})

	if !m.engine.Paused() || m.ticker.Running() {
		t.Fatal("model on a tiny terminal should start paused")
	}
	if m.Init() != nil {
		t.Error("Init should not schedule ticks while paused")
	}

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd == nil || !m.ticker.Running() {
		t.Error("game should start once the board fits")
	}
}
