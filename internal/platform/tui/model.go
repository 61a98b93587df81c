package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ScoreRecorder appends finished games to the score history.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options configures a game Model.
type Options struct {
	Width    int
	Height   int
	ShowHelp bool
	Scores   ScoreRecorder // May be nil
	Logger   *log.Logger   // May be nil
}

// Model is the Bubble Tea model for one running snake game.
type Model struct {
	engine *snake.Engine
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	ticker ticker
	scores ScoreRecorder
	logger *log.Logger

	width      int
	height     int
	showHelp   bool
	userPaused bool
	tooSmall   bool // Board does not fit the terminal
	scoreSaved bool // Score recorded for the current game over
	quitting   bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a model driving engine. The tick schedule starts with Init.
func NewModel(engine *snake.Engine, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Width

	m := Model{
		engine:   engine,
		screen:   core.NewScreen(opts.Width, opts.Height),
		keys:     DefaultKeyMap(),
		help:     h,
		scores:   opts.Scores,
		logger:   logger,
		width:    opts.Width,
		height:   opts.Height,
		showHelp: opts.ShowHelp,
	}
	m.layout()
	m.tooSmall = !engine.FitsScreen(opts.Width, opts.Height)
	if m.syncPause() == nil && !engine.Paused() {
		m.ticker.arm(engine.Interval())
	}
	return m
}

// Init sends the first tick of the schedule armed by NewModel.
func (m Model) Init() tea.Cmd {
	return m.ticker.Continue()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.ticker.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.engine.Restart()
		m.userPaused = false
		m.scoreSaved = false
		if m.tooSmall {
			m.engine.SetPaused(true)
			m.ticker.Stop()
			return m, nil
		}
		return m, m.ticker.Start(m.engine.Interval())

	case key.Matches(msg, m.keys.Pause):
		return m.togglePause()
	}

	if d, ok := m.keys.Direction(msg); ok {
		if m.engine.ChangeDirection(d) {
			return m, m.ticker.Start(m.engine.Interval())
		}
	}
	return m, nil
}

// togglePause pauses or resumes a running game.
func (m Model) togglePause() (tea.Model, tea.Cmd) {
	if m.engine.State().GameOver || m.tooSmall {
		return m, nil
	}
	m.userPaused = !m.userPaused
	return m, m.syncPause()
}

// syncPause pauses the engine while the player asked for it or the board
// does not fit, and moves the tick schedule along with it.
func (m *Model) syncPause() tea.Cmd {
	want := (m.userPaused || m.tooSmall) && !m.engine.State().GameOver
	if want == m.engine.Paused() {
		return nil
	}
	m.engine.SetPaused(want)
	if want {
		m.ticker.Stop()
		return nil
	}
	return m.ticker.Start(m.engine.Interval())
}

// handleResize processes window resize events. A board that no longer fits
// pauses the game until the terminal grows again.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.layout()

	m.tooSmall = !m.engine.FitsScreen(msg.Width, msg.Height)
	return m, m.syncPause()
}

// handleTick advances the game on ticks of the live schedule.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticker.Accept(msg) {
		return m, nil
	}

	before := m.engine.Interval()
	ev, err := m.engine.Tick()
	if err != nil {
		m.logger.Warn("high score not saved", "error", err)
	}

	if ev.Died {
		m.ticker.Stop()
		m.saveScore()
		return m, nil
	}

	if after := m.engine.Interval(); after != before {
		m.logger.Debug("speed up", "score", m.engine.State().Score, "interval", after)
		return m, m.ticker.Start(after)
	}
	return m, m.ticker.Continue()
}

// saveScore records the finished game once.
func (m *Model) saveScore() {
	score := m.engine.State().Score
	if m.scoreSaved || score == 0 {
		return
	}
	m.scoreSaved = true
	if m.scores == nil {
		return
	}
	if _, err := m.scores.SaveScore(m.engine.ID(), score); err != nil {
		m.logger.Warn("score not recorded", "score", score, "error", err)
		return
	}
	snap := m.engine.Snapshot()
	m.logger.Info("game over",
		"score", snap.Score,
		"high_score", snap.HighScore,
		"length", snap.SnakeLen,
		"ticks", snap.Tick,
	)
}

// layout sizes the screen buffer, leaving rows for help when it fits.
func (m *Model) layout() {
	h := m.height
	if m.helpVisible() {
		h -= m.helpRows()
	}
	m.screen.Resize(m.width, h)
}

// helpRows returns the height of the help view.
func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 1
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// helpVisible reports whether the help view has room below the board.
func (m Model) helpVisible() bool {
	return m.showHelp && m.engine.FitsScreen(m.width, m.height-m.helpRows())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.helpVisible() {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Run starts the Bubble Tea program for engine on the local terminal.
func Run(engine *snake.Engine, opts Options) error {
	p := tea.NewProgram(
		NewModel(engine, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
