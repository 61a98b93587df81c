package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSeed    int64
	flagGrid    int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space           - Pause
  R/Enter           - Restart
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play --grid 30
  snake play --seed 42 --log-file snake.log
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command runs play
// too, so it carries them as well.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().IntVar(&flagGrid, "grid", snake.DefaultGridSize, "Grid size in cells (overrides config)")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug log to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	st := openStores(logger)
	defer st.Close()
	if st.scores == nil {
		fmt.Fprintln(os.Stderr, "Warning: could not open database, high score will not persist")
	}

	engineCfg := snake.EngineConfig{
		GridSize: cfg.GridSize,
		Seed:     flagSeed,
		Store:    st.highScores,
		Theme:    theme,
	}
	if cfg.Sound {
		engineCfg.Cue = tui.NewBell(os.Stdout)
	}
	engine, err := snake.NewEngine(engineCfg)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Width:    width,
		Height:   height,
		ShowHelp: cfg.ShowHelp,
		Logger:   logger,
	}
	if st.scores != nil {
		opts.Scores = st.scores
	}

	logger.Info("game started", "grid", cfg.GridSize, "seed", flagSeed, "high_score", engine.HighScore())
	if err := tui.Run(engine, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
