package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loadConfig loads the YAML config, applies flag overrides and validates the
// result.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if f := cmd.Flags().Lookup("grid"); f != nil && f.Changed {
		cfg.GridSize = flagGrid
	}
	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// stores holds the persistence backends for a run. scores is nil when the
// database could not be opened.
type stores struct {
	highScores snake.HighScoreStore
	scores     *storage.Store
}

// openStores opens the database, falling back to an in-memory high score.
// The game still works without persistence.
func openStores(logger *log.Logger) stores {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, high score will not persist", "path", flagDBPath, "error", err)
		return stores{highScores: storage.NewMemory()}
	}
	seedHighScore(store, logger)
	return stores{highScores: store, scores: store}
}

// seedHighScore raises the persisted high score to the best score in the
// history when the history holds a better one, e.g. a database written
// before the high score was kept as a setting.
func seedHighScore(store *storage.Store, logger *log.Logger) {
	best, err := store.HighScore(snake.GameID)
	if err != nil {
		logger.Warn("could not read score history", "error", err)
		return
	}
	if best == 0 {
		return
	}
	if current, ok := store.Get(snake.HighScoreKey); ok && current >= best {
		return
	}
	if err := store.Set(snake.HighScoreKey, best); err != nil {
		logger.Warn("could not seed high score", "score", best, "error", err)
	}
}

// Close closes the database if one is open.
func (s stores) Close() {
	if s.scores != nil {
		//nolint:errcheck // Nothing left to do on exit
		s.scores.Close()
	}
}

// newLogger returns a logger writing to path, or a discarding logger when
// path is empty. The terminal belongs to the game while it runs.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})
	//nolint:errcheck // Best-effort close
	return logger, func() { f.Close() }, nil
}
