// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// MaxGridSize bounds the board so it still fits a large terminal.
const MaxGridSize = 64

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	GridSize int         `yaml:"grid_size"`
	Sound    bool        `yaml:"sound"`
	ShowHelp bool        `yaml:"show_help"`
	Theme    ThemeConfig `yaml:"theme"`
}

// ThemeConfig names the colors of each board element.
type ThemeConfig struct {
	Snake  string `yaml:"snake"`
	Head   string `yaml:"head"`
	Food   string `yaml:"food"`
	Grid   string `yaml:"grid"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
	Alert  string `yaml:"alert"`
}

// Validate checks every field and reports the first bad one.
func (c SnakeConfig) Validate() error {
	if c.GridSize < snake.MinGridSize || c.GridSize > MaxGridSize {
		return fmt.Errorf("%w: grid_size %d must be between %d and %d",
			ErrInvalid, c.GridSize, snake.MinGridSize, MaxGridSize)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	return nil
}

// Resolve converts color names into a snake.Theme.
func (t ThemeConfig) Resolve() (snake.Theme, error) {
	var theme snake.Theme
	fields := []struct {
		name  string
		value string
		dst   *core.Color
	}{
		{"snake", t.Snake, &theme.Snake},
		{"head", t.Head, &theme.Head},
		{"food", t.Food, &theme.Food},
		{"grid", t.Grid, &theme.Grid},
		{"border", t.Border, &theme.Border},
		{"text", t.Text, &theme.Text},
		{"alert", t.Alert, &theme.Alert},
	}
	for _, f := range fields {
		c, ok := core.ParseColor(f.value)
		if !ok {
			return snake.Theme{}, fmt.Errorf("%w: theme.%s color %q", ErrInvalid, f.name, f.value)
		}
		*f.dst = c
	}
	return theme, nil
}
