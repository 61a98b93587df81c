package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It matches the
// embedded defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		GridSize: 20,
		Sound:    true,
		ShowHelp: true,
		Theme: ThemeConfig{
			Snake:  "green",
			Head:   "bright_green",
			Food:   "bright_red",
			Grid:   "gray",
			Border: "white",
			Text:   "bright_green",
			Alert:  "bright_red",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
