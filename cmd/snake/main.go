// snake is a terminal Snake game.
//
// Usage:
//
//	snake                  - Play in this terminal (same as "snake play")
//	snake play             - Play in this terminal
//	snake scores           - Show the score history and high score
//	snake serve            - Start SSH server for remote play
//	snake config           - Show the effective or default config
//
// Global flags:
//
//	--config <path>  - Game config YAML (default: ~/.snake/snake.yaml)
//	--db <path>      - Database path (default: ~/.snake/snake.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around a wrap-around grid",
	Long: `Snake is a terminal game: eat food to grow and score, and do not
run into yourself. The board wraps at every edge and the snake speeds up
as the score climbs.

Available commands:
  play     - Play in this terminal (default)
  scores   - View the score history
  serve    - Start SSH server for remote play
  config   - Show the effective or default config

Examples:
  snake
  snake play --grid 30
  snake scores --tui
  snake serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/snake.db", "Path to database")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
