package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagReset bool
	flagTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the top 10 scores and the persisted high score.

Examples:
  snake scores
  snake scores --tui
  snake scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the score history and the high score")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse all scores in an interactive table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(snake.GameID, snake.HighScoreKey); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	seedHighScore(store, log.New(cmd.ErrOrStderr()))

	// Missing or malformed values read as zero.
	highScore, _ := store.Get(snake.HighScoreKey)

	if flagTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, snake.GameID, snake.Title, highScore, width, height)
	}

	scores, err := store.TopScores(snake.GameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", snake.Title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "High score: %d\n", highScore)
	return nil
}
