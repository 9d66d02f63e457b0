package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores and the most recent runs.

Examples:
  bomber scores
  bomber scores --runs 20`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of recent runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores("bomber", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Println("High Scores - Bomber")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bomber play' to set the first high score!")
	} else {
		// Print header
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

		// Print scores
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		fmt.Println()
		highScore, hsErr := store.HighScore("bomber")
		if hsErr == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	// Recent runs with outcomes
	runs, err := store.RecentRuns("bomber", flagRuns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		return
	}

	wins, err := store.WinCount("bomber")
	if err != nil {
		wins = 0
	}

	fmt.Println()
	fmt.Printf("Recent Runs (%d wins total)\n", wins)
	fmt.Println()
	fmt.Printf("  %-16s  %-8s  %-8s  %-6s  %s\n", "Outcome", "Score", "Enemies", "Bombs", "Date")
	fmt.Printf("  %-16s  %-8s  %-8s  %-6s  %s\n", "-------", "-----", "-------", "-----", "----")
	for _, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-8d  %-8d  %-6d  %s\n",
			run.Outcome, run.Score, run.EnemiesDefeated, run.BombsPlanted, dateStr)
	}
}
