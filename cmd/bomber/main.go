// bomber is a terminal Bomberman: navigate a bounded map, plant timed bombs
// to clear bricks and enemies, and find the hidden exit door.
//
// Usage:
//
//	bomber play              - Start the game (menu: new game / load / exit)
//	bomber scores            - Show high scores and recent runs
//	bomber serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 20, one tick per 50ms)
//	--seed <value>  - Set RNG seed for reproducible level generation
//	--db <path>     - Set database path (default: ~/.bomber/scores.db)
//	--save <path>   - Set save file path (default: ~/.bomber/save.txt)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagSavePath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomber",
	Short: "Bomber - The legend of Bomberman in your terminal",
	Long: `Bomber is a terminal Bomberman. Roam a walled map full of bricks,
traps and enemies, plant timed bombs to carve a path, and uncover the
exit door hidden under one of the bricks.

Available commands:
  play     - Start the game
  scores   - View high scores and recent runs
  serve    - Start SSH server for remote play

Examples:
  bomber play
  bomber play --seed 42
  bomber scores
  bomber serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bomber/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "", "Path to save file (default ~/.bomber/save.txt)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
