package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/registry"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var (
	flagConfig string
	flagLoad   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. The opening menu offers a new game, loading the
previous save, or exiting.

Controls:
  WASD/Arrows - Move
  Space       - Plant bomb
  E           - Save game
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  bomber play
  bomber play --seed 42
  bomber play --load ./save.txt
  bomber play --config ./my-bomber.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLoad, "load", "", "Load this save file immediately, skipping the menu")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early so the map layout fits the window
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		SavePath: resolveSavePath(flagSavePath),
	}

	// Set config and load paths before creation
	bomber.SetConfigPath(flagConfig)
	if flagLoad != "" {
		bomber.SetLoadPath(flagLoad)
	}

	// Create game instance
	game, err := registry.Create("bomber")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveSavePath expands the default save location when no explicit
// path was given. An empty result disables saving.
func resolveSavePath(path string) string {
	if path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "save.txt"
	}
	return filepath.Join(home, ".bomber", "save.txt")
}
