package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: hanoi).

Without --discs or --difficulty a disc count menu is shown first.

Controls:
  A Q D S T F     - Move 1→2, 1→3, 2→1, 2→3, 3→1, 3→2
  1-3 then 1-3    - Move between the two rods typed
  Left/Right      - Move the cursor
  Enter/Space     - Pick up the top disc, then drop it
  X               - Let the computer finish the puzzle
  P               - Pause
  R               - Restart
  Esc             - Leave (when solved or paused)
  Ctrl+C          - Quit
  Ctrl+S          - Save a screenshot to ~/.hanoi/screenshots

Examples:
  hanoi play
  hanoi play --difficulty hard
  hanoi play hanoi_relaxed --discs 5
  hanoi play --config ./my-hanoi.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "hanoi"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hanoi list' to see available variants.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	// Ask for a disc count unless the flags chose one
	if flagDiscs == 0 && flagDifficulty == "" {
		selection, updatedCfg, selErr := tui.RunDiscSelector(game.Title(), cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}
		hanoi.SetDiscCount(selection.Discs)
	}

	logger, closeLog := tuiLogger()
	defer closeLog()
	hanoi.SetLogger(logger)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
