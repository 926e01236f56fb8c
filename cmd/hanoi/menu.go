package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant and difficulty picker",
	Long: `Start in interactive menu mode.

Pick a variant, then a difficulty or a custom disc count.
Leaving a solved or paused puzzle returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores and best solves
  Esc          - Back
  Q            - Quit

Examples:
  hanoi menu
  hanoi menu --fps 30
  hanoi menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := tuiLogger()
	defer closeLog()
	hanoi.SetLogger(logger)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		selection, updatedCfg, selErr := tui.RunDiscSelector(game.Title(), cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			continue
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			continue
		}
		hanoi.SetDiscCount(selection.Discs)
		logger.Info("game started", "game", game.ID(), "discs", selection.Discs)

		backToMenu, err := tui.RunInMenu(game, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}
}
