package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
)

// applyGlobalFlags validates the global flags and hands the puzzle settings
// to the game package before any game is created.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or expert)", flagDifficulty)
		}
	}
	if flagDiscs < 0 || flagDiscs > config.MaxDiscs {
		return fmt.Errorf("--discs must be in 1..%d, got %d", config.MaxDiscs, flagDiscs)
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	hanoi.SetConfigPath(flagConfig)
	hanoi.SetDifficultyPreset(flagDifficulty)
	hanoi.SetDiscCount(flagDiscs)
	return nil
}

// newLogger builds the timestamped logger used by every command.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// tuiLogger returns the logger of the full-screen commands. Writing to the
// terminal would tear the screen, so it logs to --log-file or nowhere.
// The returned close function is never nil.
func tuiLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard, "hanoi"), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard, "hanoi"), func() {}
	}
	return newLogger(f, "hanoi"), func() { f.Close() }
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}
