// hanoi is a terminal Towers of Hanoi with animated moves, an optimal solver
// and shared high scores.
//
// Usage:
//
//	hanoi list               - List available variants
//	hanoi play [variant]     - Play a variant (default: hanoi)
//	hanoi menu               - Start menu to pick a variant interactively
//	hanoi serve              - Start SSH server for remote play
//	hanoi scores [variant]   - Show high scores and best solves
//	hanoi solve              - Print the optimal move list
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.hanoi/scores.db)
//	--config <path>      - Custom puzzle config YAML
//	--difficulty <name>  - Preset: easy, normal, hard, expert
//	--discs <n>          - Disc count, overrides config and preset
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs of TUI commands to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDiscs      int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Towers of Hanoi in your terminal",
	Long: `Move the whole stack of discs to the last rod, one disc at a time,
never placing a larger disc on a smaller one.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores and best solves
  solve    - Print the optimal solution

Examples:
  hanoi play
  hanoi play hanoi_relaxed --discs 6
  hanoi menu
  hanoi serve --ssh :2222
  hanoi solve --discs 4`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hanoi/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert")
	rootCmd.PersistentFlags().IntVar(&flagDiscs, "discs", 0, "Number of discs (overrides config and preset)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play and menu (default: no logging)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(solveCmd)
}
