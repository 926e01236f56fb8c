package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	hcore "github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

var (
	flagSolveTo    int
	flagSolveCount bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the optimal solution",
	Long: `Print the shortest move list that brings every disc from rod 1 to the
destination rod of a three-rod board. The disc count comes from --discs,
then --difficulty, then the config file.

Examples:
  hanoi solve --discs 3
  hanoi solve --discs 5 --to 2
  hanoi solve --difficulty expert --count`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveTo, "to", 3, "Destination rod (1-3)")
	solveCmd.Flags().BoolVar(&flagSolveCount, "count", false, "Print only the number of moves")
}

// solveDiscs resolves the disc count the same way the game does.
func solveDiscs() (int, error) {
	if flagDiscs > 0 {
		return flagDiscs, nil
	}
	cfg, err := config.LoadHanoi(flagConfig)
	if err != nil {
		return 0, err
	}
	if p, ok := config.ParsePreset(flagDifficulty); ok {
		config.ApplyHanoiPreset(&cfg, p)
	}
	return cfg.Puzzle.Discs, nil
}

func runSolve(cmd *cobra.Command, _ []string) error {
	discs, err := solveDiscs()
	if err != nil {
		return err
	}

	moves, err := hcore.SolveFresh(discs, flagSolveTo)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagSolveCount {
		fmt.Fprintln(out, len(moves))
		return nil
	}

	fmt.Fprintf(out, "%d discs, rod 1 to rod %d: %d moves\n\n", discs, flagSolveTo, len(moves))
	width := len(fmt.Sprint(len(moves)))
	for i, mv := range moves {
		fmt.Fprintf(out, "  %*d. %s\n", width, i+1, mv)
	}
	return nil
}
