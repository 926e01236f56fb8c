package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/registry"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores and best solves",
	Long: `Display the top 10 scores and the 10 best hand solves of a variant
(default: hanoi). Use --discs to list solves of one disc count only.

Examples:
  hanoi scores
  hanoi scores hanoi_relaxed
  hanoi scores --discs 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "hanoi"
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hanoi list' to see available variants.")
		os.Exit(1)
	}
	title := info.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	solves, err := store.BestSolves(gameID, flagDiscs, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 && len(solves) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hanoi play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Best Solves")
	fmt.Println()
	fmt.Printf("  %-4s  %-5s  %-10s  %-8s  %s\n", "Rank", "Discs", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-5s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----", "----")
	for i, e := range solves {
		moves := fmt.Sprintf("%d/%d", e.Moves, e.OptimalMoves)
		fmt.Printf("  %-4d  %-5d  %-10s  %-8s  %s\n",
			i+1, e.Discs, moves, e.Duration.Round(100*time.Millisecond), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Solved by hand: %d  By the solver: %d\n",
			stats.HighScore, stats.Solves, stats.AutoSolves)
	}
}
