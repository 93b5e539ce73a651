package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vanguard/internal/platform/tui"
	"github.com/vovakirdan/vanguard/internal/registry"
	"github.com/vovakirdan/vanguard/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a variant (default: vanguard).

Examples:
  vanguard scores
  vanguard scores vanguard_classic
  vanguard scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "vanguard"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'vanguard play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats != nil {
		fmt.Printf("Best: %d  Runs: %d  Avg: %.1f", stats.HighScore, stats.GamesCount, stats.AvgScore)
		if stats.BestLevel > 0 {
			fmt.Printf("  Best level: %d", stats.BestLevel)
		}
		fmt.Println()
	}

	runs, err := store.RecentRuns(gameID, 5)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Printf("  %-10s  %-6s  %-9s  %s\n", "Score", "Level", "Duration", "Date")
	for _, run := range runs {
		duration := fmt.Sprintf("%dm%02ds", run.Duration/60, run.Duration%60)
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10d  %-6d  %-9s  %s\n", run.Score, run.Level, duration, dateStr)
	}
}
