package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vanguard/internal/core"
	"github.com/vovakirdan/vanguard/internal/games/vanguard"
	"github.com/vovakirdan/vanguard/internal/platform/tui"
	"github.com/vovakirdan/vanguard/internal/registry"
	"github.com/vovakirdan/vanguard/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the local terminal",
	Long: `Play Vertical Vanguard in the local terminal.

Variants:
  vanguard          - Standard mode (default)
  vanguard_classic  - One hit kills you, only fuel and ammo drop

Examples:
  vanguard play
  vanguard play vanguard_classic
  vanguard play --difficulty hard
  vanguard play --config my-tuning.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to gameplay config file (YAML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, classic")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "vanguard"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'vanguard menu' to see available modes", gameID)
	}

	if flagConfig != "" {
		vanguard.SetConfigPath(flagConfig)
	}
	if flagDifficulty != "" {
		vanguard.SetDifficultyPreset(flagDifficulty)
	}

	// Reject a broken config here, before the game loop starts
	if err := vanguard.CheckConfig(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: scores unavailable: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, cfg)
}
