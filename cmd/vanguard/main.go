// vanguard is a terminal vertical scrolling shooter, playable locally or
// over SSH.
//
// Usage:
//
//	vanguard play [variant]  - Play in the local terminal
//	vanguard menu            - Interactive mode picker
//	vanguard scores          - Show high scores
//	vanguard serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.vanguard/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its variants
	_ "github.com/vovakirdan/vanguard/internal/games/vanguard"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vanguard",
	Short: "Vertical Vanguard - a terminal vertical shooter",
	Long: `Vertical Vanguard is a 64x64 vertical scrolling shooter for the
terminal. Fight descending enemies while managing fuel, ammo, hull
stability and lives; pickups refill resources and grant timed powerups.

Available commands:
  play     - Play in the local terminal
  menu     - Interactive mode picker
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  vanguard play
  vanguard play vanguard_classic
  vanguard play --difficulty hard --seed 42
  vanguard scores --tui
  vanguard serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.vanguard/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
