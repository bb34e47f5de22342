// vectorrisk is a minimalist arcade shooter: steer the emitter with the
// pointer, click to fire a beam, and survive the falling polygons.
//
// Usage:
//
//	vectorrisk play          - Play in the terminal
//	vectorrisk window        - Play in a desktop window
//	vectorrisk config        - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Load tuning from a YAML file
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Write logs to a file
//	--mute                 - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
	flagVolume     float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vectorrisk",
	Short: "Vector Risk - a minimalist vector arcade shooter",
	Long: `Vector Risk is a small arcade shooter. Your emitter follows the pointer
along the bottom of the field; click to fire a vertical beam. Polygons fall
from the top and fall faster over time. Points depend on how high a polygon
was when the beam hit it. One touch ends the run.

Available commands:
  play     - Play in the terminal (mouse reporting recommended)
  window   - Play in a desktop window
  config   - Print the default tuning YAML

Examples:
  vectorrisk play
  vectorrisk window --difficulty hard
  vectorrisk play --seed 42 --mute
  vectorrisk config > ~/.vectorrisk/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 1, "Sound volume (1 = unchanged)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
