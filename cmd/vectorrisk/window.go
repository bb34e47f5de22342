package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vector-risk/internal/audio"
	"github.com/vovakirdan/vector-risk/internal/core"
	"github.com/vovakirdan/vector-risk/internal/game"
	"github.com/vovakirdan/vector-risk/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Vector Risk in an 800x600 window.

Controls:
  Mouse   - Aim (the emitter follows the pointer)
  Click   - Fire / start / continue
  Esc     - Quit

Examples:
  vectorrisk window
  vectorrisk window --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(flagLogLevel, flagLogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(flagConfig, flagDifficulty, logger)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	var player audio.Player = audio.Nop{}
	if !flagMute {
		player = desktop.NewAudioPlayer(audio.NewBank(audio.DefaultSampleRate, flagSeed), flagVolume)
	}

	ledger := openLedger(logger)
	if ledger != nil {
		defer ledger.Close()
	}

	st, err := desktop.Run(game.New(cfg), rt, desktop.Options{
		Audio:  player,
		Ledger: ledger,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printSummary(cmd.OutOrStdout(), st, ledger)
	return nil
}
