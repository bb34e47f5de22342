package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vector-risk/internal/audio"
	"github.com/vovakirdan/vector-risk/internal/core"
	"github.com/vovakirdan/vector-risk/internal/game"
	"github.com/vovakirdan/vector-risk/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Vector Risk in the terminal. The playfield is stretched over the
whole window; bigger terminals look better.

Controls:
  Mouse        - Aim (the emitter follows the pointer)
  Click/Space  - Fire / start / continue
  Left/Right   - Nudge the aim point (for terminals without mouse reporting)
  Tab          - Show the runs of this session
  ?            - More help
  Q/Ctrl+C     - Quit

Logs go to --log-file while the game is running; without it they are discarded.

Examples:
  vectorrisk play
  vectorrisk play --difficulty easy
  vectorrisk play --seed 7 --log-file /tmp/vectorrisk.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(flagLogLevel, flagLogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(flagConfig, flagDifficulty, logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var player audio.Player = audio.Nop{}
	if !flagMute {
		spk := audio.NewSpeaker(audio.NewBank(audio.DefaultSampleRate, flagSeed), flagVolume)
		if err := spk.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer spk.Close()
			player = spk
		}
	}

	ledger := openLedger(logger)
	if ledger != nil {
		defer ledger.Close()
	}

	st, err := tui.Run(game.New(cfg), rt, tui.Options{
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
