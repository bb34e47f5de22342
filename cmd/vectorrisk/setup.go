package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vector-risk/internal/config"
	"github.com/vovakirdan/vector-risk/internal/game"
	"github.com/vovakirdan/vector-risk/internal/storage"
)

// newLogger builds the process logger. With no file, fallback receives the
// output; the terminal frontend passes io.Discard because it owns the screen.
// The returned closer must be called on exit.
func newLogger(level, file string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if file != "" {
		if dir := filepath.Dir(file); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "vectorrisk",
		Level:           lvl,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// loadConfig resolves the tuning and applies the difficulty preset.
func loadConfig(path, difficulty string, logger *log.Logger) (config.Config, error) {
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return config.Config{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}

	cfg, source, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	logger.Debug("config loaded", "source", source, "difficulty", preset)
	return cfg, nil
}

// openLedger opens the in-memory run ledger. Failure is not fatal.
func openLedger(logger *log.Logger) *storage.Ledger {
	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		return nil
	}
	return ledger
}

// printSummary reports the session after the frontend exits.
func printSummary(w io.Writer, st game.State, ledger *storage.Ledger) {
	if ledger == nil {
		fmt.Fprintf(w, "High score: %d\n", st.HighScore)
		return
	}
	sum, err := ledger.Summary()
	if err != nil || sum.Runs == 0 {
		fmt.Fprintf(w, "High score: %d\n", st.HighScore)
		return
	}
	fmt.Fprintf(w, "Runs: %d  Best: %d  Kills: %d  Time played: %.1fs\n",
		sum.Runs, sum.Best, sum.Kills, sum.TotalTime)
}
