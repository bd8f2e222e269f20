package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/engine"
	"github.com/vovakirdan/pixel-snake/internal/platform/tui"
	"github.com/vovakirdan/pixel-snake/internal/platform/window"
	"github.com/vovakirdan/pixel-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play the game",
	Long: `Start a game with the given frontend (default: window).

Controls:
  Arrow keys - Steer
  P          - Pause / resume
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit (terminal); close the window to quit (window)

Examples:
  snake play
  snake play terminal
  snake play window --config ./my-snake.json --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	frontendID := window.ID
	if len(args) == 1 {
		frontendID = args[0]
	}

	if !registry.Exists(frontendID) {
		return fmt.Errorf("unknown frontend %q, run 'snake frontends' to see available frontends", frontendID)
	}
	cmd.SilenceUsage = true

	// Config errors are fatal before anything is opened.
	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out, closeLog, err := logOutput(frontendID)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	app := engine.NewApp(cfg, logger, flagSeed)
	logger.Info("starting",
		"frontend", frontendID,
		"config", path,
		"size", fmt.Sprintf("%dx%d", cfg.MainWindow.Width, cfg.MainWindow.Height),
		"fps", cfg.MainWindow.FPS,
		"seed", app.Seed,
	)

	frontend, err := registry.Create(frontendID)
	if err != nil {
		return err
	}
	return frontend.Run(cmd.Context(), app)
}

// logOutput picks where logs go. The terminal frontend owns the screen, so
// its logs are dropped unless --log-file is given.
func logOutput(frontendID string) (io.Writer, func() error, error) {
	nop := func() error { return nil }

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		return f, f.Close, nil
	}

	if frontendID == tui.ID {
		return io.Discard, nop, nil
	}
	return os.Stderr, nop, nil
}
