package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a tetris session in this terminal.

Controls:
  Left/H, Right/L   - Move piece
  Down/J            - Soft drop
  Up/K/X            - Rotate clockwise
  Space             - Hard drop
  Enter             - Start
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot to ~/.tetris/screenshots
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 5
  fixed  - Start at the config's level.start

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --level 7
  tetris play --config ./my-tetris.yaml --log-file tetris.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Surface config errors before the alt screen hides them
	if _, err := tetris.LoadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("tetris", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(tetris.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, cfg, logger)

	//nolint:errcheck // Best-effort close, nothing left to log to
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
