// tetris is a falling-block puzzle for the terminal.
//
// Usage:
//
//	tetris                   - Play in this terminal (same as "tetris play")
//	tetris play              - Play in this terminal
//	tetris serve             - Start SSH server for remote play
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Load configuration from a YAML file
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--level <n>            - Start level, overrides config and preset
//	--log-file <path>      - Write logs to a file (default: discarded)
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal rendition of the classic falling-block puzzle.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --level 4 --seed 42
  tetris serve --ssh :2222
  tetris config --config ./my-tetris.yaml`,
	PersistentPreRunE: applyGameFlags,
	Run:               runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagLevel, "level", 0, "Start level (0 = from config or preset)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play discards logs by default)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameFlags validates the game flags and hands them to the game package
// before any game instance is created.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagLevel < 0 {
		return fmt.Errorf("%w: level must be at least 1, got %d", config.ErrInvalidConfig, flagLevel)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
	tetris.SetStartLevel(flagLevel)
	return nil
}
