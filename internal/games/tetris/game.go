// Package tetris implements the falling-block puzzle: the shape catalog,
// the board, the session engine, the gravity drive loop and the arcade
// game adapter that maps platform actions onto engine commands.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry identifier.
const GameID = "tetris"

// scoreFlashTicks is how long the HUD highlights a new score.
const scoreFlashTicks = 30

// Package-level settings chosen on the command line before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetStartLevel overrides the start level from config and preset. 0 clears it.
func SetStartLevel(level int) {
	startLevel = max(level, 0)
}

// LoadConfig resolves the effective configuration from the config file, the
// difficulty preset and the start level override.
func LoadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)
	if startLevel > 0 {
		cfg.Level.Start = startLevel
	}
	return cfg, nil
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts an Engine to the platform's fixed-step game interface.
type Game struct {
	cfg     config.TetrisConfig
	engine  *Engine
	gravity *Gravity

	tick     uint64
	tickDur  time.Duration
	observer core.Observer

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	scoreFlash int // Ticks left on the HUD score highlight
}

// New creates a tetris game that resolves its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a tetris game with a fixed configuration.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Observe registers the receiver of session notifications.
func (g *Game) Observe(o core.Observer) {
	g.observer = o
}

// Reset builds a fresh engine in the NotStarted state.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if g.cfg == (config.TetrisConfig{}) {
		cfg, err := LoadConfig()
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		g.cfg = cfg
	}

	g.engine = NewEngine(rand.New(rand.NewSource(rt.Seed)), Options{
		StartLevel:    g.cfg.Level.Start,
		PointsPerLine: g.cfg.Scoring.PointsPerLine,
	})
	g.engine.SetHooks(Hooks{
		ScoreChanged: g.onScoreChanged,
		LevelChanged: g.onLevelChanged,
		GameOver:     g.onGameOver,
	})
	g.gravity = NewGravity(g.engine)

	g.tick = 0
	g.tickDur = rt.TickDuration()
	g.scoreFlash = 0
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.checkScreenSize()
}

// Engine exposes the session engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step applies this tick's actions in arrival order, then advances gravity
// by one tick of game time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.scoreFlash > 0 {
		g.scoreFlash--
	}

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		g.apply(a)
	}

	g.gravity.Advance(g.tickDur)

	return core.StepResult{State: g.State()}
}

// apply maps one platform action onto an engine command.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionStart:
		g.start()
	case core.ActionRestart:
		if g.engine.Status() == StatusGameOver {
			g.start()
		}
	case core.ActionPause:
		g.engine.TogglePause()
	case core.ActionLeft:
		g.engine.MoveLeft()
	case core.ActionRight:
		g.engine.MoveRight()
	case core.ActionSoftDrop:
		g.engine.SoftDrop()
	case core.ActionRotate:
		g.engine.Rotate()
	case core.ActionHardDrop:
		g.engine.HardDrop()
	}
}

// start begins a new session and restarts the gravity clock.
func (g *Game) start() {
	if g.engine.Start() {
		g.gravity.Reset()
	}
}

func (g *Game) onScoreChanged(score int) {
	if score > 0 {
		g.scoreFlash = scoreFlashTicks
	}
	if g.observer != nil {
		g.observer.ScoreChanged(score)
	}
}

func (g *Game) onLevelChanged(level int) {
	if g.observer != nil {
		g.observer.LevelChanged(level)
	}
}

func (g *Game) onGameOver(score int) {
	if g.observer != nil {
		g.observer.GameOver(score)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.engine.Status()
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		GameOver: status == StatusGameOver,
		Paused:   status == StatusPaused || g.tooSmall,
	}
}
