package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState

	// Terminal size; the game gets what the help footer leaves over
	width  int
	height int

	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards session events.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.layout()

	if obs, ok := game.(core.Observable); ok {
		obs.Observe(&logObserver{logger: logger})
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session ready", "game", m.game.ID(), "seed", m.config.Seed, "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		m.resizeGame()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("session closed", "score", m.gameState.Score)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()
	m.resizeGame()
	return m, nil
}

// layout sizes the game screen to the terminal minus the help footer.
func (m *Model) layout() {
	m.help.Width = m.width
	footer := lipgloss.Height(m.help.View(m.keys.Keys))
	m.config.ScreenW = m.width
	m.config.ScreenH = max(m.height-footer, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
}

// resizeGame passes the new screen size to the game. Games that cannot
// resize in place are reset unless their session is over.
func (m *Model) resizeGame() {
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen to ~/.tetris/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: locate home directory: %w", err)
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// logObserver writes session notifications to the session logger.
type logObserver struct {
	logger *log.Logger
}

func (o *logObserver) ScoreChanged(score int) {
	o.logger.Debug("score changed", "score", score)
}

func (o *logObserver) LevelChanged(level int) {
	o.logger.Debug("level changed", "level", level)
}

func (o *logObserver) GameOver(score int) {
	o.logger.Info("game over", "score", score)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
