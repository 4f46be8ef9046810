package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fakeGame records what the host feeds it.
type fakeGame struct {
	resets   int
	frames   [][]core.Action
	resizes  [][2]int
	observer core.Observer
	state    core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Observe(o core.Observer) { g.observer = o }
func (g *fakeGame) Resize(w, h int) { g.resizes = append(g.resizes, [2]int{w, h}) }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone().Actions)
	return core.StepResult{State: g.state}
}

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelObservesGame(t *testing.T) {
	g := &fakeGame{}
	newTestModel(g)
	assert.NotNil(t, g.observer)
}

func TestModelReservesHelpFooter(t *testing.T) {
	m := newTestModel(&fakeGame{})
	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 23, m.screen.Height())
}

func TestModelForwardsKeysOnTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd, "tick re-arms")
	m, _ = update(t, m, TickMsg{})

	require.Len(t, g.frames, 2)
	assert.Equal(t, []core.Action{core.ActionStart, core.ActionLeft}, g.frames[0])
	assert.Empty(t, g.frames[1], "frame cleared after each tick")
	assert.False(t, m.quitting)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m, cmd := update(t, m, runeKey('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, [][2]int{{100, 39}}, g.resizes)
	assert.Equal(t, 0, g.resets, "resizable games keep their session")
	assert.Equal(t, 39, m.screen.Height())
}

func TestModelHelpToggle(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	short := m.screen.Height()

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.screen.Height(), short)
	assert.NotEmpty(t, g.resizes)

	m, _ = update(t, m, runeKey('?'))
	assert.Equal(t, short, m.screen.Height())
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{})
	out := m.View()
	assert.Contains(t, out, "fake")
	assert.Contains(t, out, "quit")
}
