// Package tui hosts games in a terminal through Bubble Tea: the fixed-step
// tick loop, key bindings, ANSI rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next simulation tick at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := core.RuntimeConfig{TickRate: tickRate}.TickDuration()
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
