package tetris

import "time"

// DropInterval returns the gravity period at a level: one second divided by
// the level. Levels below 1 are treated as 1.
func DropInterval(level int) time.Duration {
	return time.Second / time.Duration(max(level, 1))
}

// Gravity paces an engine's drop steps from elapsed game time supplied by
// the host loop. Each drop re-arms with the interval of the level current at
// that moment, so a level change takes effect from the next drop.
//
// While the session is paused the pending time is frozen and resumes on
// unpause; once the session ends it is discarded.
type Gravity struct {
	engine  *Engine
	pending time.Duration
}

// NewGravity creates a drive loop for the engine.
func NewGravity(e *Engine) *Gravity {
	return &Gravity{engine: e}
}

// Reset discards any time accumulated toward the next drop.
func (g *Gravity) Reset() {
	g.pending = 0
}

// Pending returns the time accumulated toward the next drop.
func (g *Gravity) Pending() time.Duration {
	return g.pending
}

// Until returns the time left before the next drop fires.
func (g *Gravity) Until() time.Duration {
	return DropInterval(g.engine.Level()) - g.pending
}

// Advance adds dt of game time and performs every drop that falls due.
// Returns the number of drops performed.
func (g *Gravity) Advance(dt time.Duration) int {
	switch g.engine.Status() {
	case StatusRunning:
	case StatusPaused:
		return 0
	default:
		g.pending = 0
		return 0
	}

	g.pending += dt
	drops := 0
	for g.engine.Status() == StatusRunning {
		interval := DropInterval(g.engine.Level())
		if g.pending < interval {
			break
		}
		g.pending -= interval
		g.engine.Drop()
		drops++
	}

	if g.engine.Status() == StatusGameOver {
		g.pending = 0
	}
	return drops
}
