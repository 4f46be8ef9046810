package tetris

import (
	"math/rand"
)

// Status is the session state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Scoring and level defaults.
const (
	DefaultPointsPerLine = 10
	DefaultStartLevel    = 1
)

// Hooks are optional callbacks fired as the session changes.
// Any of them may be nil.
type Hooks struct {
	ScoreChanged func(score int)
	LevelChanged func(level int)
	GameOver     func(score int) // fired once per session
}

// Options configures a new engine.
type Options struct {
	StartLevel    int // level applied by every Start; values below 1 mean 1
	PointsPerLine int // score per cleared row; 0 means DefaultPointsPerLine
}

// Engine owns one session: the board, the active and next pieces, and the
// score, level and status. It is not safe for concurrent use; the host loop
// serializes all calls.
type Engine struct {
	rng   *rand.Rand
	board *Board
	hooks Hooks

	current *Piece
	next    *Piece

	score  int
	lines  int
	pieces int // pieces locked this session
	level  int
	status Status

	startLevel    int
	pointsPerLine int
}

// NewEngine creates an engine in the NotStarted state.
func NewEngine(rng *rand.Rand, opts Options) *Engine {
	if opts.StartLevel < 1 {
		opts.StartLevel = DefaultStartLevel
	}
	if opts.PointsPerLine <= 0 {
		opts.PointsPerLine = DefaultPointsPerLine
	}
	return &Engine{
		rng:           rng,
		board:         NewBoard(),
		level:         opts.StartLevel,
		startLevel:    opts.StartLevel,
		pointsPerLine: opts.PointsPerLine,
		status:        StatusNotStarted,
	}
}

// SetHooks replaces the notification callbacks.
func (e *Engine) SetHooks(h Hooks) {
	e.hooks = h
}

// Start begins a fresh session and performs the first gravity step at once.
// It is refused while the current session is paused.
func (e *Engine) Start() bool {
	if e.status == StatusPaused {
		return false
	}

	e.board.Reset()
	e.score = 0
	e.lines = 0
	e.pieces = 0
	e.level = e.startLevel
	e.current = RandomPiece(e.rng)
	e.next = RandomPiece(e.rng)
	e.status = StatusRunning

	e.notifyScore()
	e.notifyLevel()

	e.Drop()
	return true
}

// TogglePause switches between Running and Paused.
// It has no effect before the first Start or after game over.
func (e *Engine) TogglePause() bool {
	switch e.status {
	case StatusRunning:
		e.status = StatusPaused
	case StatusPaused:
		e.status = StatusRunning
	default:
		return false
	}
	return true
}

// acceptsInput reports whether piece commands apply. Commands are honored
// while paused; only a missing piece or a finished session rejects them.
func (e *Engine) acceptsInput() bool {
	return e.status == StatusRunning || e.status == StatusPaused
}

// Move shifts the active piece by (dx, dy) if the target is free.
func (e *Engine) Move(dx, dy int) bool {
	if !e.acceptsInput() {
		return false
	}
	return e.move(dx, dy)
}

func (e *Engine) move(dx, dy int) bool {
	if e.board.Collides(e.current, dx, dy) {
		return false
	}
	e.current.X += dx
	e.current.Y += dy
	return true
}

// MoveLeft shifts the active piece one column left.
func (e *Engine) MoveLeft() bool { return e.Move(-1, 0) }

// MoveRight shifts the active piece one column right.
func (e *Engine) MoveRight() bool { return e.Move(1, 0) }

// SoftDrop moves the active piece one row down. It never locks.
func (e *Engine) SoftDrop() bool { return e.Move(0, 1) }

// Rotate turns the active piece clockwise in place. The rotation is
// discarded when the new pattern collides; no offsets are tried.
func (e *Engine) Rotate() bool {
	if !e.acceptsInput() {
		return false
	}

	original := e.current.Shape
	e.current.Shape = original.Rotated()
	if e.board.Collides(e.current, 0, 0) {
		e.current.Shape = original
		return false
	}
	return true
}

// HardDrop moves the active piece down until it rests, then locks it.
// Returns the number of rows travelled.
func (e *Engine) HardDrop() int {
	if !e.acceptsInput() {
		return 0
	}

	rows := 0
	for e.move(0, 1) {
		rows++
	}
	e.lock()
	return rows
}

// Drop performs one gravity step: the piece descends a row, or locks when
// it cannot. Returns true if the piece moved. Only a running session drops.
func (e *Engine) Drop() bool {
	if e.status != StatusRunning {
		return false
	}
	if e.move(0, 1) {
		return true
	}
	e.lock()
	return false
}

// lock writes the active piece into the board, clears full rows, promotes
// the next piece and checks the spawn for game over.
func (e *Engine) lock() {
	e.board.Place(e.current)
	e.pieces++

	if cleared := e.board.ClearFullRows(); cleared > 0 {
		e.lines += cleared
		e.score += cleared * e.pointsPerLine
		e.notifyScore()
	}

	e.current = e.next
	e.next = RandomPiece(e.rng)

	if e.board.Collides(e.current, 0, 0) {
		e.status = StatusGameOver
		if e.hooks.GameOver != nil {
			e.hooks.GameOver(e.score)
		}
	}
}

// SetLevel changes the level, and with it the drop interval.
// Levels below 1 are raised to 1.
func (e *Engine) SetLevel(level int) {
	level = max(level, 1)
	if level == e.level {
		return
	}
	e.level = level
	e.notifyLevel()
}

func (e *Engine) notifyScore() {
	if e.hooks.ScoreChanged != nil {
		e.hooks.ScoreChanged(e.score)
	}
}

func (e *Engine) notifyLevel() {
	if e.hooks.LevelChanged != nil {
		e.hooks.LevelChanged(e.level)
	}
}

// Status returns the session state.
func (e *Engine) Status() Status { return e.status }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the rows cleared this session.
func (e *Engine) Lines() int { return e.lines }

// Pieces returns the pieces locked this session.
func (e *Engine) Pieces() int { return e.pieces }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Board returns the playfield. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Current returns the active piece, or nil before the first Start.
// Callers must treat it as read-only.
func (e *Engine) Current() *Piece { return e.current }

// Next returns the queued piece, or nil before the first Start.
func (e *Engine) Next() *Piece { return e.next }
