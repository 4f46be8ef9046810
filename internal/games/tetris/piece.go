package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Spawn position of a new piece's top-left pattern corner.
const (
	SpawnX = Cols/2 - 1
	SpawnY = 0
)

// Piece is the active tetromino: a pattern, its color and its offset.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int
}

// NewPiece returns a piece of the given kind at the spawn position.
func NewPiece(k Kind) *Piece {
	return &Piece{
		Kind:  k,
		Shape: k.Shape(),
		Color: k.Color(),
		X:     SpawnX,
		Y:     SpawnY,
	}
}

// Blocks returns the absolute board coordinates of every occupied cell.
// X is the column, Y the row.
func (p *Piece) Blocks() []core.Point {
	pts := make([]core.Point, 0, 4)
	for r, row := range p.Shape {
		for c, filled := range row {
			if filled {
				pts = append(pts, core.Point{X: p.X + c, Y: p.Y + r})
			}
		}
	}
	return pts
}
