package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Playfield dimensions. Fixed for every session.
const (
	Rows = 20
	Cols = 10
)

// Cell is one playfield position: empty, or occupied with a color.
type Cell struct {
	Occupied bool
	Color    core.Color
}

// Board is the Rows×Cols playfield. Row 0 is the top.
type Board struct {
	cells [Rows][Cols]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [Rows][Cols]Cell{}
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// mustBeInBounds panics on an out-of-range coordinate. Callers build
// coordinates from piece geometry that has already passed collision checks.
func mustBeInBounds(row, col int) {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("tetris: cell (row=%d, col=%d) outside %dx%d board", row, col, Rows, Cols))
	}
}

// IsEmptyAt reports whether (row, col) is on the board and empty.
func (b *Board) IsEmptyAt(row, col int) bool {
	return InBounds(row, col) && !b.cells[row][col].Occupied
}

// At returns the cell at (row, col).
func (b *Board) At(row, col int) Cell {
	mustBeInBounds(row, col)
	return b.cells[row][col]
}

// Set occupies (row, col) with the given color.
func (b *Board) Set(row, col int, color core.Color) {
	mustBeInBounds(row, col)
	b.cells[row][col] = Cell{Occupied: true, Color: color}
}

// IsRowFull reports whether every cell in the row is occupied.
func (b *Board) IsRowFull(row int) bool {
	mustBeInBounds(row, 0)
	for col := range Cols {
		if !b.cells[row][col].Occupied {
			return false
		}
	}
	return true
}

// ClearRow removes the row and inserts an empty one at the top.
// Every row above the cleared one shifts down by one.
func (b *Board) ClearRow(row int) {
	mustBeInBounds(row, 0)
	copy(b.cells[1:row+1], b.cells[0:row])
	b.cells[0] = [Cols]Cell{}
}

// ClearFullRows scans top to bottom and clears each full row as it is found.
// Returns the number of rows cleared.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for row := range Rows {
		if b.IsRowFull(row) {
			b.ClearRow(row)
			cleared++
		}
	}
	return cleared
}

// Collides reports whether the piece, offset by (dx, dy), would leave the
// board through a side or the floor, or overlap an occupied cell.
// Cells above the top edge never collide.
func (b *Board) Collides(p *Piece, dx, dy int) bool {
	for r, row := range p.Shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			col := p.X + c + dx
			rowAbs := p.Y + r + dy
			if col < 0 || col >= Cols || rowAbs >= Rows {
				return true
			}
			if rowAbs >= 0 && b.cells[rowAbs][col].Occupied {
				return true
			}
		}
	}
	return false
}

// Place writes the piece's occupied cells into the board with its color.
// Cells above the top edge are dropped.
func (b *Board) Place(p *Piece) {
	for _, pt := range p.Blocks() {
		if pt.Y < 0 {
			continue
		}
		b.Set(pt.Y, pt.X, p.Color)
	}
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for row := range Rows {
		for col := range Cols {
			if b.cells[row][col].Occupied {
				n++
			}
		}
	}
	return n
}
