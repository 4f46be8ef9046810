package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fillRow occupies every column of the row except the listed gaps.
func fillRow(b *Board, row int, gaps ...int) {
	skip := map[int]bool{}
	for _, g := range gaps {
		skip[g] = true
	}
	for col := range Cols {
		if !skip[col] {
			b.Set(row, col, core.ColorGray)
		}
	}
}

func pieceAt(k Kind, x, y int) *Piece {
	p := NewPiece(k)
	p.X = x
	p.Y = y
	return p
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 0, b.Filled())
	for row := range Rows {
		for col := range Cols {
			require.True(t, b.IsEmptyAt(row, col))
		}
	}
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0, 0))
	assert.True(t, InBounds(Rows-1, Cols-1))
	assert.False(t, InBounds(-1, 0))
	assert.False(t, InBounds(0, -1))
	assert.False(t, InBounds(Rows, 0))
	assert.False(t, InBounds(0, Cols))

	b := NewBoard()
	assert.False(t, b.IsEmptyAt(-1, 0), "off-board cells are never empty")
	assert.Panics(t, func() { b.Set(Rows, 0, core.ColorRed) })
	assert.Panics(t, func() { b.At(0, Cols) })
}

func TestCollides(t *testing.T) {
	b := NewBoard()
	b.Set(10, 5, core.ColorRed)

	tests := []struct {
		name   string
		piece  *Piece
		dx, dy int
		want   bool
	}{
		{"spawn", NewPiece(KindT), 0, 0, false},
		{"left wall", pieceAt(KindO, 0, 5), -1, 0, true},
		{"at left wall", pieceAt(KindO, 0, 5), 0, 0, false},
		{"right wall", pieceAt(KindO, Cols-2, 5), 1, 0, true},
		{"at right wall", pieceAt(KindO, Cols-2, 5), 0, 0, false},
		{"floor", pieceAt(KindO, 0, Rows-2), 0, 1, true},
		{"on floor", pieceAt(KindO, 0, Rows-2), 0, 0, false},
		{"above top", pieceAt(KindO, 4, -1), 0, 0, false},
		{"far above top", pieceAt(KindI, 0, -5), 0, 0, false},
		{"above top outside side", pieceAt(KindO, -1, -3), 0, 0, true},
		{"occupied", pieceAt(KindO, 4, 8), 0, 1, true},
		{"next to occupied", pieceAt(KindO, 6, 9), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.Collides(tc.piece, tc.dx, tc.dy))
		})
	}
}

func TestPlace(t *testing.T) {
	b := NewBoard()
	b.Place(pieceAt(KindO, 3, 7))

	assert.Equal(t, 4, b.Filled())
	for _, pt := range []core.Point{{X: 3, Y: 7}, {X: 4, Y: 7}, {X: 3, Y: 8}, {X: 4, Y: 8}} {
		c := b.At(pt.Y, pt.X)
		assert.True(t, c.Occupied)
		assert.Equal(t, core.ColorYellow, c.Color)
	}
}

func TestPlaceDropsCellsAboveTop(t *testing.T) {
	b := NewBoard()
	b.Place(pieceAt(KindO, 0, -1))

	assert.Equal(t, 2, b.Filled())
	assert.True(t, b.At(0, 0).Occupied)
	assert.True(t, b.At(0, 1).Occupied)
}

func TestClearRowShiftsRowsAbove(t *testing.T) {
	b := NewBoard()
	fillRow(b, Rows-1)
	b.Set(Rows-2, 3, core.ColorRed)
	b.Set(0, 7, core.ColorBlue)

	require.True(t, b.IsRowFull(Rows-1))
	assert.Equal(t, 1, b.ClearFullRows())

	assert.Equal(t, 2, b.Filled())
	assert.Equal(t, Cell{Occupied: true, Color: core.ColorRed}, b.At(Rows-1, 3))
	assert.Equal(t, Cell{Occupied: true, Color: core.ColorBlue}, b.At(1, 7))
	assert.False(t, b.At(0, 7).Occupied, "top row is empty after a clear")
}

func TestClearFullRowsNonAdjacent(t *testing.T) {
	b := NewBoard()
	fillRow(b, 15)
	fillRow(b, 16, 0)
	fillRow(b, 17)
	b.Set(14, 9, core.ColorGreen)

	assert.Equal(t, 2, b.ClearFullRows())

	// Row 16 slides to 17 and the marker from 14 to 16.
	assert.False(t, b.IsRowFull(17))
	assert.False(t, b.At(17, 0).Occupied)
	assert.True(t, b.At(17, 1).Occupied)
	assert.True(t, b.At(16, 9).Occupied)
	assert.Equal(t, 10, b.Filled(), "nine cells of old row 16 plus the marker")
}

func TestClearFullRowsAdjacent(t *testing.T) {
	b := NewBoard()
	fillRow(b, Rows-1)
	fillRow(b, Rows-2)
	fillRow(b, Rows-3, 4)

	assert.Equal(t, 2, b.ClearFullRows())
	assert.Equal(t, Cols-1, b.Filled())
	assert.False(t, b.At(Rows-1, 4).Occupied)
	assert.True(t, b.At(Rows-1, 5).Occupied)
}

func TestClearFullRowsNone(t *testing.T) {
	b := NewBoard()
	fillRow(b, Rows-1, 9)
	assert.Equal(t, 0, b.ClearFullRows())
	assert.Equal(t, Cols-1, b.Filled())
}

func TestReset(t *testing.T) {
	b := NewBoard()
	fillRow(b, 3)
	b.Reset()
	assert.Equal(t, 0, b.Filled())
}
