package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	kindCount
)

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is a rectangular, row-major occupancy pattern.
// Shapes are never mutated in place; rotation builds a new one.
type Shape [][]bool

// shapeDef is a catalog entry.
type shapeDef struct {
	color   core.Color
	pattern []string
}

// catalog holds the spawn orientation of every kind. '#' is an occupied cell.
var catalog = [kindCount]shapeDef{
	KindI: {core.ColorCyan, []string{"####"}},
	KindJ: {core.ColorBlue, []string{"#..", "###"}},
	KindL: {core.ColorOrange, []string{"..#", "###"}},
	KindO: {core.ColorYellow, []string{"##", "##"}},
	KindS: {core.ColorGreen, []string{".##", "##."}},
	KindT: {core.ColorPurple, []string{".#.", "###"}},
	KindZ: {core.ColorRed, []string{"##.", ".##"}},
}

// Kinds returns all piece kinds in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := KindI; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Shape returns a fresh copy of the kind's spawn pattern.
func (k Kind) Shape() Shape {
	return ParseShape(catalog[k].pattern...)
}

// Color returns the kind's color tag.
func (k Kind) Color() core.Color {
	return catalog[k].color
}

// ParseShape builds a shape from rows of '#' (occupied) and any other rune (empty).
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, row := range rows {
		s[r] = make([]bool, 0, len(row))
		for _, ch := range row {
			s[r] = append(s[r], ch == '#')
		}
	}
	return s
}

// Rows returns the pattern height.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the pattern width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotated returns the pattern turned 90° clockwise: the transpose with each
// resulting row reversed. A rows×cols pattern becomes cols×rows.
func (s Shape) Rotated() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for i := range cols {
		out[i] = make([]bool, rows)
		for j := range rows {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Equal reports whether two patterns have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the pattern with '#' and '.' rows separated by newlines.
func (s Shape) String() string {
	buf := make([]rune, 0, s.Rows()*(s.Cols()+1))
	for r, row := range s {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for _, filled := range row {
			if filled {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}

// RandomKind draws a kind uniformly at random. Draws are independent.
func RandomKind(rng *rand.Rand) Kind {
	return Kind(rng.Intn(int(kindCount)))
}

// RandomPiece returns a fresh piece of a uniformly chosen kind at the spawn point.
func RandomPiece(rng *rand.Rand) *Piece {
	return NewPiece(RandomKind(rng))
}
