package tetris

// Snapshot contains the observable session state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   uint64
	Status string
	Score  int
	Level  int
	Lines  int
	Pieces int

	// Active piece: kind, offset and flattened pattern (1 = filled)
	PieceKind  int
	PieceX     int
	PieceY     int
	PieceCells []int

	NextKind int

	// Board cells (flattened: row*Cols + col = index)
	// Each cell is 0 when empty, or its color + 1 when occupied
	BoardData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	snap := Snapshot{
		Tick:      g.tick,
		Status:    e.Status().String(),
		Score:     e.Score(),
		Level:     e.Level(),
		Lines:     e.Lines(),
		Pieces:    e.Pieces(),
		PieceKind: -1,
		NextKind:  -1,
		BoardData: make([]int, Rows*Cols),
	}

	for row := range Rows {
		for col := range Cols {
			if c := e.Board().At(row, col); c.Occupied {
				snap.BoardData[row*Cols+col] = int(c.Color) + 1
			}
		}
	}

	if p := e.Current(); p != nil {
		snap.PieceKind = int(p.Kind)
		snap.PieceX = p.X
		snap.PieceY = p.Y
		for _, row := range p.Shape {
			for _, filled := range row {
				v := 0
				if filled {
					v = 1
				}
				snap.PieceCells = append(snap.PieceCells, v)
			}
		}
	}
	if n := e.Next(); n != nil {
		snap.NextKind = int(n.Kind)
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Status {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pieces)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceKind) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextKind)  //#nosec G115 -- hash computation

	for _, v := range snap.PieceCells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BoardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
