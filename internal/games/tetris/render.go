package tetris

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the playfield and side panel, in screen cells.
const (
	cellW   = 2 // each board column is two characters wide
	boardX  = 1
	boardY  = 0
	boardW  = Cols*cellW + 2
	boardH  = Rows + 2
	panelX  = boardX + boardW + 2
	panelW  = 16
	minW    = panelX + panelW
	minH    = boardH
	emptyFg = " ."
)

// checkScreenSize updates the too-small flag from the last known size.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize records a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Render draws the playfield, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.Resize(dst.Width(), dst.Height())
	}

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	g.renderBoard(dst)
	g.renderPiece(dst)
	g.renderPanel(dst)
	g.renderOverlay(dst)
}

// renderBoard draws the well border, the locked cells and the empty grid.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorWhite)

	board := g.engine.Board()
	for row := range Rows {
		for col := range Cols {
			c := board.At(row, col)
			if c.Occupied {
				g.drawBlock(dst, col, row, c.Color)
			} else {
				dst.DrawTextColored(cellX(col), cellY(row), emptyFg, core.ColorGray)
			}
		}
	}
}

// renderPiece draws the active piece over the board. Cells still above the
// top edge are not shown.
func (g *Game) renderPiece(dst *core.Screen) {
	p := g.engine.Current()
	if p == nil || g.engine.Status() == StatusNotStarted {
		return
	}
	for _, b := range p.Blocks() {
		if b.Y < 0 {
			continue
		}
		g.drawBlock(dst, b.X, b.Y, p.Color)
	}
}

func (g *Game) drawBlock(dst *core.Screen, col, row int, color core.Color) {
	dst.DrawTextColored(cellX(col), cellY(row), g.cfg.Display.Block, color)
}

func cellX(col int) int { return boardX + 1 + col*cellW }
func cellY(row int) int { return boardY + 1 + row }

// renderPanel draws the title, counters and the next piece preview.
func (g *Game) renderPanel(dst *core.Screen) {
	y := boardY + 1
	dst.DrawTextColored(panelX, y, "TETRIS", core.ColorBrightWhite)
	y += 2

	scoreColor := core.ColorDefault
	if g.scoreFlash > 0 {
		scoreColor = core.ColorYellow
	}
	dst.DrawText(panelX, y, "Score")
	dst.DrawTextColored(panelX, y+1, humanize.Comma(int64(g.engine.Score())), scoreColor)
	y += 3

	dst.DrawText(panelX, y, fmt.Sprintf("Level  %d", g.engine.Level()))
	dst.DrawText(panelX, y+1, fmt.Sprintf("Lines  %d", g.engine.Lines()))
	y += 3

	if g.cfg.Display.ShowNext {
		dst.DrawText(panelX, y, "Next")
		if next := g.engine.Next(); next != nil && g.engine.Status() != StatusNotStarted {
			for r := range next.Shape.Rows() {
				for c := range next.Shape.Cols() {
					if next.Shape[r][c] {
						dst.DrawTextColored(panelX+c*cellW, y+2+r, g.cfg.Display.Block, next.Color)
					}
				}
			}
		}
	}
}

// renderOverlay draws the status message over the well.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.engine.Status() {
	case StatusNotStarted:
		g.drawCenteredBox(dst, "TETRIS", "Press ENTER")
	case StatusPaused:
		g.drawCenteredBox(dst, "PAUSED", "P to resume")
	case StatusGameOver:
		g.drawCenteredBox(dst, "GAME OVER", "R to restart")
	}
}

// drawCenteredBox draws a message box centered over the well.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := core.Clamp(boardX+(boardW-boxW)/2, 0, max(dst.Width()-boxW, 0))
	boxY := boardY + (boardH-boxH)/2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(r, ' ')
	dst.DrawBox(r, core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
