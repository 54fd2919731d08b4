package qothello

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/quantum-othello/internal/core"
	"github.com/vovakirdan/quantum-othello/internal/othello"
)

// Layout constants
const (
	cellW    = 3  // characters per board square
	boardX   = 1  // left edge of the board frame
	boardY   = 2  // top edge of the board frame
	panelX   = 33 // left edge of the side panel
	boardBox = othello.BoardSize*cellW + 4

	// MinWidth and MinHeight are the smallest screen the game renders on.
	MinWidth  = 80
	MinHeight = 15
)

// Piece glyphs
const (
	glyphBlack = '●'
	glyphWhite = '○'
	glyphHint  = '·'
	glyphEmpty = ' '
)

// Render draws the board and the side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorError)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", MinWidth, MinHeight), core.ColorDim)
		return
	}

	dst.DrawTextCentered(0, "Q U A N T U M   O T H E L L O", core.ColorAccent)
	g.renderBoard(dst)
	g.renderPanel(dst)
}

func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardBox, othello.BoardSize+3), core.ColorFrame)

	for col := 0; col < othello.BoardSize; col++ {
		dst.DrawTextColored(boardX+3+col*cellW+1, boardY+1, string(rune('a'+col)), core.ColorDim)
	}

	legal := make(map[othello.Coord]bool)
	if !g.match.Terminal() && len(g.match.AvailableTiers()) > 0 {
		for _, c := range g.match.LegalMoves() {
			legal[c] = true
		}
	}

	var flipped map[othello.Coord]bool
	if g.flashTicks > 0 {
		flipped = g.lastFlipped()
	}

	board := g.match.Board()
	for row := 0; row < othello.BoardSize; row++ {
		y := boardY + 2 + row
		dst.DrawTextColored(boardX+1, y, fmt.Sprintf("%d", row+1), core.ColorDim)

		for col := 0; col < othello.BoardSize; col++ {
			c := othello.Coord{Row: row, Col: col}
			x := boardX + 3 + col*cellW

			glyph, color := cellGlyph(board[row][col], legal[c])
			if flipped[c] {
				color = core.ColorAccent
			}
			dst.SetColored(x+1, y, glyph, color)

			if c == g.cursor && !g.match.Terminal() {
				dst.SetColored(x, y, '[', core.ColorCursor)
				dst.SetColored(x+2, y, ']', core.ColorCursor)
			}
		}
	}
}

func cellGlyph(c othello.Cell, hint bool) (rune, core.Color) {
	switch c {
	case othello.Black:
		return glyphBlack, core.ColorBlackPiece
	case othello.White:
		return glyphWhite, core.ColorWhitePiece
	}
	if hint {
		return glyphHint, core.ColorHint
	}
	return glyphEmpty, core.ColorDefault
}

// lastFlipped returns the placed and flipped cells of the latest move.
func (g *Game) lastFlipped() map[othello.Coord]bool {
	history := g.match.History()
	if len(history) == 0 {
		return nil
	}
	rec := history[len(history)-1]
	if rec.Pass {
		return nil
	}
	cells := map[othello.Coord]bool{rec.Coord: true}
	for _, f := range rec.Flipped {
		cells[f] = true
	}
	return cells
}

func (g *Game) renderPanel(dst *core.Screen) {
	y := boardY
	black, white := g.match.Score()

	if g.match.Terminal() {
		dst.DrawTextColored(panelX, y, "Match over", core.ColorAccent)
	} else {
		dst.DrawTextColored(panelX, y, "Turn: ", core.ColorDefault)
		glyph, color := cellGlyph(g.match.Current(), false)
		dst.DrawTextColored(panelX+6, y, fmt.Sprintf("%c %s", glyph, g.match.Current()), color)
	}
	y += 2

	dst.DrawTextColored(panelX, y, fmt.Sprintf("%c Black %2d", glyphBlack, black), core.ColorBlackPiece)
	dst.DrawTextColored(panelX+14, y, fmt.Sprintf("%c White %2d", glyphWhite, white), core.ColorWhitePiece)
	y += 2

	dst.DrawTextColored(panelX, y, "Black "+formatInventory(g.match.Inventory(othello.Black)), core.ColorDim)
	y++
	dst.DrawTextColored(panelX, y, "White "+formatInventory(g.match.Inventory(othello.White)), core.ColorDim)
	y += 2

	if !g.match.Terminal() {
		dst.DrawTextColored(panelX, y, "Tier  ", core.ColorDefault)
		x := panelX + 6
		tiers := g.match.AvailableTiers()
		if len(tiers) == 0 {
			dst.DrawTextColored(x, y, "none left", core.ColorError)
		}
		selected := g.selectedIndex()
		for i, t := range tiers {
			label := fmt.Sprintf(" %s ", t)
			color := core.ColorDim
			if i == selected {
				label = fmt.Sprintf("[%s]", t)
				color = core.ColorCursor
			}
			dst.DrawTextColored(x, y, label, color)
			x += len(label) + 1
		}
	}
	y += 2

	dst.DrawTextColored(panelX, y, g.message, g.msgColor)
	y++

	switch {
	case g.match.Terminal():
		dst.DrawTextColored(panelX, y, "R: new match   B: menu", core.ColorDim)
	case g.match.MustPass():
		dst.DrawTextColored(panelX, y, "No placement possible: press P to pass", core.ColorError)
	}
}

// formatInventory renders stock as "90%x2 80%x1 ...".
func formatInventory(inv othello.Inventory) string {
	parts := make([]string, 0, len(inv))
	for _, s := range inv {
		parts = append(parts, fmt.Sprintf("%sx%d", s.Tier, s.Count))
	}
	return strings.Join(parts, " ")
}
