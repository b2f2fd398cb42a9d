// Package term hosts the game in a terminal through tcell
package term

import (
	"fmt"

	"snake-arena/game"
	"snake-arena/game/types"

	"github.com/gdamore/tcell/v2"
)

// cellWidth keeps cells roughly square in most terminal fonts
const cellWidth = 2

// hudRows is the status line above the arena box
const hudRows = 1

var (
	headStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	segmentStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	foodStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	borderStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hudStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

type Status struct {
	Autopilot bool
	Paused    bool
}

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellOrigin returns the screen column and row of the left half of cell p.
// Rows are flipped so the arena's y grows upward on screen.
func CellOrigin(p types.Point, grid types.Grid) (col, row int) {
	col = 1 + p.X*cellWidth
	row = hudRows + 1 + (grid.Height - 1 - p.Y)
	return col, row
}

func (r *Renderer) Draw(snap game.Snapshot, status Status) {
	r.screen.Clear()

	hud := fmt.Sprintf("Round %d  Score %d  Best %d", snap.Round, snap.Score, snap.HighScore)
	if status.Autopilot {
		hud += "  [autopilot]"
	}
	if status.Paused {
		hud += "  PAUSED"
	}
	r.drawText(0, 0, hud, hudStyle)
	r.drawBorder(snap.Grid)

	for _, e := range snap.Entities {
		glyph, style := entityGlyph(e.Ref.Kind)
		col, row := CellOrigin(e.Position, snap.Grid)
		for i := 0; i < cellWidth; i++ {
			r.screen.SetContent(col+i, row, glyph, nil, style)
		}
	}

	r.screen.Show()
}

func (r *Renderer) drawBorder(grid types.Grid) {
	top := hudRows
	bottom := hudRows + grid.Height + 1
	right := grid.Width*cellWidth + 1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, borderStyle)
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(0, top, '┌', nil, borderStyle)
	r.screen.SetContent(right, top, '┐', nil, borderStyle)
	r.screen.SetContent(0, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func entityGlyph(kind game.EntityKind) (rune, tcell.Style) {
	switch kind {
	case game.KindHead:
		return '█', headStyle
	case game.KindFood:
		return '●', foodStyle
	default:
		return '▓', segmentStyle
	}
}
