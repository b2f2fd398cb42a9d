// Package layout maps arena cells onto window pixels. It has no graphics
// dependency so every host can share it.
package layout

import "snake-arena/game/types"

// Rect is a screen-space rectangle, origin at the top-left, y down
type Rect struct {
	X, Y, W, H float64
}

type Layout struct {
	WindowWidth  float64
	WindowHeight float64
	Grid         types.Grid
}

func New(windowWidth, windowHeight int, grid types.Grid) Layout {
	return Layout{
		WindowWidth:  float64(windowWidth),
		WindowHeight: float64(windowHeight),
		Grid:         grid,
	}
}

// TileSize is the pixel size of one cell
func (l Layout) TileSize() (w, h float64) {
	return l.WindowWidth / float64(l.Grid.Width), l.WindowHeight / float64(l.Grid.Height)
}

// Translate returns the pixel centre of cell p relative to the window centre,
// with y growing upward like the arena.
func (l Layout) Translate(p types.Point) (x, y float64) {
	tw, th := l.TileSize()
	x = float64(p.X)/float64(l.Grid.Width)*l.WindowWidth - l.WindowWidth/2 + tw/2
	y = float64(p.Y)/float64(l.Grid.Height)*l.WindowHeight - l.WindowHeight/2 + th/2
	return x, y
}

// Scale turns a relative entity size into pixels
func (l Layout) Scale(size float64) (w, h float64) {
	tw, th := l.TileSize()
	return size * tw, size * th
}

// ScreenRect places an entity of the given relative size on cell p in
// top-left, y-down window coordinates.
func (l Layout) ScreenRect(p types.Point, size float64) Rect {
	cx, cy := l.Translate(p)
	w, h := l.Scale(size)
	sx := cx + l.WindowWidth/2
	sy := l.WindowHeight/2 - cy
	return Rect{X: sx - w/2, Y: sy - h/2, W: w, H: h}
}
