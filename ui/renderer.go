package ui

import (
	"fmt"

	"snake-arena/game"
	"snake-arena/game/types"
	"snake-arena/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudPadding = 8

var (
	headColor    = rl.Color{R: 255, G: 255, B: 255, A: 255}
	segmentColor = rl.Color{R: 180, G: 180, B: 180, A: 255}
	foodColor    = rl.Color{R: 230, G: 41, B: 55, A: 255}
	gridColor    = rl.Color{R: 40, G: 40, B: 40, A: 255}
)

// Status is the host-side text shown next to the score
type Status struct {
	Autopilot bool
	Paused    bool
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       layout.Layout
}

func NewRenderer(grid types.Grid) *Renderer {
	r := &Renderer{}
	r.UpdateDimensions(grid)
	return r
}

// UpdateDimensions re-reads the window size so resizes keep the arena filled
func (r *Renderer) UpdateDimensions(grid types.Grid) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.layout = layout.New(int(r.screenWidth), int(r.screenHeight), grid)
}

func (r *Renderer) Draw(snap game.Snapshot, status Status) {
	if int32(rl.GetScreenWidth()) != r.screenWidth || int32(rl.GetScreenHeight()) != r.screenHeight {
		r.UpdateDimensions(snap.Grid)
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawGrid(snap.Grid)
	for _, e := range snap.Entities {
		rect := r.layout.ScreenRect(e.Position, e.Size)
		rl.DrawRectangleRec(rl.Rectangle{
			X:      float32(rect.X),
			Y:      float32(rect.Y),
			Width:  float32(rect.W),
			Height: float32(rect.H),
		}, entityColor(e.Ref.Kind))
	}
	r.drawHUD(snap, status)

	rl.EndDrawing()
}

func (r *Renderer) drawGrid(grid types.Grid) {
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			rect := r.layout.ScreenRect(types.Point{X: x, Y: y}, 1)
			rl.DrawRectangleLines(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H), gridColor)
		}
	}
}

func (r *Renderer) drawHUD(snap game.Snapshot, status Status) {
	fontSize := max(r.screenHeight/30, 12)

	text := fmt.Sprintf("Round %d  Score %d  Best %d", snap.Round, snap.Score, snap.HighScore)
	if status.Autopilot {
		text += "  [autopilot]"
	}
	rl.DrawText(text, hudPadding, hudPadding, fontSize, rl.RayWhite)

	if status.Paused {
		msg := "PAUSED"
		w := rl.MeasureText(msg, fontSize*2)
		rl.DrawText(msg, (r.screenWidth-w)/2, r.screenHeight/2-fontSize, fontSize*2, rl.Yellow)
	}
}

func entityColor(kind game.EntityKind) rl.Color {
	switch kind {
	case game.KindHead:
		return headColor
	case game.KindFood:
		return foodColor
	default:
		return segmentColor
	}
}
