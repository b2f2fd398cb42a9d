package game

import "snake-arena/game/types"

// EntityView is what a renderer needs to place one entity
type EntityView struct {
	Ref      EntityRef
	Position types.Point
	Size     float64
}

// Snapshot is a copy of the game state between cycles
type Snapshot struct {
	Tick      uint64
	Moves     uint64
	RoundID   string
	Round     int
	Score     int
	HighScore int
	Heading   types.Direction
	Grid      types.Grid
	Snake     []types.Point
	Food      []types.Point
	Entities  []EntityView
}

// Head returns the snake head position
func (s Snapshot) Head() types.Point {
	return s.Snake[0]
}

// Snapshot copies the current state for rendering and inspection
func (g *Game) Snapshot() Snapshot {
	foods := g.foodMgr.GetFoodList()
	snap := Snapshot{
		Tick:      g.tick,
		Moves:     g.moves,
		RoundID:   g.round.id,
		Round:     g.round.number,
		Score:     g.round.score,
		HighScore: g.HighScore(),
		Heading:   g.snake.Direction,
		Grid:      g.grid,
		Snake:     g.snake.Positions(),
		Food:      make([]types.Point, 0, len(foods)),
		Entities:  make([]EntityView, 0, g.snake.Len()+len(foods)),
	}
	for i, p := range snap.Snake {
		ref := segmentRef(i)
		snap.Entities = append(snap.Entities, EntityView{Ref: ref, Position: p, Size: ref.Size()})
	}
	for _, f := range foods {
		ref := foodRef(f)
		snap.Food = append(snap.Food, f.Position)
		snap.Entities = append(snap.Entities, EntityView{Ref: ref, Position: f.Position, Size: ref.Size()})
	}
	return snap
}
