package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"

	"golang.org/x/exp/slices"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// IsWallCollision checks if a position lies outside the arena
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsDanger reports whether stepping onto pos would end the round for the given body
func (cm *CollisionManager) IsDanger(pos types.Point, body []types.Point) bool {
	return cm.IsWallCollision(pos) || slices.Contains(body, pos)
}

// ValidateSpawnPosition checks if a position is free for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, body []types.Point) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	return !slices.Contains(body, pos)
}

// FreeCells lists every cell not covered by body, row by row
func (cm *CollisionManager) FreeCells(body []types.Point) []types.Point {
	occupied := make(map[types.Point]struct{}, len(body))
	for _, p := range body {
		occupied[p] = struct{}{}
	}
	free := make([]types.Point, 0, cm.grid.Area()-len(occupied))
	for y := 0; y < cm.grid.Height; y++ {
		for x := 0; x < cm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free
}

// CheckFoodCollisions returns every food item sitting on pos
func (cm *CollisionManager) CheckFoodCollisions(pos types.Point, foodList []entity.Food) []entity.Food {
	var hits []entity.Food
	for _, food := range foodList {
		if food.Position == pos {
			hits = append(hits, food)
		}
	}
	return hits
}
