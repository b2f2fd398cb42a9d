package ai

import (
	"fmt"

	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// State is what the agent perceives before choosing a heading
type State struct {
	RelativeFoodDir [2]int  // sign of (food - head) on each axis, 0 without food
	FoodDistance    int     // Manhattan distance to the nearest food, -1 without food
	DangerDirs      [4]bool // indexed like types.Directions
	Heading         types.Direction
}

// Key flattens the state into the Q-table key
func (s State) Key() string {
	return fmt.Sprintf("%d,%d|%d%d%d%d|%s",
		s.RelativeFoodDir[0], s.RelativeFoodDir[1],
		boolToInt(s.DangerDirs[0]), boolToInt(s.DangerDirs[1]),
		boolToInt(s.DangerDirs[2]), boolToInt(s.DangerDirs[3]),
		s.Heading)
}

// Sense reads the snapshot into a State
func Sense(snap game.Snapshot, cm *manager.CollisionManager) State {
	head := snap.Head()
	s := State{
		FoodDistance: -1,
		Heading:      snap.Heading,
	}

	if food, ok := nearestFood(head, snap.Food); ok {
		s.RelativeFoodDir = [2]int{sign(food.X - head.X), sign(food.Y - head.Y)}
		s.FoodDistance = manhattan(head, food)
	}

	for i, dir := range types.Directions {
		s.DangerDirs[i] = cm.IsDanger(head.Add(dir.Delta()), snap.Snake)
	}
	return s
}

func nearestFood(head types.Point, food []types.Point) (types.Point, bool) {
	if len(food) == 0 {
		return types.Point{}, false
	}
	best := food[0]
	bestDist := manhattan(head, best)
	for _, f := range food[1:] {
		if d := manhattan(head, f); d < bestDist {
			best, bestDist = f, d
		}
	}
	return best, true
}

func manhattan(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
