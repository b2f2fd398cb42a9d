package entity

import "snake-arena/game/types"

// Food is a single edible item. IDs are unique per FoodManager.
type Food struct {
	ID       uint64
	Position types.Point
}
