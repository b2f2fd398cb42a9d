package game

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// EntityKind tells renderers which visual a reference belongs to
type EntityKind int

const (
	KindHead EntityKind = iota
	KindSegment
	KindFood
)

func (k EntityKind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindSegment:
		return "segment"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// EntityRef identifies a visual entity. Segments are keyed by body index
// (0 is the head), food by its ID.
type EntityRef struct {
	Kind EntityKind
	ID   uint64
}

// Size is the relative square size renderers scale by the cell size
func (r EntityRef) Size() float64 {
	switch r.Kind {
	case KindHead:
		return types.HeadSize
	case KindFood:
		return types.FoodSize
	default:
		return types.SegmentSize
	}
}

func segmentRef(index int) EntityRef {
	if index == 0 {
		return EntityRef{Kind: KindHead}
	}
	return EntityRef{Kind: KindSegment, ID: uint64(index)}
}

func foodRef(f entity.Food) EntityRef {
	return EntityRef{Kind: KindFood, ID: f.ID}
}

type EventKind int

const (
	EventSegmentSpawned EventKind = iota
	EventFoodSpawned
	EventFoodEaten
	EventDespawned
	EventGameOver
	EventRoundStarted
)

func (k EventKind) String() string {
	switch k {
	case EventSegmentSpawned:
		return "segment_spawned"
	case EventFoodSpawned:
		return "food_spawned"
	case EventFoodEaten:
		return "food_eaten"
	case EventDespawned:
		return "despawned"
	case EventGameOver:
		return "game_over"
	case EventRoundStarted:
		return "round_started"
	default:
		return "unknown"
	}
}

// Event is a spawn/despawn request or a round transition produced by one Update
type Event struct {
	Kind     EventKind
	Entity   EntityRef
	Position types.Point
	Cause    entity.CollisionType
	RoundID  string
}
