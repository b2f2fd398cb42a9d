package manager

import (
	"errors"

	"snake-arena/game/entity"
	"snake-arena/game/types"

	"golang.org/x/exp/rand"
)

// DefaultPlacementAttempts bounds rejection sampling before falling back to a full scan
const DefaultPlacementAttempts = 256

// ErrArenaFull is returned when no free cell is left for food
var ErrArenaFull = errors.New("no free cell for food")

type FoodManager struct {
	grid         types.Grid
	foodList     []entity.Food
	nextID       uint64
	maxAttempts  int
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(collisionMgr *CollisionManager, rng *rand.Rand, maxAttempts int) *FoodManager {
	if maxAttempts <= 0 {
		maxAttempts = DefaultPlacementAttempts
	}
	return &FoodManager{
		grid:         collisionMgr.Grid(),
		foodList:     make([]entity.Food, 0),
		maxAttempts:  maxAttempts,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Spawn places a new food item off the snake. Existing food is left alone.
func (fm *FoodManager) Spawn(body []types.Point) (entity.Food, error) {
	pos, err := fm.GenerateFood(body)
	if err != nil {
		return entity.Food{}, err
	}
	return fm.AddFood(pos), nil
}

// AddFood puts a food item at pos without any placement checks
func (fm *FoodManager) AddFood(pos types.Point) entity.Food {
	fm.nextID++
	food := entity.Food{ID: fm.nextID, Position: pos}
	fm.foodList = append(fm.foodList, food)
	return food
}

// GenerateFood picks a uniformly random cell not covered by body
func (fm *FoodManager) GenerateFood(body []types.Point) (types.Point, error) {
	for i := 0; i < fm.maxAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, body) {
			return food, nil
		}
	}

	// Sampling keeps missing on a crowded arena; choose among what is left
	free := fm.collisionMgr.FreeCells(body)
	if len(free) == 0 {
		return types.Point{}, ErrArenaFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

// Eat removes and returns every food item at pos
func (fm *FoodManager) Eat(pos types.Point) []entity.Food {
	eaten := fm.collisionMgr.CheckFoodCollisions(pos, fm.foodList)
	if len(eaten) == 0 {
		return nil
	}
	kept := fm.foodList[:0]
	for _, f := range fm.foodList {
		if f.Position != pos {
			kept = append(kept, f)
		}
	}
	fm.foodList = kept
	return eaten
}

// Clear drops all food and returns what was removed
func (fm *FoodManager) Clear() []entity.Food {
	removed := fm.foodList
	fm.foodList = make([]entity.Food, 0)
	return removed
}

func (fm *FoodManager) GetFoodList() []entity.Food {
	out := make([]entity.Food, len(fm.foodList))
	copy(out, fm.foodList)
	return out
}

func (fm *FoodManager) Count() int {
	return len(fm.foodList)
}
