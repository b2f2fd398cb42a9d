package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"snake-arena/game/types"

	"golang.org/x/exp/rand"
)

// Rewards for one move
const (
	RewardFood    = 1.0
	RewardDeath   = -1.0
	RewardCloser  = 0.5
	RewardFarther = -0.3
)

// QTable maps a state key to the value of each heading
type QTable map[string]map[types.Direction]float64

type QLearning struct {
	mu           sync.RWMutex
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64

	rng *rand.Rand
}

func NewQLearning(learningRate, discount, epsilon float64, rng *rand.Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: learningRate,
		Discount:     discount,
		Epsilon:      epsilon,
		rng:          rng,
	}
}

// SaveQTable writes the table as JSON, creating parent directories
func (q *QLearning) SaveQTable(filename string) error {
	q.mu.RLock()
	data, err := json.MarshalIndent(q.QTable, "", "  ")
	q.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode q-table: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create q-table dir: %w", err)
		}
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadQTable replaces the table with the file contents. A missing file
// leaves the table empty and is not an error.
func (q *QLearning) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	table := make(QTable)
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("decode q-table %s: %w", filename, err)
	}

	q.mu.Lock()
	q.QTable = table
	q.mu.Unlock()
	return nil
}

// GetAction picks among allowed headings, exploring with probability Epsilon
func (q *QLearning) GetAction(state State, allowed []types.Direction) types.Direction {
	if len(allowed) == 0 {
		return state.Heading
	}
	if q.rng.Float64() < q.Epsilon {
		return allowed[q.rng.Intn(len(allowed))]
	}
	return q.bestAction(state.Key(), allowed)
}

func (q *QLearning) bestAction(key string, allowed []types.Direction) types.Direction {
	q.mu.RLock()
	defer q.mu.RUnlock()

	values := q.QTable[key]
	best := allowed[0]
	bestValue := math.Inf(-1)
	for _, a := range allowed {
		// unseen actions read as 0
		if v := values[a]; v > bestValue {
			best, bestValue = a, v
		}
	}
	return best
}

// Update applies one Q-learning step. A terminal transition ignores next.
func (q *QLearning) Update(state State, action types.Direction, reward float64, next State, terminal bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	key := state.Key()
	row, ok := q.QTable[key]
	if !ok {
		row = make(map[types.Direction]float64, len(types.Directions))
		q.QTable[key] = row
	}

	var maxNextQ float64
	if !terminal {
		maxNextQ = math.Inf(-1)
		nextRow := q.QTable[next.Key()]
		for _, a := range types.Directions {
			if v := nextRow[a]; v > maxNextQ {
				maxNextQ = v
			}
		}
	}

	currentQ := row[action]
	row[action] = currentQ + q.LearningRate*(reward+q.Discount*maxNextQ-currentQ)
	q.TotalReward += reward
}

// Value returns the stored value for a state/action pair
func (q *QLearning) Value(state State, action types.Direction) float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.QTable[state.Key()][action]
}

// States is the number of distinct states seen
func (q *QLearning) States() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.QTable)
}
