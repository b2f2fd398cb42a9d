package manager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultMaxHistory caps the number of stored rounds
const DefaultMaxHistory = 50

// RoundRecord is one finished round
type RoundRecord struct {
	ID        string    `yaml:"id"`
	StartTime time.Time `yaml:"start_time"`
	EndTime   time.Time `yaml:"end_time"`
	Score     int       `yaml:"score"`
	Length    int       `yaml:"length"`
	Cause     string    `yaml:"cause"`
}

// Duration is how long the round lasted
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

type GameStats struct {
	HighScore int           `yaml:"high_score"`
	Rounds    []RoundRecord `yaml:"rounds"`
}

// StateManager keeps the high score and recent rounds. An empty path keeps
// everything in memory.
type StateManager struct {
	path       string
	maxHistory int
	stats      GameStats
}

func NewStateManager(path string, maxHistory int) (*StateManager, error) {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	sm := &StateManager{
		path:       path,
		maxHistory: maxHistory,
		stats:      GameStats{Rounds: make([]RoundRecord, 0)},
	}
	if path == "" {
		return sm, nil
	}
	if err := sm.LoadStats(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return sm, nil
}

func (sm *StateManager) LoadStats(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read stats %s: %w", filename, err)
	}

	var stats GameStats
	if err := yaml.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("parse stats %s: %w", filename, err)
	}
	if stats.Rounds == nil {
		stats.Rounds = make([]RoundRecord, 0)
	}
	sm.stats = stats
	sm.trim()
	return nil
}

// SaveStats writes the stats file; it is a no-op without a path
func (sm *StateManager) SaveStats() error {
	if sm.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(sm.path), 0755); err != nil {
		return fmt.Errorf("create stats dir: %w", err)
	}
	data, err := yaml.Marshal(sm.stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return fmt.Errorf("write stats %s: %w", sm.path, err)
	}
	return nil
}

// AddRound appends a finished round and bumps the high score. Reports whether
// the round set a new high score.
func (sm *StateManager) AddRound(rec RoundRecord) bool {
	sm.stats.Rounds = append(sm.stats.Rounds, rec)
	sm.trim()
	if rec.Score > sm.stats.HighScore {
		sm.stats.HighScore = rec.Score
		return true
	}
	return false
}

func (sm *StateManager) trim() {
	if over := len(sm.stats.Rounds) - sm.maxHistory; over > 0 {
		sm.stats.Rounds = append(sm.stats.Rounds[:0], sm.stats.Rounds[over:]...)
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.stats.HighScore
}

func (sm *StateManager) GetHistory() []RoundRecord {
	out := make([]RoundRecord, len(sm.stats.Rounds))
	copy(out, sm.stats.Rounds)
	return out
}

// AverageScore over the stored history
func (sm *StateManager) AverageScore() float64 {
	if len(sm.stats.Rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.stats.Rounds {
		total += r.Score
	}
	return float64(total) / float64(len(sm.stats.Rounds))
}
