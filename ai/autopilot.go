package ai

import (
	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	"go.uber.org/zap"
)

type decision struct {
	state  State
	action types.Direction
	round  int
	score  int
}

// Autopilot drives a Game through the same Input a keyboard produces.
// It decides once per move and learns from the move that followed.
type Autopilot struct {
	q         *QLearning
	collision *manager.CollisionManager
	log       *zap.Logger

	last      *decision
	lastMoves uint64
	hold      game.Input
	started   bool
}

func NewAutopilot(q *QLearning, grid types.Grid, log *zap.Logger) *Autopilot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Autopilot{
		q:         q,
		collision: manager.NewCollisionManager(grid),
		log:       log,
	}
}

// Next returns the controls to hold for the coming frame
func (a *Autopilot) Next(snap game.Snapshot) game.Input {
	if a.started && snap.Moves == a.lastMoves {
		return a.hold
	}
	a.started = true
	a.lastMoves = snap.Moves

	state := Sense(snap, a.collision)
	if a.last != nil {
		a.learn(state, snap)
	}

	action := a.q.GetAction(state, allowedActions(snap.Heading))
	a.last = &decision{state: state, action: action, round: snap.Round, score: snap.Score}
	a.hold = game.Hold(action)
	return a.hold
}

// Forget drops the pending decision so the next one starts a fresh episode
// without a learning update.
func (a *Autopilot) Forget() {
	a.last = nil
	a.started = false
}

func (a *Autopilot) learn(next State, snap game.Snapshot) {
	prev := a.last
	terminal := snap.Round != prev.round

	var reward float64
	switch {
	case terminal:
		reward = RewardDeath
	case snap.Score > prev.score:
		reward = RewardFood
	case prev.state.FoodDistance >= 0 && next.FoodDistance >= 0 && next.FoodDistance < prev.state.FoodDistance:
		reward = RewardCloser
	case prev.state.FoodDistance >= 0 && next.FoodDistance > prev.state.FoodDistance:
		reward = RewardFarther
	}

	a.q.Update(prev.state, prev.action, reward, next, terminal)
	if terminal {
		a.log.Debug("autopilot episode ended",
			zap.Int("round", prev.round),
			zap.Int("score", prev.score),
			zap.Int("states", a.q.States()),
			zap.Float64("total_reward", a.q.TotalReward))
	}
}

// allowedActions excludes the reversal the snake would refuse anyway
func allowedActions(heading types.Direction) []types.Direction {
	allowed := make([]types.Direction, 0, len(types.Directions)-1)
	for _, d := range types.Directions {
		if d != heading.Opposite() {
			allowed = append(allowed, d)
		}
	}
	return allowed
}
