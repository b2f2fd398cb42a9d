package session

import (
	"context"

	"snake-arena/game"

	"go.uber.org/zap"
)

// TrainResult summarises a headless training run
type TrainResult struct {
	Episodes  int
	BestScore int
	MeanScore float64
	States    int
}

const reportEvery = 50

// StepLimitCause is recorded for rounds Train cuts off at maxSteps
const StepLimitCause = "step_limit"

// Train runs the autopilot without a host, one move per step, until the
// given number of rounds end or ctx is cancelled. A round still alive after
// maxSteps is ended through the game and recorded with StepLimitCause.
func (s *Session) Train(ctx context.Context, episodes, maxSteps int) TrainResult {
	s.autopilot = true
	s.paused = false
	dt := s.cfg.Timing.MoveInterval

	var res TrainResult
	total, batch := 0, 0
	for res.Episodes < episodes {
		if ctx.Err() != nil {
			break
		}

		score, ended := 0, false
		for step := 0; step < maxSteps && !ended; step++ {
			// a game-over cycle skips eating, so the pre-step score is final
			before := s.game.Snapshot().Score
			for _, ev := range s.Step(dt, game.Input{}) {
				if ev.Kind == game.EventGameOver {
					ended = true
				}
			}
			if ended {
				score = before
			} else {
				score = s.game.Snapshot().Score
			}
		}
		if !ended {
			s.log.Debug("round hit the step limit", zap.Int("score", score))
			s.game.EndRound(StepLimitCause)
			// the agent must not carry the cut-off move into the new round
			s.pilot.Forget()
		}

		res.Episodes++
		total += score
		batch += score
		res.BestScore = max(res.BestScore, score)

		if res.Episodes%reportEvery == 0 {
			s.log.Info("training progress",
				zap.Int("episode", res.Episodes),
				zap.Int("best", res.BestScore),
				zap.Float64("batch_mean", float64(batch)/reportEvery),
				zap.Int("states", s.q.States()))
			batch = 0
			if s.cfg.Autopilot.QTablePath != "" {
				if err := s.q.SaveQTable(s.cfg.Autopilot.QTablePath); err != nil {
					s.log.Warn("q-table checkpoint failed", zap.Error(err))
				}
			}
		}
	}

	if res.Episodes > 0 {
		res.MeanScore = float64(total) / float64(res.Episodes)
	}
	res.States = s.q.States()
	return res
}
