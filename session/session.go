// Package session wires a Game to the pieces every host shares: stats
// persistence, the autopilot and sound cues.
package session

import (
	"errors"
	"time"

	"snake-arena/ai"
	"snake-arena/audio"
	"snake-arena/config"
	"snake-arena/game"
	"snake-arena/game/manager"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Session is driven from a single goroutine
type Session struct {
	cfg   *config.Config
	log   *zap.Logger
	game  *game.Game
	stats *manager.StateManager
	sound *audio.SoundManager

	q         *ai.QLearning
	pilot     *ai.Autopilot
	autopilot bool
	paused    bool

	now func() time.Time
}

type Option func(*Session)

// WithSound enables event cues on an initialised SoundManager
func WithSound(sm *audio.SoundManager) Option {
	return func(s *Session) { s.sound = sm }
}

// WithClock overrides the wall clock used for round timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(cfg *config.Config, log *zap.Logger, opts ...Option) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	stats, err := manager.NewStateManager(cfg.Stats.Path, cfg.Stats.MaxHistory)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:       cfg,
		log:       log,
		stats:     stats,
		autopilot: cfg.Autopilot.Enabled,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.game = game.NewGame(cfg.Game(), s.gameOptions()...)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s.q = ai.NewQLearning(cfg.Autopilot.LearningRate, cfg.Autopilot.Discount, cfg.Autopilot.Epsilon,
		rand.New(rand.NewSource(seed)))
	if cfg.Autopilot.QTablePath != "" {
		if err := s.q.LoadQTable(cfg.Autopilot.QTablePath); err != nil {
			log.Warn("q-table not loaded, starting empty", zap.Error(err))
		}
	}
	s.pilot = ai.NewAutopilot(s.q, s.game.Grid(), log.Named("autopilot"))

	log.Info("session ready",
		zap.Int("width", cfg.Arena.Width),
		zap.Int("height", cfg.Arena.Height),
		zap.Duration("move_interval", cfg.Timing.MoveInterval),
		zap.Bool("autopilot", s.autopilot),
		zap.Int("high_score", stats.GetHighScore()))
	return s, nil
}

func (s *Session) gameOptions() []game.Option {
	opts := []game.Option{
		game.WithLogger(s.log.Named("game")),
		game.WithStateManager(s.stats),
	}
	if s.now != nil {
		opts = append(opts, game.WithClock(s.now))
	}
	return opts
}

// Step advances the game by dt. manual is ignored while the autopilot drives.
func (s *Session) Step(dt time.Duration, manual game.Input) []game.Event {
	if s.paused {
		return nil
	}
	in := manual
	if s.autopilot {
		in = s.pilot.Next(s.game.Snapshot())
	}
	events := s.game.Update(dt, in)
	if s.sound != nil {
		s.sound.Handle(events)
	}
	return events
}

func (s *Session) Snapshot() game.Snapshot {
	return s.game.Snapshot()
}

func (s *Session) ToggleAutopilot() bool {
	s.autopilot = !s.autopilot
	s.log.Info("autopilot toggled", zap.Bool("enabled", s.autopilot))
	return s.autopilot
}

func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

func (s *Session) Autopilot() bool { return s.autopilot }
func (s *Session) Paused() bool    { return s.paused }

func (s *Session) Stats() *manager.StateManager {
	return s.stats
}

// Close persists stats and the Q-table and silences audio
func (s *Session) Close() error {
	var errs []error
	if err := s.stats.SaveStats(); err != nil {
		errs = append(errs, err)
	}
	if s.cfg.Autopilot.QTablePath != "" && s.q.States() > 0 {
		if err := s.q.SaveQTable(s.cfg.Autopilot.QTablePath); err != nil {
			errs = append(errs, err)
		}
	}
	if s.sound != nil {
		s.sound.Cleanup()
	}
	s.log.Info("session closed",
		zap.Int("high_score", s.stats.GetHighScore()),
		zap.Int("rounds", len(s.stats.GetHistory())),
		zap.Float64("average_score", s.stats.AverageScore()))
	return errors.Join(errs...)
}
