package game

import (
	"time"

	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

const (
	DefaultMoveInterval = 200 * time.Millisecond
	DefaultFoodInterval = 2 * time.Second
	DefaultStartLength  = 2
)

// Config fixes the arena and cadence for the lifetime of a Game
type Config struct {
	Grid              types.Grid
	Start             types.Point
	StartHeading      types.Direction
	StartLength       int
	MoveInterval      time.Duration
	FoodInterval      time.Duration
	PlacementAttempts int
	Seed              uint64 // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		Grid:              types.DefaultGrid(),
		Start:             types.Point{X: 3, Y: 3},
		StartHeading:      types.Up,
		StartLength:       DefaultStartLength,
		MoveInterval:      DefaultMoveInterval,
		FoodInterval:      DefaultFoodInterval,
		PlacementAttempts: manager.DefaultPlacementAttempts,
	}
}

type round struct {
	id     string
	number int
	start  time.Time
	score  int
}

// Game owns every piece of simulation state and advances it one cycle per Update.
// It is not safe for concurrent use.
type Game struct {
	cfg  Config
	grid types.Grid

	snake    *entity.Snake
	foodMgr  *manager.FoodManager
	growth   *manager.GrowthLedger
	stateMgr *manager.StateManager

	moveTimer *Timer
	foodTimer *Timer

	// pending game-over signal for this cycle
	gameOver  bool
	cause     entity.CollisionType
	endReason string // recorded instead of cause when the host ends the round

	round     round
	bestScore int
	tick      uint64
	moves     uint64
	events    []Event

	log *zap.Logger
	now func() time.Time
}

type Option func(*Game)

func WithLogger(log *zap.Logger) Option {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}

// WithStateManager records finished rounds and the high score
func WithStateManager(sm *manager.StateManager) Option {
	return func(g *Game) { g.stateMgr = sm }
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

func NewGame(cfg Config, opts ...Option) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	collisionMgr := manager.NewCollisionManager(cfg.Grid)

	g := &Game{
		cfg:       cfg,
		grid:      cfg.Grid,
		foodMgr:   manager.NewFoodManager(collisionMgr, rand.New(rand.NewSource(seed)), cfg.PlacementAttempts),
		growth:    manager.NewGrowthLedger(),
		moveTimer: NewTimer(cfg.MoveInterval),
		foodTimer: NewTimer(cfg.FoodInterval),
		log:       zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.spawnSnake()
	g.startRound()
	// the initial spawn is not a host-visible transition worth replaying
	g.events = nil
	return g
}

// Update runs one cycle: steer, move, resolve game over, eat, grow, then the
// independent food spawner. It returns the spawn/despawn requests it produced.
func (g *Game) Update(dt time.Duration, in Input) []Event {
	g.tick++

	if dir, ok := in.Requested(); ok {
		g.snake.SetDirection(dir)
	}

	if g.moveTimer.Tick(dt) {
		g.moveSnake()
	}

	if g.gameOver {
		g.handleGameOver()
	} else {
		g.checkEating()
		g.applyGrowth()
	}

	if g.foodTimer.Tick(dt) {
		g.spawnFood()
	}

	events := g.events
	g.events = nil
	return events
}

// EndRound finishes the current round without a collision, recording reason
// as its cause, and starts the next one. It returns the events of the reset.
func (g *Game) EndRound(reason string) []Event {
	g.endReason = reason
	g.handleGameOver()
	events := g.events
	g.events = nil
	return events
}

func (g *Game) moveSnake() {
	g.moves++
	res := g.snake.Move(g.grid)
	g.growth.Record(res.VacatedTail)
	if res.Collision != entity.NoCollision {
		g.gameOver = true
		g.cause |= res.Collision
	}
}

func (g *Game) checkEating() {
	for _, food := range g.foodMgr.Eat(g.snake.Head()) {
		g.growth.Signal()
		g.emit(Event{Kind: EventFoodEaten, Entity: foodRef(food), Position: food.Position, RoundID: g.round.id})
	}
}

func (g *Game) applyGrowth() {
	first := g.snake.Len()
	added := g.growth.Drain(g.snake)
	for i, p := range added {
		g.emit(Event{Kind: EventSegmentSpawned, Entity: segmentRef(first + i), Position: p, RoundID: g.round.id})
	}
	if len(added) > 0 {
		g.round.score += len(added)
		g.log.Debug("snake grew",
			zap.String("round", g.round.id),
			zap.Int("length", g.snake.Len()),
			zap.Int("score", g.round.score))
	}
}

func (g *Game) handleGameOver() {
	for _, food := range g.foodMgr.Clear() {
		g.emit(Event{Kind: EventDespawned, Entity: foodRef(food), Position: food.Position, RoundID: g.round.id})
	}
	for i, p := range g.snake.Body {
		g.emit(Event{Kind: EventDespawned, Entity: segmentRef(i), Position: p, RoundID: g.round.id})
	}

	rec := manager.RoundRecord{
		ID:        g.round.id,
		StartTime: g.round.start,
		EndTime:   g.now(),
		Score:     g.round.score,
		Length:    g.snake.Len(),
		Cause:     g.cause.String(),
	}
	if g.endReason != "" {
		rec.Cause = g.endReason
	}
	newHigh := g.round.score > g.recordedHigh()
	if g.round.score > g.bestScore {
		g.bestScore = g.round.score
	}
	if g.stateMgr != nil {
		g.stateMgr.AddRound(rec)
		if err := g.stateMgr.SaveStats(); err != nil {
			g.log.Warn("save stats failed", zap.Error(err))
		}
	}
	g.log.Info("round over",
		zap.String("round", rec.ID),
		zap.Int("score", rec.Score),
		zap.Int("length", rec.Length),
		zap.String("cause", rec.Cause),
		zap.Duration("duration", rec.Duration()),
		zap.Bool("high_score", newHigh))
	g.emit(Event{Kind: EventGameOver, Position: g.snake.Head(), Cause: g.cause, RoundID: g.round.id})

	g.gameOver = false
	g.cause = entity.NoCollision
	g.endReason = ""
	g.growth.Reset()
	g.spawnSnake()
	g.startRound()
}

func (g *Game) spawnFood() {
	food, err := g.foodMgr.Spawn(g.snake.Body)
	if err != nil {
		g.log.Warn("food spawn skipped", zap.Error(err), zap.Int("snake_length", g.snake.Len()))
		return
	}
	g.emit(Event{Kind: EventFoodSpawned, Entity: foodRef(food), Position: food.Position, RoundID: g.round.id})
}

func (g *Game) spawnSnake() {
	g.snake = entity.NewSnake(g.cfg.Start, g.cfg.StartHeading, g.cfg.StartLength)
	for i, p := range g.snake.Body {
		g.emit(Event{Kind: EventSegmentSpawned, Entity: segmentRef(i), Position: p})
	}
}

func (g *Game) startRound() {
	g.round = round{
		id:     uuid.NewString(),
		number: g.round.number + 1,
		start:  g.now(),
	}
	for i := range g.events {
		if g.events[i].RoundID == "" {
			g.events[i].RoundID = g.round.id
		}
	}
	g.log.Info("round started", zap.String("round", g.round.id), zap.Int("number", g.round.number))
	g.emit(Event{Kind: EventRoundStarted, Position: g.snake.Head(), RoundID: g.round.id})
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// HighScore is the best score seen, including the round in progress
func (g *Game) HighScore() int {
	return max(g.recordedHigh(), g.round.score)
}

func (g *Game) recordedHigh() int {
	if g.stateMgr != nil {
		return max(g.bestScore, g.stateMgr.GetHighScore())
	}
	return g.bestScore
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

