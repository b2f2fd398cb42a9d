package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"snake-arena/game"
	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	"github.com/BurntSushi/toml"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// EnvPath is consulted when no -config flag is given
const EnvPath = "SNAKE_CONFIG"

type Config struct {
	Seed      uint64          `toml:"seed"` // 0 = seed from the clock
	Arena     ArenaConfig     `toml:"arena"`
	Timing    TimingConfig    `toml:"timing"`
	Snake     SnakeConfig     `toml:"snake"`
	Food      FoodConfig      `toml:"food"`
	Window    WindowConfig    `toml:"window"`
	Terminal  TerminalConfig  `toml:"terminal"`
	Logging   LoggingConfig   `toml:"logging"`
	Stats     StatsConfig     `toml:"stats"`
	Autopilot AutopilotConfig `toml:"autopilot"`
	Audio     AudioConfig     `toml:"audio"`
}

type ArenaConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type TimingConfig struct {
	MoveInterval time.Duration `toml:"move_interval"`
	FoodInterval time.Duration `toml:"food_interval"`
}

type SnakeConfig struct {
	StartX      int             `toml:"start_x"`
	StartY      int             `toml:"start_y"`
	StartLength int             `toml:"start_length"`
	Heading     types.Direction `toml:"heading"`
}

type FoodConfig struct {
	PlacementAttempts int `toml:"placement_attempts"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	FPS    int    `toml:"fps"`
}

type TerminalConfig struct {
	FrameRate time.Duration `toml:"frame_rate"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty logs to stderr
}

type StatsConfig struct {
	Path       string `toml:"path"` // empty keeps stats in memory
	MaxHistory int    `toml:"max_history"`
}

type AutopilotConfig struct {
	Enabled      bool    `toml:"enabled"`
	LearningRate float64 `toml:"learning_rate"`
	Discount     float64 `toml:"discount"`
	Epsilon      float64 `toml:"epsilon"`
	QTablePath   string  `toml:"qtable_path"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath prefers the flag value and falls back to $SNAKE_CONFIG
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvPath)
}

func defaults() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  types.ArenaWidth,
			Height: types.ArenaHeight,
		},
		Timing: TimingConfig{
			MoveInterval: game.DefaultMoveInterval,
			FoodInterval: game.DefaultFoodInterval,
		},
		Snake: SnakeConfig{
			StartX:      3,
			StartY:      3,
			StartLength: game.DefaultStartLength,
			Heading:     types.Up,
		},
		Food: FoodConfig{
			PlacementAttempts: manager.DefaultPlacementAttempts,
		},
		Window: WindowConfig{
			Title:  "Snake",
			Width:  500,
			Height: 500,
			FPS:    60,
		},
		Terminal: TerminalConfig{
			FrameRate: 16 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Stats: StatsConfig{
			Path:       "data/stats.yaml",
			MaxHistory: manager.DefaultMaxHistory,
		},
		Autopilot: AutopilotConfig{
			Enabled:      false,
			LearningRate: 0.1,
			Discount:     0.9,
			Epsilon:      0.1,
			QTablePath:   "data/qtable.json",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// Default returns the built-in configuration
func Default() *Config {
	return defaults()
}

func (c *Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: arena %dx%d", ErrInvalid, c.Arena.Width, c.Arena.Height)
	}
	if c.Timing.MoveInterval <= 0 || c.Timing.FoodInterval <= 0 {
		return fmt.Errorf("%w: intervals must be positive (move %v, food %v)",
			ErrInvalid, c.Timing.MoveInterval, c.Timing.FoodInterval)
	}
	if c.Terminal.FrameRate <= 0 {
		return fmt.Errorf("%w: terminal frame_rate %v", ErrInvalid, c.Terminal.FrameRate)
	}
	if c.Snake.StartLength < entity.MinLength || c.Snake.StartLength > c.Arena.Width*c.Arena.Height {
		return fmt.Errorf("%w: start_length %d", ErrInvalid, c.Snake.StartLength)
	}

	grid := c.grid()
	back := c.Snake.Heading.Opposite().Delta()
	p := types.Point{X: c.Snake.StartX, Y: c.Snake.StartY}
	for i := 0; i < c.Snake.StartLength; i++ {
		if !grid.Contains(p) {
			return fmt.Errorf("%w: starting segment %d at %v is outside the arena", ErrInvalid, i, p)
		}
		p = p.Add(back)
	}

	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: logging format %q", ErrInvalid, c.Logging.Format)
	}
	if c.Autopilot.Epsilon < 0 || c.Autopilot.Epsilon > 1 {
		return fmt.Errorf("%w: autopilot epsilon %v", ErrInvalid, c.Autopilot.Epsilon)
	}
	return nil
}

func (c *Config) grid() types.Grid {
	return types.Grid{Width: c.Arena.Width, Height: c.Arena.Height}
}

// Game maps the file layout onto the simulation config
func (c *Config) Game() game.Config {
	return game.Config{
		Grid:              c.grid(),
		Start:             types.Point{X: c.Snake.StartX, Y: c.Snake.StartY},
		StartHeading:      c.Snake.Heading,
		StartLength:       c.Snake.StartLength,
		MoveInterval:      c.Timing.MoveInterval,
		FoodInterval:      c.Timing.FoodInterval,
		PlacementAttempts: c.Food.PlacementAttempts,
		Seed:              c.Seed,
	}
}
