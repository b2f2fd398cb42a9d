package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"snake-arena/audio"
	"snake-arena/config"
	"snake-arena/session"
	"snake-arena/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config (default $"+config.EnvPath+")")
	autopilot := flag.Bool("autopilot", false, "let the Q-learning agent steer")
	seed := flag.Uint64("seed", 0, "RNG seed for food placement (0 = clock)")
	flag.Parse()

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		return err
	}
	if *autopilot {
		cfg.Autopilot.Enabled = true
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	var opts []session.Option
	if cfg.Audio.Enabled {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			opts = append(opts, session.WithSound(sound))
		}
	}

	s, err := session.New(cfg, log, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Error("saving session failed", zap.Error(err))
		}
	}()

	renderer := ui.NewRenderer(cfg.Game().Grid)
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace) {
			s.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyT) {
			s.ToggleAutopilot()
		}

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		s.Step(dt, ui.PollInput())
		renderer.Draw(s.Snapshot(), ui.Status{Autopilot: s.Autopilot(), Paused: s.Paused()})
	}
	return nil
}
