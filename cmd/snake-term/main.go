package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"snake-arena/audio"
	"snake-arena/config"
	"snake-arena/session"
	"snake-arena/term"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const defaultLogFile = "snake-term.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
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
	// stderr belongs to the screen
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaultLogFile
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nsnake-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term.Run(ctx, screen, s, cfg.Terminal.FrameRate, log)
	return nil
}
