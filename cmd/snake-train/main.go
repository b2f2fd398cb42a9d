package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"snake-arena/config"
	"snake-arena/session"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-train: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config (default $"+config.EnvPath+")")
	episodes := flag.Int("episodes", 1000, "rounds to play")
	maxSteps := flag.Int("max-steps", 2000, "moves allowed per round")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = clock)")
	flag.Parse()

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	s, err := session.New(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res := s.Train(ctx, *episodes, *maxSteps)
	log.Info("training finished",
		zap.Int("episodes", res.Episodes),
		zap.Int("best", res.BestScore),
		zap.Float64("mean", res.MeanScore),
		zap.Int("states", res.States))

	return s.Close()
}
