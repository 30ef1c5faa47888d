// Command connect4 runs the engine through its two wrapper modes: a
// single rendered match between two random agents, or a parallel
// self-play throughput run with CSV metrics.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connect4/agent"
	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (environment variables otherwise)")
	mode := flag.String("mode", "play", "play: one rendered match, selfplay: parallel throughput run")
	seed := flag.Uint64("seed", 0, "Override the configured random seed (0 keeps it)")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	setupLogging(cfg.LogLevel)
	if *seed != 0 {
		cfg.SelfPlay.Seed = *seed
	}

	switch *mode {
	case "play":
		runMatch(cfg)
	case "selfplay":
		opts := experiments.SelfPlay{
			Width:   cfg.Board.Width,
			Height:  cfg.Board.Height,
			Connect: cfg.Board.Connect,
			Games:   cfg.SelfPlay.Games,
			Workers: cfg.SelfPlay.Workers,
			Seed:    cfg.SelfPlay.Seed,
			OutDir:  cfg.SelfPlay.OutDir,
		}
		if err := experiments.Run(opts); err != nil {
			log.Fatal().Err(err).Msg("self-play run failed")
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func runMatch(cfg *config.Config) {
	agents := [2]agent.Agent{
		agent.NewRandom(cfg.SelfPlay.Seed),
		agent.NewRandom(cfg.SelfPlay.Seed + 1),
	}

	e, err := engine.LocalEngine(agents, cfg.Board.Width, cfg.Board.Height, cfg.Board.Connect)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up the game")
	}

	outcome, gameMetric, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	fmt.Print(e.State.Render())
	fmt.Printf("Outcome: %s in %d moves (%s)\n", outcome, gameMetric.TotalMoves, gameMetric.Duration)
}
