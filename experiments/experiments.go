// Package experiments runs self-play workloads against the engine and
// persists their metrics. The parallelism model matches what the engine
// is built for: every worker owns a private clone of the opening state
// and never contends on a shared board.
package experiments

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"connect4/agent"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
)

// SelfPlay configures one throughput run: random-vs-random games played
// across parallel workers from a shared opening position.
type SelfPlay struct {
	Width   int
	Height  int
	Connect int
	Games   int
	Workers int
	Seed    uint64
	OutDir  string
}

type gameResult struct {
	id     int
	metric metrics.GameMetric
	moves  []metrics.MoveMetric
}

// Run plays the configured number of games and writes game, move, and
// run-summary CSV records to a timestamped folder under OutDir.
func Run(opts SelfPlay) error {
	if opts.Games <= 0 || opts.Workers <= 0 {
		return fmt.Errorf("self-play needs at least one game and one worker, got games=%d workers=%d",
			opts.Games, opts.Workers)
	}

	// The shared opening every worker clones from. Also validates the
	// board configuration before any worker starts.
	opening, err := game.NewGameState(opts.Width, opts.Height, opts.Connect)
	if err != nil {
		return fmt.Errorf("failed to set up the opening state: %w", err)
	}

	writer, err := metrics.NewWriter(opts.OutDir)
	if err != nil {
		return fmt.Errorf("failed to create run writer: %w", err)
	}

	log.Info().Msgf("starting self-play run: %d games on a %dx%d board across %d workers",
		opts.Games, opts.Width, opts.Height, opts.Workers)

	collector := metrics.NewCollector()
	collector.Start(opts.Workers)

	tasks := make(chan int, opts.Games)
	for id := 1; id <= opts.Games; id++ {
		tasks <- id
	}
	close(tasks)

	results := make(chan gameResult, opts.Games)
	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range tasks {
				agents := [2]agent.Agent{
					agent.NewRandom(opts.Seed + uint64(id)*2),
					agent.NewRandom(opts.Seed + uint64(id)*2 + 1),
				}
				e := &engine.Engine{State: opening.Clone(), Agents: agents}

				outcome, gameMetric, moveMetrics, err := e.Run()
				if err != nil {
					log.Error().Err(err).Msgf("game %d aborted", id)
					continue
				}

				collector.AddGame()
				collector.AddMoves(gameMetric.TotalMoves)
				results <- gameResult{id: id, metric: gameMetric, moves: moveMetrics}
				log.Debug().Msgf("game %d finished: %s", id, outcome)
			}
		}()
	}
	wg.Wait()
	close(results)

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for result := range results {
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         result.id,
			GameMetric: result.metric,
		})
		for _, mm := range result.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       result.id,
				MoveMetric: mm,
			})
		}
	}

	runMetric := collector.Complete()
	log.Info().Msgf("self-play run complete: %d games, %d moves in %s (%.1f games/sec)",
		runMetric.Games, runMetric.Moves, runMetric.Duration, runMetric.GamesPerSecond())

	// The workers only ever mutated their clones
	if opening.Outcome().Terminal() || len(opening.LegalMoves()) != opts.Width {
		return fmt.Errorf("opening state was mutated during the run")
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	err = writer.WriteRunMetric(runMetric)
	if err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}
	log.Info().Msgf("stored run records in %s", writer.BaseDir())

	return nil
}
