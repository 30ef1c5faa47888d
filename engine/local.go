// Package engine runs complete games between two agents. It is a thin
// collaborator over the game rules: all legality and termination
// decisions stay inside game.GameState.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"connect4/agent"
	"connect4/experiments/metrics"
	"connect4/game"
)

// Engine drives two agents over one GameState until the outcome is
// terminal. Agents are indexed by seat: Agents[0] plays Player1.
type Engine struct {
	State  *game.GameState
	Agents [2]agent.Agent
}

// LocalEngine pairs two agents over a fresh board.
func LocalEngine(agents [2]agent.Agent, width, height, connect int) (*Engine, error) {
	state, err := game.NewGameState(width, height, connect)
	if err != nil {
		return nil, err
	}
	return &Engine{State: state, Agents: agents}, nil
}

// Run executes the game loop until the game ends. The draw rule
// guarantees termination within width*height moves. An agent error or an
// illegal move aborts the game.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	startingPlayer := e.State.Player()
	log.Info().Msgf("%s is starting", startingPlayer)

	var moveMetrics []metrics.MoveMetric
	step := 1
	for !e.State.Outcome().Terminal() {
		mover := e.State.Player()
		a := e.Agents[mover.Index()]

		moveStart := time.Now()
		column, err := a.FindMove(e.State)
		if err != nil {
			return game.Outcome{}, metrics.GameMetric{}, moveMetrics,
				fmt.Errorf("%s failed to pick a move: %w", mover, err)
		}

		result, err := e.State.ApplyMove(column)
		if err != nil {
			return game.Outcome{}, metrics.GameMetric{}, moveMetrics,
				fmt.Errorf("%s played an illegal move: %w", mover, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     step,
			Player:   mover,
			Column:   column,
			Duration: time.Since(moveStart),
		})
		log.Debug().Msgf("step %d: %s played column %d, next %s",
			step, mover, column, result.Info.NextPlayer)
		step++
	}

	outcome := e.State.Outcome()
	log.Info().Msgf("game over after %d moves: %s", step-1, outcome)

	gameMetric := metrics.GameMetric{
		StartingPlayer: startingPlayer,
		Outcome:        outcome.String(),
		StartTime:      start,
		EndTime:        time.Now(),
		Duration:       time.Since(start),
		TotalMoves:     step - 1,
	}
	return outcome, gameMetric, moveMetrics, nil
}
