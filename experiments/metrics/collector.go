package metrics

import (
	"sync/atomic"
	"time"

	"connect4/game"
)

// GameMetric describes one completed game.
type GameMetric struct {
	StartingPlayer game.Player
	Outcome        string // "Player1", "Player2" or "Draw"
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// MoveMetric describes one applied move.
type MoveMetric struct {
	Step     int
	Player   game.Player
	Column   int
	Duration time.Duration
}

// RunMetric summarizes a whole self-play run.
type RunMetric struct {
	Workers  int
	Duration time.Duration
	Games    int
	Moves    int
}

// GamesPerSecond is the run's throughput.
func (m RunMetric) GamesPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Games) / m.Duration.Seconds()
}

// Collector aggregates counts across concurrent workers.
type Collector interface {
	Start(workers int)
	AddGame()
	AddMoves(n int)
	Complete() RunMetric
}

type collector struct {
	workers   int
	startTime time.Time
	games     atomic.Int64
	moves     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(workers int) {
	c.startTime = time.Now()
	c.workers = workers
}

func (c *collector) AddGame() {
	c.games.Add(1)
}

func (c *collector) AddMoves(n int) {
	c.moves.Add(int64(n))
}

func (c *collector) Complete() RunMetric {
	return RunMetric{
		Workers:  c.workers,
		Duration: time.Since(c.startTime),
		Games:    int(c.games.Load()),
		Moves:    int(c.moves.Load()),
	}
}

// NewDummyCollector returns a collector that records nothing, for callers
// that do not want run summaries.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

type dummyCollector struct{}

func (c *dummyCollector) Start(workers int) {}
func (c *dummyCollector) AddGame()          {}
func (c *dummyCollector) AddMoves(n int)    {}
func (c *dummyCollector) Complete() RunMetric {
	return RunMetric{}
}
