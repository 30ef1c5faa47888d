package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GameRecord ties a game's metrics to its run-wide id.
type GameRecord struct {
	ID int
	GameMetric
}

// MoveRecord ties a move's metrics to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer persists run results as CSV files in a timestamped subfolder.
type Writer struct {
	baseDir string
}

func NewWriter(outDir string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// BaseDir is the directory this writer's files end up in.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "starting_player", "outcome", "start_time", "end_time", "duration", "total_moves"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.StartingPlayer.String(),
			record.Outcome,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "column", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Column),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}

// WriteRunMetric stores the run summary next to the per-game records.
func (w *Writer) WriteRunMetric(metric RunMetric) error {
	path := filepath.Join(w.baseDir, "run_summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"workers", "duration", "games", "moves", "games_per_second"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run summary header: %w", err)
	}

	row := []string{
		strconv.Itoa(metric.Workers),
		metric.Duration.String(),
		strconv.Itoa(metric.Games),
		strconv.Itoa(metric.Moves),
		strconv.FormatFloat(metric.GamesPerSecond(), 'f', 2, 64),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write run summary row: %w", err)
	}

	return nil
}
