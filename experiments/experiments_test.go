package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// readRecords loads a CSV produced by the run and strips the header.
func readRecords(t *testing.T, dir, name string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows, "File should at least contain a header")
	return rows[1:]
}

func TestSelfPlayRun(t *testing.T) {
	t.Run("plays every game and stores the records", func(t *testing.T) {
		outDir := t.TempDir()
		opts := SelfPlay{
			Width:   7,
			Height:  6,
			Connect: 4,
			Games:   8,
			Workers: 4,
			Seed:    1,
			OutDir:  outDir,
		}

		require.NoError(t, Run(opts))

		runDirs, err := os.ReadDir(outDir)
		require.NoError(t, err)
		require.Len(t, runDirs, 1, "Run should create one timestamped folder")
		runDir := filepath.Join(outDir, runDirs[0].Name())

		games := readRecords(t, runDir, "game_records.csv")
		require.Len(t, games, opts.Games)

		for _, row := range games {
			require.Contains(t, []string{"Player1", "Player2", "Draw"}, row[2],
				"Every stored game must be terminal")
		}

		moves := readRecords(t, runDir, "move_records.csv")
		require.GreaterOrEqual(t, len(moves), opts.Games*7,
			"Each game takes at least seven moves")

		summary := readRecords(t, runDir, "run_summary.csv")
		require.Len(t, summary, 1)
		require.Equal(t, "4", summary[0][0], "Summary should record the worker count")
		require.Equal(t, "8", summary[0][2], "Summary should record the game count")
	})

	t.Run("rejects a bad board configuration", func(t *testing.T) {
		err := Run(SelfPlay{Width: 7, Height: 6, Connect: 9, Games: 1, Workers: 1, OutDir: t.TempDir()})
		require.Error(t, err)
	})

	t.Run("rejects an empty run", func(t *testing.T) {
		err := Run(SelfPlay{Width: 7, Height: 6, Connect: 4, Games: 0, Workers: 1, OutDir: t.TempDir()})
		require.Error(t, err)
	})
}
