package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID   int
	Seed uint64
	GameMetric
}

type Setup struct {
	NumGames   int           `json:"numGames"`
	Goroutines int           `json:"goroutines"`
	Policy     string        `json:"policy"`
	Rules      string        `json:"rules"`
	Seed       uint64        `json:"seed"`
	Wins       int           `json:"wins"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	Duration   time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold one experiment's files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	header := []string{"id", "seed", "player", "mission", "target", "rules", "rounds", "attacks", "conquests", "violations", "victory_checks", "won", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.Player,
			strconv.Itoa(record.Mission),
			record.Target,
			record.Rules,
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Attacks),
			strconv.Itoa(record.Conquests),
			strconv.Itoa(record.Violations),
			strconv.Itoa(record.VictoryChecks),
			strconv.FormatBool(record.Won),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}
