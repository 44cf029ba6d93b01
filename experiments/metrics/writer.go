package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records under a timestamped directory so
// repeated runs never clobber each other.
type Writer struct {
	baseDir string
}

// NewWriter creates experiments/<name>/<timestamp>/ and returns a writer
// rooted there.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir is where this writer puts its files.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// WritePlannerConfigs writes planner_configs.csv.
func (w *Writer) WritePlannerConfigs(configs []PlannerConfig) error {
	file, err := os.Create(filepath.Join(w.baseDir, "planner_configs.csv"))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	defer cw.Flush()

	header := []string{"config_id", "planner", "iterations", "goroutines", "horizon", "exploration"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range configs {
		row := []string{
			strconv.Itoa(c.ID),
			c.Planner,
			strconv.Itoa(c.Iterations),
			strconv.Itoa(c.Goroutines),
			strconv.Itoa(c.Horizon),
			strconv.FormatFloat(c.Exploration, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// WriteRunRecords writes run_records.csv.
func (w *Writer) WriteRunRecords(records []RunRecord) error {
	file, err := os.Create(filepath.Join(w.baseDir, "run_records.csv"))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	defer cw.Flush()

	header := []string{"run_id", "config_id", "run", "reward", "steps", "duration_ms", "episodes", "expansions", "rollout_moves"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.ConfigID),
			strconv.Itoa(r.Run),
			strconv.FormatFloat(r.Reward, 'f', -1, 64),
			strconv.Itoa(r.Steps),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
			strconv.FormatInt(r.Episodes, 10),
			strconv.FormatInt(r.Expansions, 10),
			strconv.FormatInt(r.RolloutMoves, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// WriteSweepRecords writes sweep_records.csv.
func (w *Writer) WriteSweepRecords(records []SweepRecord) error {
	file, err := os.Create(filepath.Join(w.baseDir, "sweep_records.csv"))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	defer cw.Flush()

	header := []string{"goroutines", "run", "duration_ms", "episodes", "episodes_per_second"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Goroutines),
			strconv.Itoa(r.Run),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
			strconv.FormatInt(r.Episodes, 10),
			strconv.FormatFloat(r.EpisodesPerSecond, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}
