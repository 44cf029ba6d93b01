// Package metrics holds the result records of experiment runs and writes
// them out as CSV for offline analysis.
package metrics

import "time"

// PlannerConfig describes one planner parameterization under comparison.
type PlannerConfig struct {
	ID          int
	Planner     string
	Iterations  int
	Goroutines  int
	Horizon     int
	Exploration float64
}

// RunRecord is one planning run driven to its horizon: what the plan
// actually collected when replayed on the session, and what the search
// spent to find it.
type RunRecord struct {
	ID           int
	ConfigID     int
	Run          int
	Reward       float64
	Steps        int
	Duration     time.Duration
	Episodes     int64
	Expansions   int64
	RolloutMoves int64
}

// SweepRecord is one throughput measurement at a fixed goroutine count.
type SweepRecord struct {
	Goroutines        int
	Run               int
	Duration          time.Duration
	Episodes          int64
	EpisodesPerSecond float64
}
