package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"heroes/experiments/metrics"
	"heroes/game"
	"heroes/planner"
	"heroes/sim"
)

// RunThroughputExperiment measures search throughput across goroutine
// counts with a fixed episode budget and stores sweep_records.csv.
func RunThroughputExperiment() {
	const RunsPerCount = 5
	const Iterations = 2000
	goroutineCounts := []int{1, 2, 4, 8, 16, 32, 64}

	writer, err := metrics.NewWriter("throughput")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	records := []metrics.SweepRecord{}

	log.Info().Msg("starting throughput experiment...")

	for _, goroutines := range goroutineCounts {
		log.Info().Msgf("starting sweep with %d goroutines...", goroutines)

		for run := 0; run < RunsPerCount; run++ {
			record := measureThroughput(goroutines, run, Iterations)
			records = append(records, record)

			log.Info().Msgf("completed run %d of %d at %.0f episodes per second", run+1, RunsPerCount, record.EpisodesPerSecond)
		}
		log.Info().Msgf("completed sweep with %d goroutines", goroutines)
	}

	log.Info().Msg("completed throughput experiment")

	err = writer.WriteSweepRecords(records)
	if err != nil {
		panic(fmt.Sprintf("failed to store sweep records: %v", err))
	}
	log.Info().Msg("stored sweep records")
}

// measureThroughput times a single search over the demo map.
func measureThroughput(goroutines, run, iterations int) metrics.SweepRecord {
	hero := game.SampleHero(comparisonMovement, comparisonArmy)
	session := sim.NewSession(game.SampleWorld(), []*game.Hero{hero}, 0)

	collector := planner.NewCollector()
	m := planner.NewMCTS(
		planner.WithIterations(iterations),
		planner.WithHorizon(comparisonDays),
		planner.WithGoroutines(goroutines),
		planner.WithSeed(uint64(run+1)),
		planner.WithCollector(collector),
	)

	start := time.Now()
	if _, err := m.Plan(session, hero.ID); err != nil {
		panic(fmt.Sprintf("planning failed: %v", err))
	}
	elapsed := time.Since(start)

	episodes := collector.Counts().Episodes
	return metrics.SweepRecord{
		Goroutines:        goroutines,
		Run:               run,
		Duration:          elapsed,
		Episodes:          episodes,
		EpisodesPerSecond: float64(episodes) / elapsed.Seconds(),
	}
}
