// Package experiments benchmarks the planners against each other on the
// demo map and records the results as CSV for offline analysis.
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

// RunsPerConfig is how many times each planner configuration is driven to
// the horizon.
const RunsPerConfig = 20

const (
	comparisonDays     = 3
	comparisonMovement = 300
	comparisonArmy     = 30
)

var comparisonConfigs = []metrics.PlannerConfig{
	{ID: 0, Planner: "greedy", Horizon: comparisonDays},
	{ID: 1, Planner: "horizon", Horizon: comparisonDays},
	{ID: 2, Planner: "mcts", Iterations: 500, Goroutines: 1, Horizon: comparisonDays, Exploration: planner.DefaultExploration},
	{ID: 3, Planner: "mcts", Iterations: 2000, Goroutines: 1, Horizon: comparisonDays, Exploration: planner.DefaultExploration},
	{ID: 4, Planner: "mcts", Iterations: 2000, Goroutines: 8, Horizon: comparisonDays, Exploration: planner.DefaultExploration},
}

// RunComparison drives every configured planner over the demo map and
// stores planner_configs.csv and run_records.csv under experiments/.
func RunComparison() {
	records := []metrics.RunRecord{}

	log.Info().Msgf("starting comparison experiment...")

	for ci, config := range comparisonConfigs {
		log.Info().Msgf("starting config %d of %d: %+v...", ci+1, len(comparisonConfigs), config)

		for run := 0; run < RunsPerConfig; run++ {
			record := driveRun(config, run, uint64(run+1))
			record.ID = len(records) + 1
			records = append(records, record)

			log.Info().Msgf("completed config %d of %d run %d of %d with reward: %.0f", ci+1, len(comparisonConfigs), run+1, RunsPerConfig, record.Reward)
		}
		log.Info().Msgf("completed config %d of %d", ci+1, len(comparisonConfigs))
	}

	log.Info().Msgf("completed comparison experiment")

	writer, err := metrics.NewWriter("comparison")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WritePlannerConfigs(comparisonConfigs)
	if err != nil {
		panic(fmt.Sprintf("failed to store planner configs: %v", err))
	}
	log.Info().Msg("stored planner configs")

	err = writer.WriteRunRecords(records)
	if err != nil {
		panic(fmt.Sprintf("failed to store run records: %v", err))
	}
	log.Info().Msg("stored run records")
}

// driveRun plays one fresh demo session to the horizon under the given
// planner and reports what it actually collected.
func driveRun(config metrics.PlannerConfig, run int, seed uint64) metrics.RunRecord {
	hero := game.SampleHero(comparisonMovement, comparisonArmy)
	session := sim.NewSession(game.SampleWorld(), []*game.Hero{hero}, 0)

	start := time.Now()
	var reward float64
	var steps int
	var counts planner.Counts

	switch config.Planner {
	case "greedy":
		reward, steps = driveGreedy(session, hero.ID, config.Horizon)
	case "horizon":
		reward, steps = driveHorizon(session, hero.ID, config.Horizon)
	case "mcts":
		reward, steps, counts = driveMCTS(session, hero.ID, config, seed)
	default:
		panic(fmt.Sprintf("unknown planner %q", config.Planner))
	}

	return metrics.RunRecord{
		ConfigID:     config.ID,
		Run:          run,
		Reward:       reward,
		Steps:        steps,
		Duration:     time.Since(start),
		Episodes:     counts.Episodes,
		Expansions:   counts.Expansions,
		RolloutMoves: counts.RolloutMoves,
	}
}

// driveGreedy replans after every step until the day budget runs out.
func driveGreedy(s *sim.Session, heroID string, days int) (float64, int) {
	var reward float64
	var steps int
	for {
		hero := s.Hero(heroID)
		for hero.Movement > 0 {
			path := planner.Greedy(s.World, hero, s.CombatRatio)
			if len(path) < 2 {
				break
			}
			result := s.Move(heroID, path[1])
			reward += result.CollectedResources()
			steps++
			if result.Status != sim.StatusSuccess {
				break
			}
		}
		if s.Day >= days {
			return reward, steps
		}
		s.EndDay()
	}
}

// driveHorizon plans the whole route up front and replays it, resting
// whenever the day's movement cannot cover the next hop.
func driveHorizon(s *sim.Session, heroID string, days int) (float64, int) {
	hero := s.Hero(heroID)
	path := planner.Horizon(s.World, hero, s.CombatRatio, days, hero.BaseMovement)

	var reward float64
	var steps int
	for i := 1; i < len(path); {
		result := s.Move(heroID, path[i])
		switch result.Status {
		case sim.StatusSuccess:
			reward += result.CollectedResources()
			steps++
			i++
		case sim.StatusError:
			// The plan budgets movement more loosely than the session
			// spends it, so rest and retry the hop when days remain.
			if s.Day >= days {
				return reward, steps
			}
			s.EndDay()
		default:
			return reward, steps
		}
	}
	return reward, steps
}

// driveMCTS asks the tree search for one action at a time until it has
// nothing left to suggest.
func driveMCTS(s *sim.Session, heroID string, config metrics.PlannerConfig, seed uint64) (float64, int, planner.Counts) {
	collector := planner.NewCollector()
	m := planner.NewMCTS(
		planner.WithIterations(config.Iterations),
		planner.WithHorizon(config.Horizon),
		planner.WithExploration(config.Exploration),
		planner.WithGoroutines(config.Goroutines),
		planner.WithSeed(seed),
		planner.WithCollector(collector),
	)

	var reward float64
	var steps int
	for {
		action, err := m.Plan(s, heroID)
		if err != nil {
			panic(fmt.Sprintf("planning failed: %v", err))
		}
		if action == nil {
			break
		}
		result := s.Apply(heroID, *action)
		reward += result.CollectedResources()
		steps++
		if s.Day > config.Horizon {
			break
		}
	}
	return reward, steps, collector.Counts()
}
