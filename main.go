package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"heroes/experiments"
	"heroes/game"
	"heroes/planner"
	"heroes/scenario"
	"heroes/sim"
)

func main() {
	plannerName := flag.String("planner", "mcts", "Planner to ask for advice: greedy, horizon or mcts")
	scenarioPath := flag.String("scenario", "", "Scenario YAML file; empty for the built-in demo map")
	days := flag.Int("days", 2, "Planning horizon in days")
	iterations := flag.Int("iterations", 1000, "Number of search episodes for mcts")
	movement := flag.Float64("movement", 300, "Daily movement budget for the demo hero")
	army := flag.Int("army", 30, "Demo hero army size in pikemen")
	exploration := flag.Float64("exploration", planner.DefaultExploration, "Exploration constant for mcts")
	goroutines := flag.Int("goroutines", 1, "Number of goroutines for parallel search")
	seed := flag.Uint64("seed", 0, "Random seed for mcts; 0 picks one from the clock")
	benchmark := flag.Bool("benchmark", false, "Run the planner comparison experiment and exit")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *benchmark {
		experiments.RunComparison()
		return
	}

	session, heroID, err := buildSession(*scenarioPath, *movement, *army)
	if err != nil {
		fmt.Printf("failed to set up session: %v\n", err)
		return
	}
	if *verbose {
		session.SetLogger(log.Logger)
	}

	hero := session.Hero(heroID)
	fmt.Printf("Hero %s at %s with strength %.0f and %.0f movement\n",
		hero.ID, hero.Pos, hero.Strength(), hero.Movement)

	start := time.Now()
	switch *plannerName {
	case "greedy":
		printPath("greedy", planner.Greedy(session.World, hero, session.CombatRatio))
	case "horizon":
		printPath("horizon", planner.Horizon(session.World, hero, session.CombatRatio, *days, hero.BaseMovement))
	case "mcts":
		options := []planner.Option{
			planner.WithIterations(*iterations),
			planner.WithHorizon(*days),
			planner.WithExploration(*exploration),
			planner.WithGoroutines(*goroutines),
		}
		if *seed > 0 {
			options = append(options, planner.WithSeed(*seed))
		}

		action, err := planner.NewMCTS(options...).Plan(session, heroID)
		if err != nil {
			fmt.Printf("planning failed: %v\n", err)
			return
		}
		if action == nil {
			fmt.Printf("mcts: nothing worth doing\n")
		} else {
			fmt.Printf("mcts: %s\n", action)
		}
	default:
		fmt.Printf("unknown planner %q: want greedy, horizon or mcts\n", *plannerName)
		return
	}
	fmt.Printf("Planned in %s\n", time.Since(start))
}

// buildSession loads the scenario file, or assembles the demo session when
// no file is given.
func buildSession(path string, movement float64, army int) (*sim.Session, string, error) {
	if path != "" {
		session, err := scenario.Load(path)
		if err != nil {
			return nil, "", err
		}
		return session, session.ActiveHero, nil
	}

	hero := game.SampleHero(movement, army)
	session := sim.NewSession(game.SampleWorld(), []*game.Hero{hero}, 0)
	return session, hero.ID, nil
}

func printPath(name string, path []game.Position) {
	if len(path) < 2 {
		fmt.Printf("%s: stay put, nothing worth the trip\n", name)
		return
	}
	fmt.Printf("%s: %v\n", name, path)
}
