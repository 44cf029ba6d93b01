package planner

import "heroes/sim"

// Planner hyperparameter defaults.
const (
	DefaultIterations  = 1000
	DefaultHorizon     = 2
	DefaultExploration = 1.414
)

// legalActions enumerates the hero's options in the current state: one
// move per affordable adjacent edge while movement remains, plus ending
// the day while the horizon allows another.
func legalActions(s *sim.Session, heroID string, horizon int) []sim.Action {
	hero := s.Hero(heroID)
	if hero == nil {
		return nil
	}
	var actions []sim.Action
	if hero.Movement > 0 {
		for _, next := range s.World.Neighbors(hero.Pos) {
			cost, _ := s.World.EdgeCost(hero.Pos, next)
			if hero.Movement >= cost {
				actions = append(actions, sim.Action{Kind: sim.ActionMove, Target: next})
			}
		}
	}
	if s.Day < horizon {
		actions = append(actions, sim.Action{Kind: sim.ActionEndDay})
	}
	return actions
}

// rolloutValue plays the session out to the horizon with the greedy
// policy and returns the resources collected along the way. The session
// is consumed.
func rolloutValue(s *sim.Session, heroID string, horizon int, collector Collector) float64 {
	var total float64
	remaining := horizon - s.Day + 1
	for i := 0; i < remaining; i++ {
		hero := s.Hero(heroID)
		if hero == nil || s.Day > horizon {
			break
		}
		for hero.Movement > 0 {
			path := Greedy(s.World, hero, s.CombatRatio)
			if len(path) < 2 {
				break
			}
			result := s.Move(heroID, path[1])
			collector.AddRolloutMove()
			total += result.CollectedResources()
			if result.Status != sim.StatusSuccess {
				break
			}
		}
		if s.Day < horizon {
			s.EndDay()
		} else {
			break
		}
	}
	return total
}
