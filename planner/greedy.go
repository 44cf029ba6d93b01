// Package planner implements three ways to decide what a hero should do
// with its turn: a one-step greedy pick, a best-first search across a
// multi-day horizon, and a Monte Carlo tree search. All of them treat the
// session as read-only and speculate on clones.
package planner

import (
	"math"

	"heroes/game"
)

// Greedy returns the path to the single most rewarding tile the hero can
// still reach today, scored by reward per effective cost (travel plus
// fight). Unwinnable fights and tiles beyond the movement budget are
// skipped; a zero-cost positive reward scores infinite. Ties on score go
// to the shorter path. Returns nil when nothing reachable is worth
// anything.
func Greedy(world *game.World, hero *game.Hero, ratio float64) []game.Position {
	if !world.HasTile(hero.Pos) {
		return nil
	}
	costs, paths := game.ShortestPaths(world, hero.Pos)

	var best []game.Position
	maxScore := math.Inf(-1)
	for _, target := range world.Positions() {
		cost, reachable := costs[target]
		if !reachable || target == hero.Pos {
			continue
		}
		if cost > hero.Movement {
			continue
		}
		fight := game.FightCost(hero.Strength(), world, target, ratio)
		if math.IsInf(fight, 1) {
			continue
		}
		reward := game.TileReward(world, target)
		effective := cost + fight

		var score float64
		switch {
		case effective <= 0 && reward > 0:
			score = math.Inf(1)
		case effective <= 0:
			score = 0
		default:
			score = reward / effective
		}

		path := paths[target]
		if score > maxScore {
			maxScore = score
			best = path
		} else if score == maxScore && score > 0 && len(path) < len(best) {
			best = path
		}
	}

	if maxScore <= 0 {
		return nil
	}
	return best
}
