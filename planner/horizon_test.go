package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"heroes/game"
)

/**
Horizon search:
- collects the best combination within one day's movement
- a tighter movement budget shrinks the plan
- a second day extends the plan across the day boundary
- small rewards on the way are worth crossing for a large day-two reward
- with no rewards the plan is just the start position
- winnable guards do not divert the route, unwinnable ones do
- looping back never recollects and ties go to the shorter plan
- the iteration cap and heuristic options are honored
*/

func horizonWorld() *game.World {
	w := game.NewWorld()
	w.AddTile(&game.Tile{Pos: game.Position{X: 0, Y: 0}})
	w.AddTile(&game.Tile{Pos: game.Position{X: 0, Y: 1}, Objects: []game.Object{game.ResourcePile{Resource: game.Gold, Amount: 100}}})
	w.AddTile(&game.Tile{Pos: game.Position{X: 1, Y: 0}, BaseReward: 10})
	w.AddTile(&game.Tile{Pos: game.Position{X: 1, Y: 1}, Objects: []game.Object{game.ResourcePile{Resource: game.Gold, Amount: 150}}})
	w.AddTile(&game.Tile{Pos: game.Position{X: 2, Y: 1}, Objects: []game.Object{game.Artifact{ID: "gem_ring", Value: 200}}})
	w.AddEdge(game.Position{X: 0, Y: 0}, game.Position{X: 0, Y: 1}, 100)
	w.AddEdge(game.Position{X: 0, Y: 0}, game.Position{X: 1, Y: 0}, 100)
	w.AddEdge(game.Position{X: 0, Y: 1}, game.Position{X: 1, Y: 1}, 100)
	w.AddEdge(game.Position{X: 1, Y: 0}, game.Position{X: 1, Y: 1}, 100)
	w.AddEdge(game.Position{X: 1, Y: 1}, game.Position{X: 2, Y: 1}, 100)
	return w
}

func horizonHero() *game.Hero {
	return game.NewHero("astar_hero", game.Position{X: 0, Y: 0}, 250, map[string]int{"swordsman": 10})
}

func TestHorizonPlan(t *testing.T) {
	t.Run("collects the best combination within one day", func(t *testing.T) {
		// 100 at (0,1) plus 150 at (1,1) costs 200 of the 250 movement.
		gotPath := Horizon(horizonWorld(), horizonHero(), game.DefaultCombatRatio, 1, 250)
		require.Equal(t, []game.Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, gotPath)
	})

	t.Run("tighter movement shrinks the plan", func(t *testing.T) {
		gotPath := Horizon(horizonWorld(), horizonHero(), game.DefaultCombatRatio, 1, 150)
		require.Equal(t, []game.Position{{X: 0, Y: 0}, {X: 0, Y: 1}}, gotPath,
			"One hop is all 150 movement buys")
	})

	t.Run("second day reaches the artifact", func(t *testing.T) {
		gotPath := Horizon(horizonWorld(), horizonHero(), game.DefaultCombatRatio, 2, 250)
		require.Equal(t, []game.Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, gotPath,
			"Day two should continue from (1,1) without repeating it")
	})

	t.Run("small rewards on the way to a big day-two prize", func(t *testing.T) {
		w := horizonWorld()
		w.Tile(game.Position{X: 0, Y: 1}).Objects = []game.Object{game.ResourcePile{Resource: game.Gold, Amount: 5}}
		w.Tile(game.Position{X: 1, Y: 0}).BaseReward = 0
		w.Tile(game.Position{X: 1, Y: 1}).Objects = []game.Object{game.ResourcePile{Resource: game.Gold, Amount: 10}}
		w.Tile(game.Position{X: 2, Y: 1}).Objects = []game.Object{game.ResourcePile{Resource: game.Gold, Amount: 500}}

		gotPath := Horizon(w, horizonHero(), game.DefaultCombatRatio, 2, 250)
		require.Equal(t, []game.Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, gotPath,
			"Crossing for 15 today sets up the 500 tomorrow")
	})

	t.Run("no rewards means no plan beyond standing still", func(t *testing.T) {
		w := horizonWorld()
		for _, pos := range w.Positions() {
			w.Tile(pos).Objects = nil
			w.Tile(pos).BaseReward = 0
		}
		gotPath := Horizon(w, horizonHero(), game.DefaultCombatRatio, 1, 250)
		require.Equal(t, []game.Position{{X: 0, Y: 0}}, gotPath)
	})

	t.Run("winnable guard does not divert the route", func(t *testing.T) {
		w := horizonWorld()
		tile := w.Tile(game.Position{X: 0, Y: 1})
		tile.Objects = append(tile.Objects, game.Monster{Name: "weak_guard", Strength: 30})

		gotPath := Horizon(w, horizonHero(), game.DefaultCombatRatio, 1, 250)
		require.Equal(t, []game.Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, gotPath,
			"Strength 100 beats a 30 guard at ratio 1.5")
	})

	t.Run("unwinnable guard forces the detour", func(t *testing.T) {
		w := horizonWorld()
		w.Tile(game.Position{X: 0, Y: 1}).Objects = []game.Object{game.Monster{Name: "strong_guard", Strength: 100}}

		gotPath := Horizon(w, horizonHero(), game.DefaultCombatRatio, 1, 250)
		require.Equal(t, []game.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, gotPath,
			"The blocked gold should be traded for the southern route")
	})

	t.Run("looping back never recollects", func(t *testing.T) {
		w := game.NewWorld()
		w.AddTile(&game.Tile{Pos: game.Position{X: 0, Y: 0}})
		w.AddTile(&game.Tile{Pos: game.Position{X: 0, Y: 1}, Objects: []game.Object{game.ResourcePile{Resource: game.Gold, Amount: 100}}})
		w.AddEdge(game.Position{X: 0, Y: 0}, game.Position{X: 0, Y: 1}, 100)

		// 300 movement is enough to bounce back and forth, but the pile
		// only pays once, so the two-step plan should win the tie.
		gotPath := Horizon(w, horizonHero(), game.DefaultCombatRatio, 1, 300)
		require.Equal(t, []game.Position{{X: 0, Y: 0}, {X: 0, Y: 1}}, gotPath)
	})

	t.Run("iteration cap cuts the search short", func(t *testing.T) {
		search := NewHorizonSearch(game.DefaultCombatRatio, 1, 250, WithHorizonIterations(1))
		gotPath := search.Plan(horizonWorld(), horizonHero())
		require.Equal(t, []game.Position{{X: 0, Y: 0}}, gotPath,
			"One expansion is only enough to look at the start")
	})

	t.Run("off-map hero gets no plan", func(t *testing.T) {
		hero := horizonHero()
		hero.Pos = game.Position{X: 100, Y: 100}
		require.Nil(t, Horizon(horizonWorld(), hero, game.DefaultCombatRatio, 1, 250))
	})
}

func TestHorizonHeuristic(t *testing.T) {
	t.Run("ordering heuristic does not change the answer", func(t *testing.T) {
		plain := Horizon(horizonWorld(), horizonHero(), game.DefaultCombatRatio, 2, 250)
		search := NewHorizonSearch(game.DefaultCombatRatio, 2, 250, WithHeuristic(BestRemainingReward))
		guided := search.Plan(horizonWorld(), horizonHero())
		require.Equal(t, plain, guided)
	})

	t.Run("best remaining reward skips collected and unwinnable tiles", func(t *testing.T) {
		w := horizonWorld()
		w.Tile(game.Position{X: 2, Y: 1}).Objects = []game.Object{
			game.Artifact{ID: "gem_ring", Value: 200},
			game.Monster{Name: "dragon", Strength: 500},
		}
		collected := map[game.Position]bool{{X: 1, Y: 1}: true}

		gotEstimate := BestRemainingReward(w, game.Position{X: 0, Y: 0}, 1, 100, game.DefaultCombatRatio, collected)
		require.Equal(t, 100.0, gotEstimate,
			"The 200 is guarded beyond reach and the 150 is already taken")
	})

	t.Run("shared cache fills and clears", func(t *testing.T) {
		cache := NewHeuristicCache()
		search := NewHorizonSearch(game.DefaultCombatRatio, 1, 250,
			WithHeuristic(BestRemainingReward), WithHeuristicCache(cache))
		search.Plan(horizonWorld(), horizonHero())

		require.Greater(t, cache.Len(), 0, "Search should have memoized estimates")
		cache.Clear()
		require.Equal(t, 0, cache.Len())
	})
}

func TestHorizonOptionValidation(t *testing.T) {
	require.Panics(t, func() { WithHorizonIterations(0) })
	require.Panics(t, func() { WithHeuristic(nil) })
	require.Panics(t, func() { WithHeuristicCache(nil) })
}
