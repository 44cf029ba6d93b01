package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"heroes/game"
	"heroes/sim"
)

func TestStateKeys(t *testing.T) {
	t.Run("default key folds loot histories together", func(t *testing.T) {
		before := branchWorld()
		after := branchWorld()
		// Emptying a pile elsewhere leaves position, day, and movement
		// untouched, so the default key cannot tell the sessions apart.
		after.World.Tile(game.Position{X: 0, Y: 2}).Objects = nil

		require.Equal(t, DefaultStateKey(before, "h1"), DefaultStateKey(after, "h1"))
	})

	t.Run("default key tracks position day and movement", func(t *testing.T) {
		s := branchWorld()
		base := DefaultStateKey(s, "h1")

		moved := branchWorld()
		moved.Move("h1", game.Position{X: 0, Y: 1})
		require.NotEqual(t, base, DefaultStateKey(moved, "h1"))

		rested := branchWorld()
		rested.EndDay()
		require.NotEqual(t, base, DefaultStateKey(rested, "h1"))
	})

	t.Run("world-aware key separates loot histories", func(t *testing.T) {
		before := branchWorld()
		after := branchWorld()
		after.World.Tile(game.Position{X: 0, Y: 2}).Objects = nil

		require.NotEqual(t, WorldAwareStateKey(before, "h1"), WorldAwareStateKey(after, "h1"))
	})

	t.Run("world-aware key sees mine ownership", func(t *testing.T) {
		plain := sampleSession()
		flagged := sampleSession()
		tile := flagged.World.Tile(game.Position{X: 2, Y: 0})
		tile.Objects[0] = game.Mine{Type: "gold_mine", FlagReward: 300, Owner: "cli_hero"}

		require.NotEqual(t, WorldAwareStateKey(plain, "cli_hero"), WorldAwareStateKey(flagged, "cli_hero"))
	})

	t.Run("keys are stable across calls", func(t *testing.T) {
		s := sampleSession()
		require.Equal(t, DefaultStateKey(s, "cli_hero"), DefaultStateKey(s, "cli_hero"))
		require.Equal(t, WorldAwareStateKey(s, "cli_hero"), WorldAwareStateKey(s, "cli_hero"))
	})

	t.Run("planner accepts a custom key function", func(t *testing.T) {
		m := NewMCTS(WithIterations(100), WithHorizon(1), WithSeed(7),
			WithStateKeyFunc(WorldAwareStateKey))
		gotAction, err := m.Plan(branchWorld(), "h1")

		require.NoError(t, err)
		require.NotNil(t, gotAction)
		require.Equal(t, game.Position{X: 0, Y: 1}, gotAction.Target,
			"Stricter keys should not change the obvious answer")
	})
}

func TestRolloutValue(t *testing.T) {
	t.Run("collects resources greedily until the horizon", func(t *testing.T) {
		s := branchWorld()
		gotReward := rolloutValue(s.Clone(), "h1", 1, NewDummyCollector())
		require.Equal(t, 500.0, gotReward,
			"One day and 200 movement reach the pile two hops north")
	})

	t.Run("ignores rewards behind unwinnable guards", func(t *testing.T) {
		w := game.NewWorld()
		w.AddTile(&game.Tile{Pos: game.Position{X: 0, Y: 0}})
		w.AddTile(&game.Tile{Pos: game.Position{X: 0, Y: 1},
			BaseReward: 1000,
			Objects:    []game.Object{game.Monster{Name: "dragon", Strength: 500}}})
		w.AddEdge(game.Position{X: 0, Y: 0}, game.Position{X: 0, Y: 1}, 100)
		hero := game.NewHero("h1", game.Position{X: 0, Y: 0}, 300, map[string]int{"pikemen": 10})
		s := sim.NewSession(w, []*game.Hero{hero}, 0)

		gotReward := rolloutValue(s, "h1", 2, NewDummyCollector())
		require.Equal(t, 0.0, gotReward,
			"Strength 100 cannot take the guarded tile, so there is nothing to collect")
	})
}
