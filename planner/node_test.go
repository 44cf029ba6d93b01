package planner

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"

	"heroes/game"
	"heroes/sim"
)

/**
Tree nodes:
- an unvisited node scores +Inf so it is tried first
- a visited node scores average reward plus the exploration bonus
- bestChild picks the maximum UCT child
- expand enumerates once and hands out every action exactly once
- robustChild is the most-visited child
- concurrent record calls lose no visits
*/

func moveAction(x, y int) sim.Action {
	return sim.Action{Kind: sim.ActionMove, Target: game.Position{X: x, Y: y}}
}

func TestNodeUCT(t *testing.T) {
	t.Run("unvisited node scores infinite", func(t *testing.T) {
		n := newNode(1, nil, moveAction(0, 1))
		require.True(t, math.IsInf(n.uct(DefaultExploration, math.Log(10)), 1))
	})

	t.Run("visited node balances reward and exploration", func(t *testing.T) {
		n := newNode(1, nil, moveAction(0, 1))
		n.record(100)
		n.record(50)

		gotScore := n.uct(2.0, math.Log(8))
		wantScore := 75.0 + 2.0*math.Sqrt(math.Log(8)/2.0)
		require.InDelta(t, wantScore, gotScore, 1e-9)
	})

	t.Run("zero exploration reduces to average reward", func(t *testing.T) {
		n := newNode(1, nil, moveAction(0, 1))
		n.record(30)
		require.InDelta(t, 30.0, n.uct(0, math.Log(5)), 1e-9)
	})
}

func TestNodeBestChild(t *testing.T) {
	parent := newNode(1, nil, sim.Action{})
	parent.record(0)
	parent.record(0)

	low := parent.addChild(2, moveAction(0, 1))
	low.record(10)
	high := parent.addChild(3, moveAction(1, 0))
	high.record(90)

	t.Run("prefers the higher average", func(t *testing.T) {
		gotChild := parent.bestChild(0)
		require.Same(t, high, gotChild, "Exploitation only should pick the 90")
	})

	t.Run("unvisited sibling jumps the queue", func(t *testing.T) {
		fresh := parent.addChild(4, moveAction(9, 9))
		gotChild := parent.bestChild(DefaultExploration)
		require.Same(t, fresh, gotChild, "Infinite UCT should win")
	})

	t.Run("childless node yields nil", func(t *testing.T) {
		require.Nil(t, newNode(1, nil, sim.Action{}).bestChild(DefaultExploration))
	})
}

func TestNodeExpand(t *testing.T) {
	actions := []sim.Action{moveAction(0, 1), moveAction(1, 0), {Kind: sim.ActionEndDay}}
	rng := rand.New(rand.NewSource(1))

	t.Run("hands out every action exactly once", func(t *testing.T) {
		n := newNode(1, nil, sim.Action{})
		enumerations := 0
		enumerate := func() []sim.Action {
			enumerations++
			return append([]sim.Action(nil), actions...)
		}

		seen := make(map[string]bool)
		for i := 0; i < len(actions); i++ {
			gotAction, ok := n.expand(rng, enumerate)
			require.True(t, ok)
			seen[gotAction.String()] = true
		}
		require.Len(t, seen, len(actions), "No action should be handed out twice")
		require.Equal(t, 1, enumerations, "Enumeration should happen once")

		_, ok := n.expand(rng, enumerate)
		require.False(t, ok, "An exhausted node should refuse to expand")
	})

	t.Run("node with no actions never becomes selectable", func(t *testing.T) {
		n := newNode(1, nil, sim.Action{})
		_, ok := n.expand(rng, func() []sim.Action { return nil })
		require.False(t, ok)
		require.False(t, n.selectable(), "Exhausted but childless node must stop the descent")
	})

	t.Run("fully expanded node with children is selectable", func(t *testing.T) {
		n := newNode(1, nil, sim.Action{})
		n.expand(rng, func() []sim.Action { return actions[:1] })
		n.addChild(2, actions[0])
		require.True(t, n.selectable())
	})
}

func TestNodeRobustChild(t *testing.T) {
	parent := newNode(1, nil, sim.Action{})
	first := parent.addChild(2, moveAction(0, 1))
	second := parent.addChild(3, moveAction(1, 0))

	for i := 0; i < 5; i++ {
		first.record(1)
	}
	for i := 0; i < 8; i++ {
		second.record(0)
	}

	gotChild := parent.robustChild()
	require.Same(t, second, gotChild, "Visit count should decide, not value")

	gotVisits, gotRewards := second.stats()
	require.Equal(t, 8, gotVisits)
	require.Equal(t, 0.0, gotRewards)
}

func TestNodeConcurrentRecord(t *testing.T) {
	n := newNode(1, nil, sim.Action{})
	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				n.record(1)
			}
		}()
	}
	wg.Wait()

	gotVisits, gotRewards := n.stats()
	require.Equal(t, workers*perWorker, gotVisits)
	require.Equal(t, float64(workers*perWorker), gotRewards)
}
