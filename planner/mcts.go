package planner

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"heroes/sim"
)

// Option configures an MCTS planner.
type Option func(*MCTS)

// WithIterations sets the search budget in tree walks. Panics on
// non-positive counts.
func WithIterations(n int) Option {
	if n <= 0 {
		panic("iteration count must be positive")
	}
	return func(m *MCTS) { m.iterations = n }
}

// WithHorizon sets the last day the search plans for. Panics on
// non-positive horizons.
func WithHorizon(days int) Option {
	if days <= 0 {
		panic("horizon must be positive")
	}
	return func(m *MCTS) { m.horizon = days }
}

// WithExploration sets the UCT exploration constant. Panics on negative
// values.
func WithExploration(c float64) Option {
	if c < 0 {
		panic("exploration constant must not be negative")
	}
	return func(m *MCTS) { m.exploration = c }
}

// WithGoroutines sets how many workers walk the tree concurrently. Panics
// on non-positive counts.
func WithGoroutines(n int) Option {
	if n <= 0 {
		panic("goroutine count must be positive")
	}
	return func(m *MCTS) { m.goroutines = n }
}

// WithSeed pins the random source, making single-goroutine searches
// reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) { m.seed = seed }
}

// WithStateKeyFunc replaces how tree nodes identify game states.
func WithStateKeyFunc(fn StateKeyFunc) Option {
	if fn == nil {
		panic("state key func must not be nil")
	}
	return func(m *MCTS) { m.stateKey = fn }
}

// WithCollector installs a metrics collector.
func WithCollector(c Collector) Option {
	if c == nil {
		panic("collector must not be nil")
	}
	return func(m *MCTS) { m.collector = c }
}

// MCTS recommends one action at a time by growing a search tree over
// speculative futures of the session: UCT selection down the tree, one
// random expansion, a greedy rollout to the horizon, and the rollout's
// collected resources backed up along the visited path.
type MCTS struct {
	iterations  int
	horizon     int
	exploration float64
	goroutines  int
	seed        uint64
	stateKey    StateKeyFunc
	collector   Collector
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{
		iterations:  DefaultIterations,
		horizon:     DefaultHorizon,
		exploration: DefaultExploration,
		goroutines:  1,
		seed:        uint64(time.Now().UnixNano()),
		stateKey:    DefaultStateKey,
		collector:   NewDummyCollector(),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Plan spends the iteration budget growing a tree from the session and
// returns the action of the most-visited root child. The session itself
// is never mutated. A nil action with nil error means the hero has
// nothing to do; the only error is an unknown hero.
func (m *MCTS) Plan(s *sim.Session, heroID string) (*sim.Action, error) {
	if s.Hero(heroID) == nil {
		return nil, fmt.Errorf("hero %q not in session", heroID)
	}
	root := newNode(m.stateKey(s, heroID), nil, sim.Action{})

	tasks := make(chan struct{}, m.iterations)
	for i := 0; i < m.iterations; i++ {
		tasks <- struct{}{}
	}
	close(tasks)

	var wg sync.WaitGroup
	for worker := 0; worker < m.goroutines; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(m.seed + uint64(worker)))
			for range tasks {
				m.iterate(s, heroID, root, rng)
				m.collector.AddEpisode()
			}
		}(worker)
	}
	wg.Wait()

	best := root.robustChild()
	if best == nil {
		return nil, nil
	}
	action := best.action
	return &action, nil
}

// iterate runs one selection-expansion-rollout-backup pass on a private
// clone of the session.
func (m *MCTS) iterate(s *sim.Session, heroID string, root *node, rng *rand.Rand) {
	speculative := s.Clone()
	current := root
	visited := []*node{root}

	for speculative.Day <= m.horizon && current.selectable() {
		next := current.bestChild(m.exploration)
		if next == nil {
			break
		}
		current = next
		visited = append(visited, current)
		speculative.Apply(heroID, current.action)
	}

	if speculative.Day <= m.horizon {
		action, ok := current.expand(rng, func() []sim.Action {
			return legalActions(speculative, heroID, m.horizon)
		})
		if ok {
			after := speculative.Clone()
			after.Apply(heroID, action)
			child := current.addChild(m.stateKey(after, heroID), action)
			visited = append(visited, child)
			speculative = after
			m.collector.AddExpansion()
		}
	}

	reward := rolloutValue(speculative.Clone(), heroID, m.horizon, m.collector)
	for _, n := range visited {
		n.record(reward)
	}
}
