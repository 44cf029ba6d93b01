package planner

import (
	"container/heap"
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"

	"heroes/game"
)

// defaultHorizonIterations caps how many states the horizon search expands
// before settling for the best plan found so far.
const defaultHorizonIterations = 10000

// A Heuristic estimates the reward still collectable from a search state.
// It only orders the frontier: the search keeps expanding until the budget
// runs out, so a poor estimate wastes iterations rather than correctness.
type Heuristic func(world *game.World, pos game.Position, day int, strength, ratio float64, collected map[game.Position]bool) float64

// ZeroHeuristic claims nothing about the future, reducing the search to
// uniform best-first on collected reward. It is the default.
func ZeroHeuristic(*game.World, game.Position, int, float64, float64, map[game.Position]bool) float64 {
	return 0
}

// BestRemainingReward is the tightest simple admissible estimate: the value
// of the single best uncollected tile the hero could still win a fight for.
func BestRemainingReward(world *game.World, _ game.Position, _ int, strength, ratio float64, collected map[game.Position]bool) float64 {
	var best float64
	for _, pos := range world.Positions() {
		if collected[pos] {
			continue
		}
		if math.IsInf(game.FightCost(strength, world, pos, ratio), 1) {
			continue
		}
		if reward := game.TileReward(world, pos); reward > best {
			best = reward
		}
	}
	return best
}

// heuristicKey identifies a cached heuristic value. Strength never changes
// within a search, so it is not part of the key.
type heuristicKey struct {
	pos       game.Position
	day       int
	collected uint64
}

// HeuristicCache memoizes heuristic values across states that share a
// position, day, and collected set. A cache may be reused across searches
// on the same world; Clear it when the world changes underneath it.
type HeuristicCache struct {
	values map[heuristicKey]float64
}

func NewHeuristicCache() *HeuristicCache {
	return &HeuristicCache{values: make(map[heuristicKey]float64)}
}

func (c *HeuristicCache) Clear() {
	c.values = make(map[heuristicKey]float64)
}

func (c *HeuristicCache) Len() int {
	return len(c.values)
}

// horizonState is one node of the search: where the hero is, how much of
// the day is left, and everything collected on the way there.
type horizonState struct {
	pos       game.Position
	day       int
	movement  float64
	reward    float64
	strength  float64
	path      []game.Position
	collected map[game.Position]bool
	f         float64
}

// visitKey collapses states that are interchangeable for dominance checks.
// Collected sets are folded to a hash so the key stays comparable.
type visitKey struct {
	pos       game.Position
	day       int
	movement  float64
	collected uint64
}

// collectedHash folds a collected set into an order-independent value by
// hashing its positions in sorted order.
func collectedHash(collected map[game.Position]bool) uint64 {
	if len(collected) == 0 {
		return 0
	}
	positions := make([]game.Position, 0, len(collected))
	for pos := range collected {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].X != positions[j].X {
			return positions[i].X < positions[j].X
		}
		return positions[i].Y < positions[j].Y
	})
	hasher := fnv.New64a()
	for _, pos := range positions {
		binary.Write(hasher, binary.LittleEndian, int64(pos.X))
		binary.Write(hasher, binary.LittleEndian, int64(pos.Y))
	}
	return hasher.Sum64()
}

// HorizonOption tweaks a horizon search.
type HorizonOption func(*HorizonSearch)

// WithHorizonIterations bounds how many states the search may pop before
// returning the best plan found so far. Panics on non-positive counts.
func WithHorizonIterations(n int) HorizonOption {
	if n <= 0 {
		panic("horizon iteration cap must be positive")
	}
	return func(h *HorizonSearch) { h.maxIterations = n }
}

// WithHeuristic installs an optimistic reward estimate to order the
// frontier with.
func WithHeuristic(fn Heuristic) HorizonOption {
	if fn == nil {
		panic("heuristic must not be nil")
	}
	return func(h *HorizonSearch) { h.heuristic = fn }
}

// WithHeuristicCache shares a cache across searches. Without it each Plan
// call uses a fresh private cache.
func WithHeuristicCache(cache *HeuristicCache) HorizonOption {
	if cache == nil {
		panic("heuristic cache must not be nil")
	}
	return func(h *HorizonSearch) { h.cache = cache }
}

// HorizonSearch plans the best multi-day route for a hero: a best-first
// expansion over (position, day, movement, collected) states maximizing
// total collected reward within the day horizon.
type HorizonSearch struct {
	ratio         float64
	maxDays       int
	dailyMovement float64
	maxIterations int
	heuristic     Heuristic
	cache         *HeuristicCache
}

func NewHorizonSearch(ratio float64, maxDays int, dailyMovement float64, options ...HorizonOption) *HorizonSearch {
	if ratio <= 0 {
		ratio = game.DefaultCombatRatio
	}
	h := &HorizonSearch{
		ratio:         ratio,
		maxDays:       maxDays,
		dailyMovement: dailyMovement,
		maxIterations: defaultHorizonIterations,
		heuristic:     ZeroHeuristic,
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

// Horizon plans with default settings. See HorizonSearch.Plan.
func Horizon(world *game.World, hero *game.Hero, ratio float64, maxDays int, dailyMovement float64) []game.Position {
	return NewHorizonSearch(ratio, maxDays, dailyMovement).Plan(world, hero)
}

// Plan returns the position sequence of the best plan found: the hero's
// start followed by every move, with day boundaries implicit wherever the
// movement budget forces them. Rewards count once; revisiting a looted
// tile gains nothing. Returns nil when the hero is off the map, otherwise
// at least the start position.
func (h *HorizonSearch) Plan(world *game.World, hero *game.Hero) []game.Position {
	if !world.HasTile(hero.Pos) {
		return nil
	}
	cache := h.cache
	if cache == nil {
		cache = NewHeuristicCache()
	}

	start := &horizonState{
		pos:       hero.Pos,
		day:       1,
		movement:  h.dailyMovement,
		strength:  hero.Strength(),
		path:      []game.Position{hero.Pos},
		collected: make(map[game.Position]bool),
	}
	start.f = h.estimate(world, cache, start)

	visited := map[visitKey]float64{stateKey(start): 0}
	frontier := &stateQueue{}
	heap.Init(frontier)
	pushState(frontier, start)

	best := start
	for iterations := 0; iterations < h.maxIterations && frontier.Len() > 0; iterations++ {
		current := heap.Pop(frontier).(*stateQueueItem).state

		if dominating, seen := visited[stateKey(current)]; seen && current.reward < dominating {
			continue
		}
		if h.better(current, best) {
			best = current
		}
		if current.day > h.maxDays {
			continue
		}

		for _, next := range world.Neighbors(current.pos) {
			cost, _ := world.EdgeCost(current.pos, next)
			if current.movement < cost {
				continue
			}
			if math.IsInf(game.FightCost(current.strength, world, next, h.ratio), 1) {
				continue
			}
			var stepReward float64
			if !current.collected[next] {
				stepReward = game.TileReward(world, next)
			}
			successor := &horizonState{
				pos:       next,
				day:       current.day,
				movement:  current.movement - cost,
				reward:    current.reward + stepReward,
				strength:  current.strength,
				path:      appendPath(current.path, next),
				collected: copyCollected(current.collected),
			}
			if stepReward > 0 {
				successor.collected[next] = true
			}
			h.offer(world, cache, visited, frontier, successor)
		}

		if current.day < h.maxDays {
			rested := &horizonState{
				pos:       current.pos,
				day:       current.day + 1,
				movement:  h.dailyMovement,
				reward:    current.reward,
				strength:  current.strength,
				path:      current.path,
				collected: copyCollected(current.collected),
			}
			h.offer(world, cache, visited, frontier, rested)
		}
	}
	return best.path
}

// offer pushes a successor unless an already-seen equivalent state
// dominates it.
func (h *HorizonSearch) offer(world *game.World, cache *HeuristicCache, visited map[visitKey]float64, frontier *stateQueue, s *horizonState) {
	key := stateKey(s)
	if dominating, seen := visited[key]; seen && s.reward <= dominating {
		return
	}
	visited[key] = s.reward
	s.f = s.reward + h.estimate(world, cache, s)
	pushState(frontier, s)
}

func (h *HorizonSearch) estimate(world *game.World, cache *HeuristicCache, s *horizonState) float64 {
	key := heuristicKey{pos: s.pos, day: s.day, collected: collectedHash(s.collected)}
	if value, ok := cache.values[key]; ok {
		return value
	}
	value := h.heuristic(world, s.pos, s.day, s.strength, h.ratio, s.collected)
	cache.values[key] = value
	return value
}

// better prefers more reward, then fewer days, then a shorter path.
func (h *HorizonSearch) better(candidate, incumbent *horizonState) bool {
	if candidate.reward != incumbent.reward {
		return candidate.reward > incumbent.reward
	}
	if candidate.day != incumbent.day {
		return candidate.day < incumbent.day
	}
	return len(candidate.path) < len(incumbent.path)
}

func stateKey(s *horizonState) visitKey {
	return visitKey{pos: s.pos, day: s.day, movement: s.movement, collected: collectedHash(s.collected)}
}

func appendPath(path []game.Position, next game.Position) []game.Position {
	out := make([]game.Position, len(path), len(path)+1)
	copy(out, path)
	return append(out, next)
}

func copyCollected(collected map[game.Position]bool) map[game.Position]bool {
	out := make(map[game.Position]bool, len(collected))
	for pos := range collected {
		out[pos] = true
	}
	return out
}

// stateQueue is a max-heap on f with FIFO order among equal entries.
type stateQueueItem struct {
	state *horizonState
	seq   int
}

type stateQueue struct {
	items []*stateQueueItem
	seq   int
}

func (q *stateQueue) Len() int { return len(q.items) }

func (q *stateQueue) Less(i, j int) bool {
	if q.items[i].state.f != q.items[j].state.f {
		return q.items[i].state.f > q.items[j].state.f
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *stateQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *stateQueue) Push(x any) { q.items = append(q.items, x.(*stateQueueItem)) }

func (q *stateQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

func pushState(q *stateQueue, s *horizonState) {
	heap.Push(q, &stateQueueItem{state: s, seq: q.seq})
	q.seq++
}
