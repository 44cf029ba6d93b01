package planner

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"heroes/sim"
)

// node is one vertex of the search tree. Every field behind mu may be
// touched by concurrent tree walkers, so all access goes through the
// methods below.
type node struct {
	mu sync.Mutex

	key    StateKey
	parent *node
	action sim.Action

	children   []*node
	untried    []sim.Action
	enumerated bool

	visits  int
	rewards float64
}

func newNode(key StateKey, parent *node, action sim.Action) *node {
	return &node{key: key, parent: parent, action: action}
}

// selectable reports whether selection should descend through this node:
// its actions are enumerated, none are left untried, and it has at least
// one child to descend into.
func (n *node) selectable() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.enumerated && len(n.untried) == 0 && len(n.children) > 0
}

// bestChild picks the child maximizing UCT. Returns nil when the node has
// no children.
func (n *node) bestChild(exploration float64) *node {
	n.mu.Lock()
	parentVisits := n.visits
	children := make([]*node, len(n.children))
	copy(children, n.children)
	n.mu.Unlock()

	if parentVisits == 0 {
		parentVisits = 1
	}
	logParent := math.Log(float64(parentVisits))

	var best *node
	bestScore := math.Inf(-1)
	for _, child := range children {
		if score := child.uct(exploration, logParent); score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// uct scores the node for selection: exploitation by average reward plus
// the usual exploration bonus. An unvisited node scores +Inf so it is
// tried before any visited sibling.
func (n *node) uct(exploration, logParent float64) float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.visits == 0 {
		return math.Inf(1)
	}
	visits := float64(n.visits)
	return n.rewards/visits + exploration*math.Sqrt(logParent/visits)
}

// expand enumerates the node's actions on first call and hands out one
// random untried action. The enumerate-pick-remove sequence holds the lock
// throughout so concurrent walkers never expand the same action twice.
func (n *node) expand(rng *rand.Rand, enumerate func() []sim.Action) (sim.Action, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.enumerated {
		n.untried = enumerate()
		n.enumerated = true
	}
	if len(n.untried) == 0 {
		return sim.Action{}, false
	}
	i := rng.Intn(len(n.untried))
	action := n.untried[i]
	n.untried = append(n.untried[:i], n.untried[i+1:]...)
	return action, true
}

func (n *node) addChild(key StateKey, action sim.Action) *node {
	child := newNode(key, n, action)
	n.mu.Lock()
	n.children = append(n.children, child)
	n.mu.Unlock()
	return child
}

// record backs one rollout reward up into the node.
func (n *node) record(reward float64) {
	n.mu.Lock()
	n.visits++
	n.rewards += reward
	n.mu.Unlock()
}

// robustChild returns the most-visited child, the standard final answer of
// a tree search. Nil when the node has no children.
func (n *node) robustChild() *node {
	n.mu.Lock()
	defer n.mu.Unlock()
	var best *node
	bestVisits := -1
	for _, child := range n.children {
		child.mu.Lock()
		visits := child.visits
		child.mu.Unlock()
		if visits > bestVisits {
			best = child
			bestVisits = visits
		}
	}
	return best
}

func (n *node) stats() (visits int, rewards float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visits, n.rewards
}
