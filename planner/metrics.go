package planner

import "sync/atomic"

// Counts is a snapshot of tree search effort.
type Counts struct {
	Episodes     int64
	Expansions   int64
	RolloutMoves int64
}

// Collector observes search effort. Implementations must be safe for
// concurrent use by parallel tree walkers.
type Collector interface {
	AddEpisode()
	AddExpansion()
	AddRolloutMove()
	Counts() Counts
}

type collector struct {
	episodes     atomic.Int64
	expansions   atomic.Int64
	rolloutMoves atomic.Int64
}

// NewCollector returns a counting collector for benchmarking runs.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddEpisode()     { c.episodes.Add(1) }
func (c *collector) AddExpansion()   { c.expansions.Add(1) }
func (c *collector) AddRolloutMove() { c.rolloutMoves.Add(1) }

func (c *collector) Counts() Counts {
	return Counts{
		Episodes:     c.episodes.Load(),
		Expansions:   c.expansions.Load(),
		RolloutMoves: c.rolloutMoves.Load(),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that drops everything. It is the
// default so that planning pays no metrics cost unless asked to.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) AddEpisode()     {}
func (dummyCollector) AddExpansion()   {}
func (dummyCollector) AddRolloutMove() {}
func (dummyCollector) Counts() Counts  { return Counts{} }
