package game

// edge is one directed half of a bidirectional connection.
type edge struct {
	to   Position
	cost float64
}

// World is the weighted adventure-map graph. Tiles are nodes, edges carry
// the movement cost of travelling between adjacent tiles. Adjacency is kept
// in insertion order so that planners iterate deterministically.
type World struct {
	tiles map[Position]*Tile
	order []Position
	adj   map[Position][]edge
}

func NewWorld() *World {
	return &World{
		tiles: make(map[Position]*Tile),
		adj:   make(map[Position][]edge),
	}
}

// AddTile registers a tile. Adding a tile at an existing position replaces
// the old tile but keeps its place in iteration order.
func (w *World) AddTile(t *Tile) {
	if _, ok := w.tiles[t.Pos]; !ok {
		w.order = append(w.order, t.Pos)
	}
	w.tiles[t.Pos] = t
}

// AddEdge connects a and b both ways at the given cost. Re-adding an
// existing edge updates its cost instead of duplicating it.
func (w *World) AddEdge(a, b Position, cost float64) {
	w.addHalf(a, b, cost)
	w.addHalf(b, a, cost)
}

func (w *World) addHalf(from, to Position, cost float64) {
	for i, e := range w.adj[from] {
		if e.to == to {
			w.adj[from][i].cost = cost
			return
		}
	}
	w.adj[from] = append(w.adj[from], edge{to: to, cost: cost})
}

// Tile returns the tile at pos, or nil if the position is off the map.
func (w *World) Tile(pos Position) *Tile {
	return w.tiles[pos]
}

func (w *World) HasTile(pos Position) bool {
	_, ok := w.tiles[pos]
	return ok
}

// Positions lists every tile position in insertion order.
func (w *World) Positions() []Position {
	out := make([]Position, len(w.order))
	copy(out, w.order)
	return out
}

// Neighbors lists the positions directly connected to pos, in the order
// their edges were added.
func (w *World) Neighbors(pos Position) []Position {
	edges := w.adj[pos]
	out := make([]Position, len(edges))
	for i, e := range edges {
		out[i] = e.to
	}
	return out
}

// EdgeCost returns the movement cost between two adjacent positions. The
// second return is false when no edge connects them.
func (w *World) EdgeCost(a, b Position) (float64, bool) {
	for _, e := range w.adj[a] {
		if e.to == b {
			return e.cost, true
		}
	}
	return 0, false
}

// Copy returns a deep copy of the world. Planners speculate on copies so
// the canonical world never sees their mutations.
func (w *World) Copy() *World {
	c := NewWorld()
	c.order = make([]Position, len(w.order))
	copy(c.order, w.order)
	for pos, t := range w.tiles {
		c.tiles[pos] = t.Copy()
	}
	for pos, edges := range w.adj {
		dup := make([]edge, len(edges))
		copy(dup, edges)
		c.adj[pos] = dup
	}
	return c
}
