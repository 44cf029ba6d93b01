package game

import "container/heap"

// pathItem is a frontier entry for Dijkstra. seq keeps heap order stable
// when two entries tie on distance.
type pathItem struct {
	pos  Position
	dist float64
	seq  int
}

type pathQueue []pathItem

func (q pathQueue) Len() int { return len(q) }

func (q pathQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].seq < q[j].seq
}

func (q pathQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pathQueue) Push(x any) { *q = append(*q, x.(pathItem)) }

func (q *pathQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// ShortestPaths runs Dijkstra from start over the whole world and returns
// the cheapest travel cost to every reachable position together with the
// corresponding path. Paths include start itself, so the path to start is
// [start] at cost 0. An off-map start yields empty maps.
func ShortestPaths(w *World, start Position) (map[Position]float64, map[Position][]Position) {
	costs := make(map[Position]float64)
	paths := make(map[Position][]Position)
	if !w.HasTile(start) {
		return costs, paths
	}

	dist := map[Position]float64{start: 0}
	prev := make(map[Position]Position)
	settled := make(map[Position]bool)

	q := &pathQueue{{pos: start, dist: 0, seq: 0}}
	heap.Init(q)
	seq := 1

	for q.Len() > 0 {
		item := heap.Pop(q).(pathItem)
		if settled[item.pos] {
			continue
		}
		settled[item.pos] = true

		for _, nb := range w.Neighbors(item.pos) {
			cost, _ := w.EdgeCost(item.pos, nb)
			alt := item.dist + cost
			if best, seen := dist[nb]; !seen || alt < best {
				dist[nb] = alt
				prev[nb] = item.pos
				heap.Push(q, pathItem{pos: nb, dist: alt, seq: seq})
				seq++
			}
		}
	}

	for pos := range settled {
		costs[pos] = dist[pos]
		paths[pos] = reconstruct(prev, start, pos)
	}
	return costs, paths
}

func reconstruct(prev map[Position]Position, start, end Position) []Position {
	var rev []Position
	for cur := end; ; {
		rev = append(rev, cur)
		if cur == start {
			break
		}
		cur = prev[cur]
	}
	path := make([]Position, len(rev))
	for i, pos := range rev {
		path[len(rev)-1-i] = pos
	}
	return path
}
