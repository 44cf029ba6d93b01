package game

import "fmt"

// Position is a map coordinate. Tiles are identified by position; there is
// no separate tile ID.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Tile is a node of the world graph: an intrinsic reward plus whatever
// objects currently sit on it.
type Tile struct {
	Pos        Position
	BaseReward float64
	Objects    []Object
}

// GuardStrength is the combined strength of all monsters on the tile.
// It is always derived from the object list, never stored, so stripping
// the monsters after a won fight cannot leave a stale guard value behind.
func (t *Tile) GuardStrength() float64 {
	var total float64
	for _, obj := range t.Objects {
		if m, ok := obj.(Monster); ok {
			total += m.Strength
		}
	}
	return total
}

// RemoveGuards strips every monster from the tile. Called after a won
// fight.
func (t *Tile) RemoveGuards() {
	kept := make([]Object, 0, len(t.Objects))
	for _, obj := range t.Objects {
		if _, ok := obj.(Monster); ok {
			continue
		}
		kept = append(kept, obj)
	}
	t.Objects = kept
}

// Copy returns a deep copy of the tile. Object variants are value types,
// so copying the slice is enough.
func (t *Tile) Copy() *Tile {
	objects := make([]Object, len(t.Objects))
	copy(objects, t.Objects)
	return &Tile{Pos: t.Pos, BaseReward: t.BaseReward, Objects: objects}
}
