package planner

import (
	"encoding/binary"
	"hash/fnv"

	"heroes/game"
	"heroes/sim"
)

// StateKey identifies a tree node's game state.
type StateKey uint64

// StateKeyFunc derives the key for the session as seen by one hero.
type StateKeyFunc func(s *sim.Session, heroID string) StateKey

// DefaultStateKey keys a state by hero position, day, and remaining
// movement only. Two futures that reach the same triple with different
// loot histories are deliberately folded into one node; their statistics
// blend, which keeps the tree small at the price of some aliasing. Use
// WorldAwareStateKey when collected state must separate nodes.
func DefaultStateKey(s *sim.Session, heroID string) StateKey {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(s.Day))
	hero := s.Hero(heroID)
	if hero == nil {
		return StateKey(hasher.Sum64())
	}
	binary.Write(hasher, binary.LittleEndian, int64(hero.Pos.X))
	binary.Write(hasher, binary.LittleEndian, int64(hero.Pos.Y))
	binary.Write(hasher, binary.LittleEndian, hero.Movement)
	return StateKey(hasher.Sum64())
}

// WorldAwareStateKey extends DefaultStateKey with the remaining contents
// of every tile, so collecting a reward or flagging a mine produces a
// distinct key.
func WorldAwareStateKey(s *sim.Session, heroID string) StateKey {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(s.Day))
	if hero := s.Hero(heroID); hero != nil {
		binary.Write(hasher, binary.LittleEndian, int64(hero.Pos.X))
		binary.Write(hasher, binary.LittleEndian, int64(hero.Pos.Y))
		binary.Write(hasher, binary.LittleEndian, hero.Movement)
	}
	for _, pos := range s.World.Positions() {
		tile := s.World.Tile(pos)
		if len(tile.Objects) == 0 {
			continue
		}
		binary.Write(hasher, binary.LittleEndian, int64(pos.X))
		binary.Write(hasher, binary.LittleEndian, int64(pos.Y))
		for _, obj := range tile.Objects {
			switch o := obj.(type) {
			case game.ResourcePile:
				binary.Write(hasher, binary.LittleEndian, int8(1))
				binary.Write(hasher, binary.LittleEndian, o.Amount)
			case game.Artifact:
				binary.Write(hasher, binary.LittleEndian, int8(2))
				hasher.Write([]byte(o.ID))
			case game.Mine:
				binary.Write(hasher, binary.LittleEndian, int8(3))
				hasher.Write([]byte(o.Owner))
			case game.Monster:
				binary.Write(hasher, binary.LittleEndian, int8(4))
				binary.Write(hasher, binary.LittleEndian, o.Strength)
			}
		}
	}
	return StateKey(hasher.Sum64())
}
