package game

import "math"

// TileReward scores what a hero would gain by visiting pos right now. It
// is a pure function of the tile's current contents: the intrinsic base
// reward, gold at face value, other resources at half value, artifact
// values, and the flag reward of any mine that is still unowned. Monsters
// contribute nothing. An off-map position scores zero.
func TileReward(w *World, pos Position) float64 {
	t := w.Tile(pos)
	if t == nil {
		return 0
	}
	reward := t.BaseReward
	for _, obj := range t.Objects {
		switch o := obj.(type) {
		case ResourcePile:
			if o.Resource == Gold {
				reward += o.Amount
			} else {
				reward += o.Amount * 0.5
			}
		case Artifact:
			reward += o.Value
		case Mine:
			if o.Owner == "" {
				reward += o.FlagReward
			}
		}
	}
	return reward
}

// FightCost estimates what entering pos costs a hero of the given strength
// on top of travel: 0 when the tile is unguarded or the fight is winnable
// under the combat proxy, +Inf when the fight would be lost or the position
// is off the map. The proxy has no casualties, so there is no middle
// ground.
func FightCost(heroStrength float64, w *World, pos Position, ratio float64) float64 {
	t := w.Tile(pos)
	if t == nil {
		return math.Inf(1)
	}
	guard := t.GuardStrength()
	if guard == 0 {
		return 0
	}
	if CombatWins(heroStrength, guard, ratio) {
		return 0
	}
	return math.Inf(1)
}
