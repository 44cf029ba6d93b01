package game

// DefaultCombatRatio is the strength margin a hero needs over a guard to
// win the deterministic combat proxy.
const DefaultCombatRatio = 1.5

// CombatWins resolves a fight without randomness or casualties: an
// unguarded tile is a free win, a hero with no army loses to any guard,
// and otherwise the hero wins exactly when its strength is at least
// ratio times the guard strength. Equality is a win.
func CombatWins(heroStrength, guardStrength, ratio float64) bool {
	if guardStrength == 0 {
		return true
	}
	if heroStrength == 0 {
		return false
	}
	return heroStrength >= ratio*guardStrength
}
