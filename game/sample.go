package game

// Built-in demo map: a 3x3 grid with a spread of pickups, a flaggable
// mine, and one guarded tile, enough to make the three planners disagree.
// Used by the CLI when no scenario file is given and by the experiment
// harness.

var sampleTiles = []*Tile{
	{Pos: Position{0, 0}},
	{Pos: Position{0, 1}, Objects: []Object{ResourcePile{Resource: Gold, Amount: 100}}},
	{Pos: Position{1, 0}, BaseReward: 10},
	{Pos: Position{1, 1}, Objects: []Object{ResourcePile{Resource: Gold, Amount: 150}}},
	{Pos: Position{2, 1}, Objects: []Object{Artifact{ID: "gem_ring", Value: 200}}},
	{Pos: Position{2, 0}, Objects: []Object{Mine{Type: "gold_mine", FlagReward: 300}}},
	{Pos: Position{0, 2}, Objects: []Object{ResourcePile{Resource: Wood, Amount: 20}}},
	{Pos: Position{1, 2}, BaseReward: 50, Objects: []Object{Monster{Name: "Goblins", Strength: 50}}},
	{Pos: Position{2, 2}, Objects: []Object{ResourcePile{Resource: Gems, Amount: 5}}},
}

var sampleEdges = []struct {
	a, b Position
	cost float64
}{
	{Position{0, 0}, Position{0, 1}, 100},
	{Position{0, 0}, Position{1, 0}, 100},
	{Position{0, 1}, Position{1, 1}, 100},
	{Position{0, 1}, Position{0, 2}, 100},
	{Position{1, 0}, Position{1, 1}, 100},
	{Position{1, 0}, Position{2, 0}, 100},
	{Position{1, 1}, Position{2, 1}, 100},
	{Position{1, 1}, Position{1, 2}, 100},
	{Position{2, 1}, Position{2, 0}, 100},
	{Position{2, 1}, Position{2, 2}, 100},
	{Position{0, 2}, Position{1, 2}, 100},
	{Position{1, 2}, Position{2, 2}, 100},
}

// SampleWorld builds a fresh copy of the demo map. Each call returns an
// independent world, so callers may mutate it freely.
func SampleWorld() *World {
	w := NewWorld()
	for _, t := range sampleTiles {
		w.AddTile(t.Copy())
	}
	for _, e := range sampleEdges {
		w.AddEdge(e.a, e.b, e.cost)
	}
	return w
}

// SampleHero starts the demo hero at the map corner with a pikemen army.
func SampleHero(movement float64, armyUnits int) *Hero {
	return NewHero("cli_hero", Position{0, 0}, movement, map[string]int{"pikemen": armyUnits})
}
