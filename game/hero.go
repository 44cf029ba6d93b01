package game

// UnitStrength is the combat strength contributed by a single creature.
// The proxy model does not distinguish creature tiers.
const UnitStrength = 10.0

// Hero is a mobile agent on the world graph. Army strength is cached and
// refreshed whenever composition changes through AddCreatures or
// RemoveCreatures; code that writes the Army map directly must call
// RecalculateStrength itself.
type Hero struct {
	ID           string
	Pos          Position
	BaseMovement float64
	Movement     float64
	Army         map[string]int
	Resources    map[Resource]float64
	Artifacts    []string

	strength float64
}

func NewHero(id string, pos Position, baseMovement float64, army map[string]int) *Hero {
	h := &Hero{
		ID:           id,
		Pos:          pos,
		BaseMovement: baseMovement,
		Movement:     baseMovement,
		Army:         make(map[string]int, len(army)),
		Resources:    make(map[Resource]float64),
	}
	for creature, count := range army {
		h.Army[creature] = count
	}
	h.RecalculateStrength()
	return h
}

// Strength returns the cached army strength.
func (h *Hero) Strength() float64 {
	return h.strength
}

// RecalculateStrength recomputes the cached strength from the army map and
// returns it.
func (h *Hero) RecalculateStrength() float64 {
	var total float64
	for _, count := range h.Army {
		total += float64(count) * UnitStrength
	}
	h.strength = total
	return total
}

func (h *Hero) AddCreatures(creature string, count int) {
	h.Army[creature] += count
	h.RecalculateStrength()
}

// RemoveCreatures takes count creatures away, dropping the stack entirely
// when it hits zero.
func (h *Hero) RemoveCreatures(creature string, count int) {
	have, ok := h.Army[creature]
	if !ok {
		return
	}
	if count >= have {
		delete(h.Army, creature)
	} else {
		h.Army[creature] = have - count
	}
	h.RecalculateStrength()
}

func (h *Hero) AddResource(res Resource, amount float64) {
	h.Resources[res] += amount
}

// AddArtifact records a picked-up artifact. Duplicates are ignored.
func (h *Hero) AddArtifact(id string) {
	for _, have := range h.Artifacts {
		if have == id {
			return
		}
	}
	h.Artifacts = append(h.Artifacts, id)
}

// ResetDailyMovement refills movement to the daily base. Called at the
// start of each day.
func (h *Hero) ResetDailyMovement() {
	h.Movement = h.BaseMovement
}

// Copy returns a deep copy of the hero.
func (h *Hero) Copy() *Hero {
	c := &Hero{
		ID:           h.ID,
		Pos:          h.Pos,
		BaseMovement: h.BaseMovement,
		Movement:     h.Movement,
		Army:         make(map[string]int, len(h.Army)),
		Resources:    make(map[Resource]float64, len(h.Resources)),
		Artifacts:    append([]string(nil), h.Artifacts...),
		strength:     h.strength,
	}
	for creature, count := range h.Army {
		c.Army[creature] = count
	}
	for res, amount := range h.Resources {
		c.Resources[res] = amount
	}
	return c
}
