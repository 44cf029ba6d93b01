// Package sim holds the mutable game state and applies hero actions to it.
// A Session is the single source of truth during planning: planners never
// mutate it directly, they clone it and speculate on the clone.
package sim

import (
	"fmt"

	"github.com/rs/zerolog"

	"heroes/game"
)

// Session is one running game: a world, the heroes on it, and the clock.
type Session struct {
	World       *game.World
	Heroes      map[string]*game.Hero
	Day         int
	ActiveHero  string
	CombatRatio float64

	order  []string
	logger zerolog.Logger
}

// NewSession starts a game on day 1 with every hero at full movement.
// A non-positive ratio falls back to the default combat ratio. The action
// log is disabled until SetLogger is called.
func NewSession(world *game.World, heroes []*game.Hero, ratio float64) *Session {
	if ratio <= 0 {
		ratio = game.DefaultCombatRatio
	}
	s := &Session{
		World:       world,
		Heroes:      make(map[string]*game.Hero, len(heroes)),
		Day:         1,
		CombatRatio: ratio,
		logger:      zerolog.Nop(),
	}
	for _, h := range heroes {
		s.Heroes[h.ID] = h
		s.order = append(s.order, h.ID)
	}
	if len(s.order) > 0 {
		s.ActiveHero = s.order[0]
	}
	return s
}

// SetLogger turns on the action log. Clones always start silent again, so
// speculative copies inside planners never log.
func (s *Session) SetLogger(logger zerolog.Logger) {
	s.logger = logger
}

// Hero looks up a hero by ID, or nil if unknown.
func (s *Session) Hero(id string) *game.Hero {
	return s.Heroes[id]
}

// HeroIDs lists the heroes in registration order.
func (s *Session) HeroIDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Apply dispatches an action for the hero and returns its result. Unknown
// action kinds come back as an error status.
func (s *Session) Apply(heroID string, action Action) Result {
	switch action.Kind {
	case ActionMove:
		return s.Move(heroID, action.Target)
	case ActionWait:
		return s.Wait(heroID)
	case ActionEndDay:
		s.EndDay()
		return Result{Status: StatusSuccess, Message: "day ended"}
	default:
		return Result{Status: StatusError, Message: fmt.Sprintf("unknown action kind %d", action.Kind)}
	}
}

// Move walks the hero along one edge. Arriving on a guarded tile resolves
// the fight first: a loss keeps the hero in place with no movement left, a
// win strips the guards and also consumes the rest of the day's movement.
// Arrival on a new tile automatically interacts with it; moving to the
// tile the hero already stands on is a successful no-op without
// interaction.
func (s *Session) Move(heroID string, target game.Position) Result {
	s.ActiveHero = heroID
	hero := s.Heroes[heroID]
	if hero == nil {
		return Result{Status: StatusError, Message: fmt.Sprintf("hero %q not found", heroID)}
	}
	if hero.Pos == target {
		s.logf("already at %s", target)
		return Result{Status: StatusSuccess, Message: fmt.Sprintf("already at %s", target)}
	}
	if !s.World.HasTile(hero.Pos) || !s.World.HasTile(target) {
		return Result{Status: StatusError, Message: fmt.Sprintf("move %s -> %s leaves the map", hero.Pos, target)}
	}
	cost, ok := s.World.EdgeCost(hero.Pos, target)
	if !ok {
		return Result{Status: StatusError, Message: fmt.Sprintf("%s is not adjacent to %s", target, hero.Pos)}
	}
	if hero.Movement < cost {
		return Result{Status: StatusError, Message: fmt.Sprintf("not enough movement: have %.0f, need %.0f", hero.Movement, cost)}
	}

	tile := s.World.Tile(target)
	if guard := tile.GuardStrength(); guard > 0 {
		if !game.CombatWins(hero.Strength(), guard, s.CombatRatio) {
			hero.Movement = 0
			s.logf("lost fight at %s (strength %.0f vs guard %.0f)", target, hero.Strength(), guard)
			return Result{Status: StatusCombatLost, Message: fmt.Sprintf("lost fight at %s", target)}
		}
		tile.RemoveGuards()
		hero.Movement = 0
		s.logf("won fight at %s (strength %.0f vs guard %.0f)", target, hero.Strength(), guard)
	}

	hero.Pos = target
	if hero.Movement > 0 {
		hero.Movement -= cost
	}
	s.logf("moved to %s, movement left %.0f", target, hero.Movement)

	interaction := s.Interact(heroID, target)
	return Result{
		Status:      StatusSuccess,
		Message:     fmt.Sprintf("moved to %s", target),
		Interaction: &interaction,
	}
}

// Interact collects whatever the tile offers: resource piles and artifacts
// are picked up and removed, a mine is flagged for the hero and stays,
// monsters are left alone (fights belong to Move). Picking anything up
// consumes the rest of the day's movement; flagging alone does not. A tile
// with nothing to take yields StatusNoInteraction.
func (s *Session) Interact(heroID string, target game.Position) Result {
	s.ActiveHero = heroID
	hero := s.Heroes[heroID]
	if hero == nil {
		return Result{Status: StatusError, Message: fmt.Sprintf("hero %q not found", heroID)}
	}
	tile := s.World.Tile(target)
	if tile == nil {
		return Result{Status: StatusError, Message: fmt.Sprintf("no tile at %s", target)}
	}

	loot := &Loot{Resources: make(map[game.Resource]float64)}
	kept := make([]game.Object, 0, len(tile.Objects))
	pickedUp := false
	for _, obj := range tile.Objects {
		switch o := obj.(type) {
		case game.ResourcePile:
			hero.AddResource(o.Resource, o.Amount)
			loot.Resources[o.Resource] += o.Amount
			pickedUp = true
			s.logf("collected %.0f %s at %s", o.Amount, o.Resource, target)
		case game.Artifact:
			hero.AddArtifact(o.ID)
			loot.Artifacts = append(loot.Artifacts, o.ID)
			pickedUp = true
			s.logf("picked up artifact %s at %s", o.ID, target)
		case game.Mine:
			o.Owner = hero.ID
			kept = append(kept, o)
			loot.Flagged = append(loot.Flagged, o.Type)
			s.logf("flagged %s at %s", o.Type, target)
		case game.Monster:
			kept = append(kept, o)
		}
	}
	tile.Objects = kept

	if pickedUp {
		hero.Movement = 0
	}
	if loot.Empty() {
		return Result{Status: StatusNoInteraction, Message: fmt.Sprintf("nothing to do at %s", target)}
	}
	return Result{Status: StatusSuccess, Message: fmt.Sprintf("interacted at %s", target), Loot: loot}
}

// Wait gives up the rest of the hero's movement for the day.
func (s *Session) Wait(heroID string) Result {
	s.ActiveHero = heroID
	hero := s.Heroes[heroID]
	if hero == nil {
		return Result{Status: StatusError, Message: fmt.Sprintf("hero %q not found", heroID)}
	}
	hero.Movement = 0
	s.logf("waits")
	return Result{Status: StatusSuccess, Message: "hero waits"}
}

// EndDay advances the clock: every hero refills its movement and the first
// registered hero becomes active again.
func (s *Session) EndDay() {
	s.Day++
	for _, id := range s.order {
		s.Heroes[id].ResetDailyMovement()
	}
	if len(s.order) > 0 {
		s.ActiveHero = s.order[0]
	}
	s.logger.Debug().Int("day", s.Day).Msg("day begins")
}

// Clone deep-copies the session so planners can speculate without touching
// the canonical state. The clone's action log is disabled.
func (s *Session) Clone() *Session {
	c := &Session{
		World:       s.World.Copy(),
		Heroes:      make(map[string]*game.Hero, len(s.Heroes)),
		Day:         s.Day,
		ActiveHero:  s.ActiveHero,
		CombatRatio: s.CombatRatio,
		order:       append([]string(nil), s.order...),
		logger:      zerolog.Nop(),
	}
	for id, h := range s.Heroes {
		c.Heroes[id] = h.Copy()
	}
	return c
}

func (s *Session) logf(format string, args ...any) {
	s.logger.Debug().Int("day", s.Day).Str("hero", s.ActiveHero).Msgf(format, args...)
}
