package sim

import "heroes/game"

// Status classifies the outcome of an action. Rejected and lost actions
// are ordinary results, not Go errors: the session stays consistent and
// callers decide what to try next.
type Status string

const (
	StatusSuccess       Status = "success"
	StatusError         Status = "error"
	StatusCombatLost    Status = "combat_lost"
	StatusNoInteraction Status = "no_interaction"
)

// ActionKind enumerates what a hero can do with its turn.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionWait
	ActionEndDay
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionWait:
		return "wait"
	case ActionEndDay:
		return "end_day"
	default:
		return "unknown"
	}
}

// Action is one atomic order for the simulator. Target is only meaningful
// for ActionMove.
type Action struct {
	Kind   ActionKind
	Target game.Position
}

func (a Action) String() string {
	if a.Kind == ActionMove {
		return "move to " + a.Target.String()
	}
	return a.Kind.String()
}

// Loot lists what an interaction yielded: resource amounts, artifact IDs,
// and the types of any mines flagged.
type Loot struct {
	Resources map[game.Resource]float64
	Artifacts []string
	Flagged   []string
}

func (l *Loot) Empty() bool {
	return len(l.Resources) == 0 && len(l.Artifacts) == 0 && len(l.Flagged) == 0
}

// ResourceTotal sums all resource amounts in the loot. This is the reward
// notion the planners optimize during rollouts.
func (l *Loot) ResourceTotal() float64 {
	var total float64
	for _, amount := range l.Resources {
		total += amount
	}
	return total
}

// Result reports how an action went. Loot is set when an interaction
// collected something; Interaction carries the auto-interact result of a
// move that arrived on a new tile.
type Result struct {
	Status      Status
	Message     string
	Loot        *Loot
	Interaction *Result
}

// CollectedResources returns the resource total of this result's loot,
// looking through a move's nested interaction.
func (r Result) CollectedResources() float64 {
	var total float64
	if r.Loot != nil {
		total += r.Loot.ResourceTotal()
	}
	if r.Interaction != nil {
		total += r.Interaction.CollectedResources()
	}
	return total
}
