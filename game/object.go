package game

// Default valuations applied when a map author does not price an object
// explicitly.
const (
	DefaultArtifactValue = 100.0
	DefaultFlagReward    = 250.0
)

// Resource identifies one of the stockpile currencies a hero can carry.
type Resource string

const (
	Gold    Resource = "gold"
	Wood    Resource = "wood"
	Ore     Resource = "ore"
	Mercury Resource = "mercury"
	Sulfur  Resource = "sulfur"
	Crystal Resource = "crystal"
	Gems    Resource = "gems"
)

// Object is something sitting on a tile that a hero can interact with.
// The set of variants is closed: evaluation and interaction logic switch
// over the concrete types below and nothing else.
type Object interface {
	object()
}

// ResourcePile is a one-shot stockpile pickup. Collecting it removes it
// from the tile.
type ResourcePile struct {
	Resource Resource
	Amount   float64
}

// Artifact is a one-shot named pickup worth Value when scoring a tile.
type Artifact struct {
	ID    string
	Value float64
}

// Mine stays on its tile forever. Flagging it sets Owner and is worth
// FlagReward once; an owned mine contributes nothing to tile reward.
type Mine struct {
	Type       string
	FlagReward float64
	Owner      string
}

// Monster guards its tile. It never contributes reward; it only gates
// entry through the combat proxy.
type Monster struct {
	Name     string
	Strength float64
}

func (ResourcePile) object() {}
func (Artifact) object()     {}
func (Mine) object()         {}
func (Monster) object()      {}
