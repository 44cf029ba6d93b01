// Package scenario loads worlds and heroes from YAML files so maps can be
// authored and replayed without recompiling.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"heroes/game"
	"heroes/sim"
)

type file struct {
	Defaults defaults   `yaml:"defaults"`
	Tiles    []tileSpec `yaml:"tiles"`
	Edges    []edgeSpec `yaml:"edges"`
	Heroes   []heroSpec `yaml:"heroes"`
}

type defaults struct {
	CombatRatio float64 `yaml:"combat_ratio"`
}

type tileSpec struct {
	X       int          `yaml:"x"`
	Y       int          `yaml:"y"`
	Reward  float64      `yaml:"reward"`
	Objects []objectSpec `yaml:"objects"`
}

// objectSpec is the union of all object fields; Kind decides which ones
// apply. Pointer fields distinguish "absent" from zero so defaults can
// kick in.
type objectSpec struct {
	Kind       string   `yaml:"kind"`
	Resource   string   `yaml:"resource"`
	Amount     float64  `yaml:"amount"`
	ID         string   `yaml:"id"`
	Value      *float64 `yaml:"value"`
	Mine       string   `yaml:"mine"`
	FlagReward *float64 `yaml:"flag_reward"`
	Name       string   `yaml:"name"`
	Strength   float64  `yaml:"strength"`
}

type edgeSpec struct {
	From []int   `yaml:"from"`
	To   []int   `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

type heroSpec struct {
	ID       string         `yaml:"id"`
	X        int            `yaml:"x"`
	Y        int            `yaml:"y"`
	Movement float64        `yaml:"movement"`
	Army     map[string]int `yaml:"army"`
}

// Load reads a scenario file and builds a fresh session from it.
func Load(path string) (*sim.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse builds a session from YAML scenario bytes. Every edge endpoint and
// hero position must name a declared tile, and object kinds outside the
// known set are rejected.
func Parse(data []byte) (*sim.Session, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if len(f.Tiles) == 0 {
		return nil, fmt.Errorf("scenario declares no tiles")
	}
	if len(f.Heroes) == 0 {
		return nil, fmt.Errorf("scenario declares no heroes")
	}

	world := game.NewWorld()
	for _, spec := range f.Tiles {
		pos := game.Position{X: spec.X, Y: spec.Y}
		tile := &game.Tile{Pos: pos, BaseReward: spec.Reward}
		for _, objSpec := range spec.Objects {
			obj, err := buildObject(objSpec)
			if err != nil {
				return nil, fmt.Errorf("tile %s: %w", pos, err)
			}
			tile.Objects = append(tile.Objects, obj)
		}
		world.AddTile(tile)
	}

	for i, spec := range f.Edges {
		from, err := toPosition(spec.From)
		if err != nil {
			return nil, fmt.Errorf("edge %d: from: %w", i, err)
		}
		to, err := toPosition(spec.To)
		if err != nil {
			return nil, fmt.Errorf("edge %d: to: %w", i, err)
		}
		if !world.HasTile(from) || !world.HasTile(to) {
			return nil, fmt.Errorf("edge %d connects undeclared tiles %s and %s", i, from, to)
		}
		if spec.Cost <= 0 {
			return nil, fmt.Errorf("edge %d has non-positive cost %g", i, spec.Cost)
		}
		world.AddEdge(from, to, spec.Cost)
	}

	heroes := make([]*game.Hero, 0, len(f.Heroes))
	seen := make(map[string]bool, len(f.Heroes))
	for _, spec := range f.Heroes {
		if spec.ID == "" {
			return nil, fmt.Errorf("hero without an id")
		}
		if seen[spec.ID] {
			return nil, fmt.Errorf("duplicate hero id %q", spec.ID)
		}
		seen[spec.ID] = true
		pos := game.Position{X: spec.X, Y: spec.Y}
		if !world.HasTile(pos) {
			return nil, fmt.Errorf("hero %q starts on undeclared tile %s", spec.ID, pos)
		}
		if spec.Movement <= 0 {
			return nil, fmt.Errorf("hero %q has non-positive movement %g", spec.ID, spec.Movement)
		}
		heroes = append(heroes, game.NewHero(spec.ID, pos, spec.Movement, spec.Army))
	}

	return sim.NewSession(world, heroes, f.Defaults.CombatRatio), nil
}

func buildObject(spec objectSpec) (game.Object, error) {
	switch spec.Kind {
	case "resource_pile":
		if spec.Resource == "" {
			return nil, fmt.Errorf("resource_pile without a resource")
		}
		return game.ResourcePile{Resource: game.Resource(spec.Resource), Amount: spec.Amount}, nil
	case "artifact":
		if spec.ID == "" {
			return nil, fmt.Errorf("artifact without an id")
		}
		value := game.DefaultArtifactValue
		if spec.Value != nil {
			value = *spec.Value
		}
		return game.Artifact{ID: spec.ID, Value: value}, nil
	case "mine":
		if spec.Mine == "" {
			return nil, fmt.Errorf("mine without a mine type")
		}
		reward := game.DefaultFlagReward
		if spec.FlagReward != nil {
			reward = *spec.FlagReward
		}
		return game.Mine{Type: spec.Mine, FlagReward: reward}, nil
	case "monster":
		if spec.Strength <= 0 {
			return nil, fmt.Errorf("monster %q without a positive strength", spec.Name)
		}
		return game.Monster{Name: spec.Name, Strength: spec.Strength}, nil
	default:
		return nil, fmt.Errorf("unknown object kind %q", spec.Kind)
	}
}

func toPosition(pair []int) (game.Position, error) {
	if len(pair) != 2 {
		return game.Position{}, fmt.Errorf("want [x, y], got %v", pair)
	}
	return game.Position{X: pair[0], Y: pair[1]}, nil
}
