package crunchbang

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/crunchbang/crunchbang/dice"
)

// DefaultEffectDie is the magnitude die of effects created without one.
var DefaultEffectDie = dice.Dice{N: 1, Sides: 6}

// TargetType describes what an effect needs as target.
type TargetType int

const (
	TargetSelf TargetType = iota // a single character
	TargetArea                   // an area around a source actor
)

// EffectKind names the available effect variants.
type EffectKind string

const (
	EffectKindHeal EffectKind = "heal"
	EffectKindNova EffectKind = "nova"
)

// Effect is a transient magic action. Effects are created and applied within
// a single action.
type Effect interface {
	// TargetType returns the kind of target expected by ApplyTo.
	TargetType() TargetType
	// Description returns the text describing what happens on application.
	Description() string
	// ApplyTo applies the effect. For self effects the actor is the
	// target character; for area effects it is the center of the area.
	ApplyTo(g *Game, a Actor) error
}

// EffectSpec is the persistent description of an effect carried by an item.
type EffectSpec struct {
	Kind EffectKind
	Die  dice.Dice
}

// New returns a fresh effect with the given source.
func (spec EffectSpec) New(source Character) Effect {
	die := spec.Die
	if die.IsZero() {
		die = DefaultEffectDie
	}
	switch spec.Kind {
	case EffectKindNova:
		return NovaEffect{Source: source, Die: die}
	default:
		return HealEffect{Source: source, Die: die}
	}
}

// HealEffect heals its target.
type HealEffect struct {
	Source Character
	Die    dice.Dice
}

func (eff HealEffect) TargetType() TargetType {
	return TargetSelf
}

func (eff HealEffect) Description() string {
	return "Wounds close, bones knit."
}

func (eff HealEffect) ApplyTo(g *Game, a Actor) error {
	target, ok := a.(Character)
	if !ok {
		return fmt.Errorf("heal: %s is not a character", a.Base().Name)
	}
	if target.Base().Tile() == nil {
		return fmt.Errorf("heal: %s is not placed", a.Base().Name)
	}
	amount := g.RNG.RollDice(eff.Die)
	g.Log.Message(ChannelMagic, eff.Description())
	g.TakeHeal(target, amount, eff.Source)
	g.Log.RegisterEffect(g.Turn, eff.Description(), ColorGreen, []gruid.Point{target.Base().P})
	return nil
}

// NovaEffect damages every character around its source.
type NovaEffect struct {
	Source Character
	Die    dice.Dice
}

func (eff NovaEffect) TargetType() TargetType {
	return TargetArea
}

func (eff NovaEffect) Description() string {
	return "A wave of magical energy ripples outward."
}

func (eff NovaEffect) ApplyTo(g *Game, a Actor) error {
	e := a.Base()
	if e.Tile() == nil {
		return fmt.Errorf("nova: %s is not placed", e.Name)
	}
	damage := g.RNG.RollDice(eff.Die)
	tiles := NovaTiles(e.Level().Map, e.P)
	// Targets are collected before any damage, so that deaths do not
	// change the target set.
	var targets []Character
	ps := make([]gruid.Point, 0, len(tiles))
	for _, t := range tiles {
		ps = append(ps, t.P)
		for _, o := range t.actors {
			if c, ok := o.(Character); ok {
				targets = append(targets, c)
			}
		}
	}
	g.Log.Message(ChannelMagic, eff.Description())
	for _, c := range targets {
		g.TakeDamage(c, damage, eff.Source)
	}
	g.Log.RegisterEffect(g.Turn, eff.Description(), ColorRed, ps)
	return nil
}

// NovaOffsets returns the relative positions covered by a nova: a 5x5 square
// without its four corners and without its center.
func NovaOffsets() []gruid.Point {
	offsets := make([]gruid.Point, 0, 20)
	for y := -2; y <= 2; y++ {
		for x := -2; x <= 2; x++ {
			switch {
			case (x == -2 || x == 2) && (y == -2 || y == 2):
				// corner
			case x == 0 && y == 0:
				// center
			default:
				offsets = append(offsets, gruid.Point{X: x, Y: y})
			}
		}
	}
	return offsets
}

// NovaTiles returns the tiles affected by a nova centered at p: in-map,
// unblocked tiles among NovaOffsets.
func NovaTiles(m *Map, p gruid.Point) []*Tile {
	var ts []*Tile
	for _, d := range NovaOffsets() {
		t := m.Tile(p.Add(d))
		if t == nil || t.Blocked {
			continue
		}
		ts = append(ts, t)
	}
	return ts
}
