package crunchbang

import (
	"fmt"

	"codeberg.org/crunchbang/crunchbang/templates"
	"go.uber.org/zap"
)

// UnknownTemplateError is returned when a library has no template with the
// requested name.
type UnknownTemplateError struct {
	Kind string // "monster" or "item"
	Name string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown %s template %q", e.Kind, e.Name)
}

// MonsterLibrary creates monsters from templates.
type MonsterLibrary struct {
	g     *Game
	defs  map[string]templates.Monster
	names []string // sorted, for deterministic selection
}

func newMonsterLibrary(g *Game, set *templates.Set) *MonsterLibrary {
	for _, id := range set.MonsterIDs() {
		if c := set.Monsters[id].Color; !IsColorName(c) {
			g.logger.Warn("unknown monster color", zap.String("template", id), zap.String("color", c))
		}
	}
	return &MonsterLibrary{g: g, defs: set.Monsters, names: set.MonsterIDs()}
}

// Names returns the available template names in sorted order.
func (lib *MonsterLibrary) Names() []string {
	return append([]string(nil), lib.names...)
}

// CreateMonster returns a new monster from the named template, with rolled
// hit points.
func (lib *MonsterLibrary) CreateMonster(name string) (*Monster, error) {
	def, ok := lib.defs[name]
	if !ok {
		return nil, &UnknownTemplateError{Kind: "monster", Name: name}
	}
	g := lib.g
	hp := max(1, g.RNG.RollDice(def.HP))
	mons := &Monster{
		Entity:     newEntity(g.newID(), KindMonster, def.Name, def.Glyph, ColorByName(def.Color)),
		Creature:   NewCreature(hp, def.HitDie, def.Defense),
		Template:   name,
		AggroRange: g.Config.FOVRadius,
	}
	mons.XPValue = def.XP
	mons.Behavior.Target = InvalidPos
	return mons, nil
}

// GetRandomMonster returns the name of a template eligible at the given
// depth, chosen according to template weights.
func (lib *MonsterLibrary) GetRandomMonster(depth int) (string, error) {
	var names []string
	var weights []int
	for _, name := range lib.names {
		if def := lib.defs[name]; def.Eligible(depth) {
			names = append(names, name)
			weights = append(weights, def.Weight)
		}
	}
	i := lib.g.RNG.WeightedSelect(weights)
	if i < 0 {
		return "", &UnknownTemplateError{Kind: "monster", Name: fmt.Sprintf("<any at depth %d>", depth)}
	}
	return names[i], nil
}

// ItemLibrary creates items from templates.
type ItemLibrary struct {
	g     *Game
	defs  map[string]templates.Item
	names []string
}

func newItemLibrary(g *Game, set *templates.Set) *ItemLibrary {
	return &ItemLibrary{g: g, defs: set.Items, names: set.ItemIDs()}
}

// Names returns the available template names in sorted order.
func (lib *ItemLibrary) Names() []string {
	return append([]string(nil), lib.names...)
}

// CreateItem returns a new item from the named template.
func (lib *ItemLibrary) CreateItem(name string) (*Item, error) {
	def, ok := lib.defs[name]
	if !ok {
		return nil, &UnknownTemplateError{Kind: "item", Name: name}
	}
	it := &Item{
		Entity:       newEntity(lib.g.newID(), KindItem, def.Name, def.Glyph, ColorByName(def.Color)),
		Template:     name,
		DefenseBonus: def.Defense,
		Equippable:   def.Equip,
	}
	if def.Use != nil {
		it.Use = &EffectSpec{Kind: EffectKind(def.Use.Kind), Die: def.Use.Die}
	}
	return it, nil
}

// GetRandomItem returns the name of an item template eligible at the given
// depth, chosen according to template weights.
func (lib *ItemLibrary) GetRandomItem(depth int) (string, error) {
	var names []string
	var weights []int
	for _, name := range lib.names {
		if def := lib.defs[name]; def.Eligible(depth) {
			names = append(names, name)
			weights = append(weights, def.Weight)
		}
	}
	i := lib.g.RNG.WeightedSelect(weights)
	if i < 0 {
		return "", &UnknownTemplateError{Kind: "item", Name: fmt.Sprintf("<any at depth %d>", depth)}
	}
	return names[i], nil
}
