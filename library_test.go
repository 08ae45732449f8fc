package crunchbang

import (
	"errors"
	"testing"

	"codeberg.org/crunchbang/crunchbang/dice"
	"codeberg.org/crunchbang/crunchbang/templates"
)

func testTemplates() *templates.Set {
	return &templates.Set{
		Monsters: map[string]templates.Monster{
			"bat": {ID: "bat", Name: "bat", Glyph: 'b', Color: "violet", HP: dice.Dice{Mod: 3},
				HitDie: dice.Dice{N: 1, Sides: 2}, XP: 5, MinDepth: 1, MaxDepth: 2, Weight: 1},
			"wyrm": {ID: "wyrm", Name: "wyrm", Glyph: 'W', Color: "no-such-color", HP: dice.Dice{N: 2, Sides: 10},
				HitDie: dice.Dice{N: 2, Sides: 6}, Defense: 2, XP: 200, MinDepth: 5, MaxDepth: 9, Weight: 3},
		},
		Items: map[string]templates.Item{
			"regular_heal": {ID: "regular_heal", Name: "potion", Glyph: '!', Color: "red",
				Use: &templates.Effect{Kind: "heal", Die: dice.Dice{N: 2, Sides: 6}}, MinDepth: 1, MaxDepth: 9, Weight: 1},
			"cloak": {ID: "cloak", Name: "cloak", Glyph: '[', Color: "blue", Defense: 1, Equip: true,
				MinDepth: 1, MaxDepth: 9},
			"firenova": {ID: "firenova", Name: "scroll", Glyph: '?', Color: "orange",
				Use: &templates.Effect{Kind: "nova", Die: dice.Dice{N: 2, Sides: 6}}, MinDepth: 1, MaxDepth: 9, Weight: 1},
		},
	}
}

func TestCreateMonster(t *testing.T) {
	g, err := newGame(DefaultConfig(), WithSeed(1, 1), WithTemplates(testTemplates()))
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	mons, err := g.Monsters.CreateMonster("bat")
	if err != nil {
		t.Fatalf("CreateMonster: %v", err)
	}
	if mons.HP != 3 || mons.MaxHP != 3 || mons.Rune != 'b' || mons.Color != ColorViolet {
		t.Errorf("bat = %+v", mons)
	}
	if mons.Kind != KindMonster || mons.XPValue != 5 || mons.Tile() != nil {
		t.Errorf("bat = %+v", mons.Entity)
	}
	wyrm, err := g.Monsters.CreateMonster("wyrm")
	if err != nil {
		t.Fatalf("CreateMonster: %v", err)
	}
	if wyrm.Color != ColorForeground {
		t.Errorf("unknown color gave %v", wyrm.Color)
	}
	if wyrm.HP < 2 || wyrm.HP > 20 {
		t.Errorf("wyrm hp %d out of 2d10", wyrm.HP)
	}
	if wyrm.ID == mons.ID {
		t.Errorf("monsters share ID %d", wyrm.ID)
	}
}

func TestUnknownTemplate(t *testing.T) {
	g, err := newGame(DefaultConfig(), WithTemplates(testTemplates()))
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	var terr *UnknownTemplateError
	if _, err := g.Monsters.CreateMonster("dragon"); !errors.As(err, &terr) || terr.Kind != "monster" {
		t.Errorf("CreateMonster: got %v", err)
	}
	if _, err := g.Items.CreateItem("sword"); !errors.As(err, &terr) || terr.Kind != "item" {
		t.Errorf("CreateItem: got %v", err)
	}
	if _, err := g.Monsters.GetRandomMonster(3); !errors.As(err, &terr) {
		t.Errorf("GetRandomMonster at empty depth: got %v", err)
	}
}

func TestGetRandomMonsterDepth(t *testing.T) {
	g, err := newGame(DefaultConfig(), WithSeed(2, 2), WithTemplates(testTemplates()))
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	for depth, want := range map[int]string{1: "bat", 2: "bat", 5: "wyrm", 9: "wyrm"} {
		for range 20 {
			name, err := g.Monsters.GetRandomMonster(depth)
			if err != nil {
				t.Fatalf("depth %d: %v", depth, err)
			}
			if name != want {
				t.Fatalf("depth %d: got %q, want %q", depth, name, want)
			}
		}
	}
}

func TestGetRandomItemWeights(t *testing.T) {
	g, err := newGame(DefaultConfig(), WithSeed(3, 3), WithTemplates(testTemplates()))
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	for range 50 {
		name, err := g.Items.GetRandomItem(1)
		if err != nil {
			t.Fatalf("GetRandomItem: %v", err)
		}
		if name == "cloak" {
			t.Fatalf("zero weight item generated")
		}
	}
}

func TestCreateItem(t *testing.T) {
	g, err := newGame(DefaultConfig(), WithTemplates(testTemplates()))
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	heal, err := g.Items.CreateItem("regular_heal")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if heal.Use == nil || heal.Use.Kind != EffectKindHeal || !heal.Consumable() {
		t.Errorf("heal = %+v", heal)
	}
	cloak, err := g.Items.CreateItem("cloak")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if cloak.Use != nil || !cloak.Equippable || cloak.DefenseBonus != 1 {
		t.Errorf("cloak = %+v", cloak)
	}
}

func TestNewGameWithTemplates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DungeonLevels = 2
	if _, err := NewGame(cfg, WithSeed(4, 4), WithTemplates(testTemplates())); err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	cfg.DungeonLevels = 3
	_, err := NewGame(cfg, WithSeed(4, 4), WithTemplates(testTemplates()))
	var terr *UnknownTemplateError
	if !errors.As(err, &terr) {
		t.Errorf("level 3 without monsters: got %v", err)
	}
}
