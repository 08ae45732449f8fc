package crunchbang

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/crunchbang/crunchbang/dice"
)

func TestNovaOffsets(t *testing.T) {
	offsets := NovaOffsets()
	if len(offsets) != 20 {
		t.Fatalf("got %d offsets, want 20", len(offsets))
	}
	seen := map[gruid.Point]bool{}
	for _, d := range offsets {
		if seen[d] {
			t.Errorf("duplicate offset %v", d)
		}
		seen[d] = true
		if d == (gruid.Point{}) {
			t.Errorf("center included")
		}
		if (d.X == 2 || d.X == -2) && (d.Y == 2 || d.Y == -2) {
			t.Errorf("corner %v included", d)
		}
		if d.X < -2 || d.X > 2 || d.Y < -2 || d.Y > 2 {
			t.Errorf("offset %v out of the 5x5 square", d)
		}
	}
}

func TestNovaTilesFiltered(t *testing.T) {
	_, l := newArena(t)
	if n := len(NovaTiles(l.Map, gruid.Point{X: 1, Y: 1})); n != 7 {
		t.Errorf("got %d tiles near the corner, want 7", n)
	}
	if n := len(NovaTiles(l.Map, gruid.Point{X: 8, Y: 5})); n != 20 {
		t.Errorf("got %d tiles in the open, want 20", n)
	}
	l.Map.SetTerrain(gruid.Point{X: 9, Y: 5}, Wall)
	if n := len(NovaTiles(l.Map, gruid.Point{X: 8, Y: 5})); n != 19 {
		t.Errorf("got %d tiles next to a wall, want 19", n)
	}
}

func TestNovaDamage(t *testing.T) {
	g, l := newArena(t)
	g.MoveActor(g.Player, l.Map.Tile(gruid.Point{X: 8, Y: 5}))
	near := addMonster(t, g, l, gruid.Point{X: 8, Y: 7}, 10, dice.Dice{})
	side := addMonster(t, g, l, gruid.Point{X: 9, Y: 5}, 2, dice.Dice{})
	corner := addMonster(t, g, l, gruid.Point{X: 10, Y: 7}, 10, dice.Dice{})
	far := addMonster(t, g, l, gruid.Point{X: 14, Y: 5}, 10, dice.Dice{})
	eff := NovaEffect{Source: g.Player, Die: dice.Dice{Mod: 3}}
	if eff.TargetType() != TargetArea {
		t.Errorf("nova target type = %v", eff.TargetType())
	}
	if err := eff.ApplyTo(g, g.Player); err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	if near.HP != 7 {
		t.Errorf("near monster hp %d, want 7", near.HP)
	}
	if !side.IsDead() || l.HasCharacter(side) {
		t.Errorf("weak monster survived the nova")
	}
	if corner.HP != 10 || far.HP != 10 {
		t.Errorf("monsters out of the area damaged: %d and %d", corner.HP, far.HP)
	}
	if g.Player.HP != g.Player.MaxHP {
		t.Errorf("nova damaged its source")
	}
	effs := g.Log.DrainEffects()
	if len(effs) != 1 || len(effs[0].Points) != 20 || effs[0].Color != ColorRed {
		t.Errorf("registered effects: %+v", effs)
	}
	if len(g.Log.DrainEffects()) != 0 {
		t.Errorf("effects not drained")
	}
}

func TestHealEffect(t *testing.T) {
	g, _ := newArena(t)
	pl := g.Player
	pl.HP = 20
	eff := EffectSpec{Kind: EffectKindHeal, Die: dice.Dice{Mod: 3}}.New(pl)
	if eff.TargetType() != TargetSelf {
		t.Errorf("heal target type = %v", eff.TargetType())
	}
	if err := eff.ApplyTo(g, pl); err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	if pl.HP != 23 {
		t.Errorf("hp %d, want 23", pl.HP)
	}
	pl.HP = pl.MaxHP - 1
	if err := eff.ApplyTo(g, pl); err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	if pl.HP != pl.MaxHP {
		t.Errorf("hp %d, want %d", pl.HP, pl.MaxHP)
	}
}

func TestEffectSpecDefaultDie(t *testing.T) {
	eff := EffectSpec{Kind: EffectKindNova}.New(nil)
	nova, ok := eff.(NovaEffect)
	if !ok {
		t.Fatalf("got %T, want NovaEffect", eff)
	}
	if nova.Die != DefaultEffectDie {
		t.Errorf("die = %v, want %v", nova.Die, DefaultEffectDie)
	}
}
