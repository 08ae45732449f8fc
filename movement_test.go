package crunchbang

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/crunchbang/crunchbang/dice"
)

// occupy puts a new monster on the tile at p, which may hold a portal.
func occupy(t *testing.T, g *Game, l *Level, p gruid.Point) *Monster {
	t.Helper()
	free, err := l.RandomEmptyTile()
	if err != nil {
		t.Fatalf("RandomEmptyTile: %v", err)
	}
	mons := addMonster(t, g, l, free.P, 10, dice.Dice{})
	g.MoveActor(mons, l.Map.Tile(p))
	return mons
}

func charactersAt(tile *Tile) int {
	n := 0
	for _, a := range tile.Actors() {
		if _, ok := a.(Character); ok {
			n++
		}
	}
	return n
}

func TestTravelOccupiedPortal(t *testing.T) {
	g := newTestGame(t)
	down := g.Levels[0].Portals()[0]
	dest := down.Destination()
	mons := occupy(t, g, g.Levels[1], dest.P)
	g.MoveActor(g.Player, down.Tile())
	g.Step(CmdPortal{Dir: PortalDown})
	if g.Current != g.Levels[1] {
		t.Fatalf("player did not travel")
	}
	if d := paths.DistanceChebyshev(g.Player.P, dest.P); d != 1 {
		t.Errorf("player arrived at distance %d from the portal, want 1", d)
	}
	if mons.P != dest.P {
		t.Errorf("monster moved from the portal to %v", mons.P)
	}
	for range 10 {
		g.Step(CmdWait{})
		for tile := range g.Current.Map.All() {
			if n := charactersAt(tile); n > 1 {
				t.Fatalf("%d characters on tile %v", n, tile.P)
			}
		}
	}
}

func TestTravelBlockedPortal(t *testing.T) {
	g := newTestGame(t)
	town := g.Levels[0]
	down := town.Portals()[0]
	dest := down.Destination()
	l := g.Levels[1]
	occupy(t, g, l, dest.P)
	for _, q := range (&paths.Neighbors{}).All(dest.P, func(q gruid.Point) bool { return !l.Map.Blocked(q) }) {
		if _, ok := l.Map.Tile(q).Character(); !ok {
			occupy(t, g, l, q)
		}
	}
	g.MoveActor(g.Player, down.Tile())
	g.Step(CmdPortal{Dir: PortalDown})
	if g.Current != town || g.Player.P != down.P {
		t.Fatalf("player travelled to %s at %v", g.Current.Name, g.Player.P)
	}
	if l.HasCharacter(g.Player) {
		t.Errorf("player added to the destination roster")
	}
}

func TestBumpIntoWall(t *testing.T) {
	g, _ := newArena(t)
	g.Step(CmdMove{DY: -1})
	g.Step(CmdMove{DY: -1})
	if want := (gruid.Point{X: 2, Y: 1}); g.Player.P != want {
		t.Fatalf("player at %v, want %v", g.Player.P, want)
	}
	last := g.Log.Last(1)[0]
	if last.Channel != ChannelGame || last.Text != "There is a wall in the way." {
		t.Errorf("last message %q on channel %v", last.Text, last.Channel)
	}
}
