package crunchbang

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestFOVIdempotent(t *testing.T) {
	g, l := newArena(t)
	before := map[gruid.Point]bool{}
	for _, tile := range l.Map.InViewTiles() {
		before[tile.P] = true
	}
	g.UpdateFieldOfView()
	g.UpdateFieldOfView()
	after := l.Map.InViewTiles()
	if len(after) != len(before) {
		t.Fatalf("in view: %d tiles, then %d", len(before), len(after))
	}
	for _, tile := range after {
		if !before[tile.P] {
			t.Errorf("tile %v entered the view on recomputation", tile.P)
		}
	}
}

func TestFOVRadius(t *testing.T) {
	g, l := newArena(t)
	g.Config.FOVRadius = 3
	g.MoveActor(g.Player, l.Map.Tile(gruid.Point{X: 1, Y: 1}))
	if !l.Map.InFOV(gruid.Point{X: 1, Y: 1}) {
		t.Errorf("player tile not in view")
	}
	if !l.Map.InFOV(gruid.Point{X: 4, Y: 1}) {
		t.Errorf("tile at distance 3 not in view")
	}
	if l.Map.InFOV(gruid.Point{X: 5, Y: 1}) {
		t.Errorf("tile at distance 4 in view")
	}
	for _, tile := range l.Map.InViewTiles() {
		if !tile.Explored {
			t.Errorf("tile %v in view but not explored", tile.P)
		}
	}
}

func TestFOVWallBlocks(t *testing.T) {
	g, l := newArena(t)
	for y := 1; y < 9; y++ {
		l.Map.SetTerrain(gruid.Point{X: 5, Y: y}, Wall)
	}
	g.MoveActor(g.Player, l.Map.Tile(gruid.Point{X: 2, Y: 5}))
	if !l.Map.InFOV(gruid.Point{X: 5, Y: 5}) {
		t.Errorf("wall tile not visible")
	}
	if l.Map.InFOV(gruid.Point{X: 7, Y: 5}) {
		t.Errorf("tile behind wall visible")
	}
}

func TestFOVExploredKept(t *testing.T) {
	g, l := newArena(t)
	g.Config.FOVRadius = 3
	g.MoveActor(g.Player, l.Map.Tile(gruid.Point{X: 1, Y: 1}))
	g.MoveActor(g.Player, l.Map.Tile(gruid.Point{X: 12, Y: 1}))
	old := l.Map.Tile(gruid.Point{X: 1, Y: 1})
	if old.InView {
		t.Errorf("old tile still in view")
	}
	if !old.Explored {
		t.Errorf("old tile no longer explored")
	}
	if l.Map.InFOV(gruid.Point{X: 18, Y: 8}) || l.Map.Tile(gruid.Point{X: 18, Y: 8}).Explored {
		t.Errorf("far tile seen")
	}
}
