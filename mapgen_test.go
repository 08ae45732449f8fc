package crunchbang

import (
	"errors"
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

const rounds = 10

// reachable returns the number of passable cells reachable from p, moving in
// eight directions.
func reachable(m *Map, p gruid.Point) int {
	seen := map[gruid.Point]bool{p: true}
	queue := []gruid.Point{p}
	nbs := paths.Neighbors{}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for _, r := range nbs.All(q, func(r gruid.Point) bool { return !m.Blocked(r) }) {
			if !seen[r] {
				seen[r] = true
				queue = append(queue, r)
			}
		}
	}
	return len(seen)
}

func checkConnected(t *testing.T, l *Level) {
	t.Helper()
	var start gruid.Point
	n := 0
	for tile := range l.Map.All() {
		if !tile.Blocked {
			start = tile.P
			n++
		}
	}
	if n == 0 {
		t.Fatalf("%s: no passable tile", l.Name)
	}
	if r := reachable(l.Map, start); r != n {
		t.Errorf("%s: %d of %d passable tiles reachable", l.Name, r, n)
	}
	sz := l.Map.Size()
	for x := range sz.X {
		if !l.Map.Blocked(gruid.Point{X: x, Y: 0}) || !l.Map.Blocked(gruid.Point{X: x, Y: sz.Y - 1}) {
			t.Errorf("%s: open border at column %d", l.Name, x)
		}
	}
	for y := range sz.Y {
		if !l.Map.Blocked(gruid.Point{X: 0, Y: y}) || !l.Map.Blocked(gruid.Point{X: sz.X - 1, Y: y}) {
			t.Errorf("%s: open border at line %d", l.Name, y)
		}
	}
}

func TestMapGenConnected(t *testing.T) {
	for i := range rounds {
		g, err := NewGame(DefaultConfig(), WithSeed(uint64(i), 42))
		if err != nil {
			t.Fatalf("round %d: NewGame: %v", i, err)
		}
		for _, l := range g.Levels {
			checkConnected(t, l)
		}
	}
}

func TestMapGenTown(t *testing.T) {
	g := newTestGame(t)
	town := g.Levels[0]
	var buildings, doors int
	for _, c := range town.Map.Terrain.All() {
		switch c {
		case Building:
			buildings++
		case Door:
			doors++
		}
	}
	if buildings == 0 {
		t.Errorf("town without buildings")
	}
	if doors < 1 || doors > 5 {
		t.Errorf("town has %d doors, want 1 to 5", doors)
	}
	for tile := range town.Map.All() {
		if Passable(town.Map.Terrain.At(tile.P)) == tile.Blocked {
			t.Fatalf("tile %v blocked flag out of sync", tile.P)
		}
	}
}

func TestMapGenTooSmall(t *testing.T) {
	g, _ := newArena(t)
	// A walled 4x4 map has 4 inner cells, less than the minimum cave size.
	g.Config.MapWidth, g.Config.MapHeight = 4, 4
	l := g.newLevel(3, "Tiny", 3, DungeonLevel)
	err := l.genDungeonMap()
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("got %v, want a generation error", err)
	}
	if gerr.Level != "Tiny" {
		t.Errorf("error level %q, want %q", gerr.Level, "Tiny")
	}
}
