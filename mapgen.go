package crunchbang

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"go.uber.org/zap"
)

// maxGenTries bounds the number of attempts at generating an acceptable
// dungeon map.
const maxGenTries = 20

// minCavePercent is the minimum share of floor cells in an acceptable
// dungeon map.
const minCavePercent = 35

// generate builds the level's terrain and population according to its kind.
func (l *Level) generate() error {
	switch l.Kind {
	case TownLevel:
		l.genTownMap()
		return nil
	default:
		if err := l.genDungeonMap(); err != nil {
			return err
		}
		return l.populate()
	}
}

// genTownMap generates an open field surrounded by walls, with a few solid
// buildings. Buildings never touch each other nor the outer walls, so the
// field is connected without further processing.
func (l *Level) genTownMap() {
	m := l.Map
	rng := l.game.RNG
	sz := m.Size()
	m.Terrain.Fill(Wall)
	inner := gruid.NewRange(1, 1, sz.X-1, sz.Y-1)
	m.Terrain.Slice(inner).Fill(Floor)
	var placed []gruid.Range
	n := 3 + rng.IntN(3)
	for range 10 * n {
		if len(placed) >= n {
			break
		}
		w, h := 4+rng.IntN(5), 3+rng.IntN(3)
		if sz.X < w+5 || sz.Y < h+5 {
			continue
		}
		x, y := 2+rng.IntN(sz.X-w-3), 2+rng.IntN(sz.Y-h-3)
		rg := gruid.NewRange(x, y, x+w, y+h)
		margin := gruid.NewRange(x-1, y-1, x+w+1, y+h+1)
		if overlapsAny(margin, placed) {
			continue
		}
		placed = append(placed, rg)
		m.Terrain.Slice(rg).Fill(Building)
		m.Terrain.Set(gruid.Point{X: x + w/2, Y: y + h - 1}, Door)
	}
	m.syncTiles()
}

func overlapsAny(rg gruid.Range, rgs []gruid.Range) bool {
	for _, o := range rgs {
		if rg.Min.X < o.Max.X && o.Min.X < rg.Max.X && rg.Min.Y < o.Max.Y && o.Min.Y < rg.Max.Y {
			return true
		}
	}
	return false
}

// genDungeonMap generates a cave with a cellular automata and keeps its
// largest reachable part. It fails if no acceptable cave could be generated
// after a bounded number of attempts.
func (l *Level) genDungeonMap() error {
	m := l.Map
	rng := l.game.RNG
	sz := m.Size()
	minCells := sz.X * sz.Y * minCavePercent / 100
	for try := range maxGenTries {
		m.Terrain.Fill(Wall)
		mgen := rl.MapGen{Rand: rng.Rand(), Grid: m.Terrain}
		// cellular automata map generation with rules that give a
		// cave-like map.
		rules := []rl.CellularAutomataRule{
			{WCutoff1: 5, WCutoff2: 2, Reps: 4, WallsOutOfRange: true},
			{WCutoff1: 5, WCutoff2: 25, Reps: 3, WallsOutOfRange: true},
		}
		winit := 0.42
		switch rng.IntN(3) {
		case 1:
			winit = 0.45
		case 2:
			winit = 0.48
		}
		mgen.CellularAutomataCave(Wall, Floor, winit, rules)
		fillBorder(m.Terrain, Wall)
		if n := l.keepConnected(); n >= minCells {
			m.syncTiles()
			return nil
		}
		l.game.logger.Debug("rejected cave map",
			zap.String("level", l.Name),
			zap.Int("try", try))
	}
	return &GenerationError{Level: l.Name, Reason: fmt.Sprintf("no acceptable cave after %d tries", maxGenTries)}
}

// fillBorder sets the outer ring of the grid to c.
func fillBorder(gd rl.Grid, c rl.Cell) {
	rg := gd.Range()
	sz := rg.Size()
	gd.Slice(rg.Line(0)).Fill(c)
	gd.Slice(rg.Line(sz.Y - 1)).Fill(c)
	gd.Slice(rg.Column(0)).Fill(c)
	gd.Slice(rg.Column(sz.X - 1)).Fill(c)
}

// keepConnected replaces every floor cell unreachable from a random floor
// cell by a wall. It returns the number of remaining floor cells.
func (l *Level) keepConnected() int {
	m := l.Map
	var floor []gruid.Point
	for p, c := range m.Terrain.All() {
		if Passable(c) {
			floor = append(floor, p)
		}
	}
	if len(floor) == 0 {
		return 0
	}
	start := floor[l.game.RNG.IntN(len(floor))]
	pass := func(p gruid.Point) bool {
		return Passable(m.Terrain.At(p))
	}
	l.pr.CCMap(&mappingPath{passable: pass}, start)
	mgen := rl.MapGen{Rand: l.game.RNG.Rand(), Grid: m.Terrain}
	return mgen.KeepCC(l.pr, start, Wall)
}

// populate places monsters and items on a dungeon level, scaled to its
// depth.
func (l *Level) populate() error {
	g := l.game
	nmons := g.Config.MonstersBase + l.Depth*g.Config.MonstersPerDepth
	for range nmons {
		name, err := g.Monsters.GetRandomMonster(l.Depth)
		if err != nil {
			return fmt.Errorf("populating %s: %w", l.Name, err)
		}
		mons, err := g.Monsters.CreateMonster(name)
		if err != nil {
			return fmt.Errorf("populating %s: %w", l.Name, err)
		}
		t, err := l.RandomEmptyTile()
		if err != nil {
			return err
		}
		g.MoveToLevel(mons, l, t)
	}
	for range g.Config.ItemsPerLevel {
		name, err := g.Items.GetRandomItem(l.Depth)
		if err != nil {
			return fmt.Errorf("populating %s: %w", l.Name, err)
		}
		it, err := g.Items.CreateItem(name)
		if err != nil {
			return fmt.Errorf("populating %s: %w", l.Name, err)
		}
		t, err := l.RandomEmptyTile()
		if err != nil {
			return err
		}
		g.MoveToLevel(it, l, t)
	}
	return nil
}
