package crunchbang

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// mappingPath implements the paths.Pather interface and is used for
// connected components in map generation.
type mappingPath struct {
	passable func(gruid.Point) bool
	nbs      paths.Neighbors
}

func (mp *mappingPath) Neighbors(p gruid.Point) []gruid.Point {
	if !mp.passable(p) {
		return nil
	}
	return mp.nbs.All(p, mp.passable)
}

// walkPath implements the paths.Pather interface for monster wandering. It
// ignores actors.
type walkPath struct {
	m   *Map
	nbs paths.Neighbors
}

func (wp *walkPath) Neighbors(p gruid.Point) []gruid.Point {
	return wp.nbs.All(p, func(q gruid.Point) bool { return !wp.m.Blocked(q) })
}

// MonsterPath returns a path between two positions of the level for a
// monster, ignoring other actors. The path includes both ends, and is nil if
// there is none.
func (l *Level) MonsterPath(from, to gruid.Point) []gruid.Point {
	passable := func(p gruid.Point) bool { return !l.Map.Blocked(p) }
	path := l.pr.JPSPath(nil, from, to, passable, true)
	if len(path) == 0 {
		return nil
	}
	return path
}

// RandomPassableWithin returns a random reachable position within the given
// walking distance of from.
func (l *Level) RandomPassableWithin(from gruid.Point, maxdist int) gruid.Point {
	wp := &walkPath{m: l.Map}
	nodes := l.pr.BreadthFirstMap(wp, []gruid.Point{from}, maxdist)
	if len(nodes) == 0 {
		return from
	}
	return nodes[l.game.RNG.IntN(len(nodes))].P
}

// sign returns -1, 0 or 1 according to the sign of x.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
