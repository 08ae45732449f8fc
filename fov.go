package crunchbang

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// DefaultFOVRadius is the default maximum distance in the player's field of
// view.
const DefaultFOVRadius = 8

// UpdateFieldOfView recomputes the visible tiles from origin within the given
// Chebyshev radius. Blocked tiles stop sight but are themselves visible.
// Tiles that leave the view stay explored. It has to be called each time the
// player changes tile.
func (m *Map) UpdateFieldOfView(origin gruid.Point, radius int) {
	m.ClearView()
	if !m.Contains(origin) {
		return
	}
	radius = max(radius, 0)
	rg := gruid.NewRange(-radius, -radius, radius+1, radius+1)
	m.fov.SetRange(rg.Add(origin).Intersect(m.Terrain.Range()))
	passable := func(p gruid.Point) bool {
		return !m.Blocked(p)
	}
	m.see(origin)
	for _, p := range m.fov.SSCVisionMap(origin, radius, passable, false) {
		if !m.Contains(p) || paths.DistanceChebyshev(p, origin) > radius {
			continue
		}
		m.see(p)
	}
}

// see marks a tile as in view and explored.
func (m *Map) see(p gruid.Point) {
	t := m.Tile(p)
	if t.InView {
		return
	}
	t.InView = true
	t.Explored = true
	m.inView = append(m.inView, p)
}

// InFOV reports whether the given position is currently visible.
func (m *Map) InFOV(p gruid.Point) bool {
	t := m.Tile(p)
	return t != nil && t.InView
}

// ClearView marks every tile as out of view, keeping explored history. It is
// used when the player leaves a level.
func (m *Map) ClearView() {
	for _, p := range m.inView {
		m.Tile(p).InView = false
	}
	m.inView = m.inView[:0]
}
