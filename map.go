// This file contains map-related code.

package crunchbang

import (
	"iter"
	"slices"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// These constants represent the different kind of map tiles.
const (
	Wall     rl.Cell = iota // obstructing and blocks vision
	Floor                   // passable ground
	Building                // town building wall
	Door                    // passable building entrance
)

// TerrainName returns a short name for a terrain cell.
func TerrainName(t rl.Cell) string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Building:
		return "building"
	case Door:
		return "door"
	default:
		return "unknown terrain"
	}
}

// Passable reports whether a given terrain type is passable.
func Passable(t rl.Cell) bool {
	return t == Floor || t == Door
}

// MapRune returns the character rune representing a given terrain.
func MapRune(t rl.Cell) rune {
	switch t {
	case Wall, Building:
		return '#'
	case Door:
		return '+'
	default:
		return '.'
	}
}

// Tile is a single map cell. Tiles are owned by their Map.
type Tile struct {
	P        gruid.Point // position in the map
	Blocked  bool        // blocks movement and sight
	InView   bool        // currently visible
	Explored bool        // ever seen

	actors []Actor // actors on the tile, in arrival order
}

// Actors returns the actors currently on the tile.
func (t *Tile) Actors() []Actor {
	return slices.Clone(t.actors)
}

// Empty reports whether the tile can receive a new actor: it is not blocked
// and nothing is on it.
func (t *Tile) Empty() bool {
	return !t.Blocked && len(t.actors) == 0
}

// Character returns the first living character on the tile, if any.
func (t *Tile) Character() (Character, bool) {
	for _, a := range t.actors {
		if c, ok := a.(Character); ok && !c.Stats().IsDead() {
			return c, true
		}
	}
	return nil, false
}

// Portal returns a portal on the tile going in the given direction, if any.
func (t *Tile) Portal(dir PortalDir) (*Portal, bool) {
	for _, a := range t.actors {
		if p, ok := a.(*Portal); ok && p.Dir == dir {
			return p, true
		}
	}
	return nil, false
}

// Items returns the items lying on the tile.
func (t *Tile) Items() []*Item {
	var items []*Item
	for _, a := range t.actors {
		if it, ok := a.(*Item); ok {
			items = append(items, it)
		}
	}
	return items
}

func (t *Tile) add(a Actor) {
	t.actors = append(t.actors, a)
}

func (t *Tile) remove(a Actor) {
	id := a.Base().ID
	t.actors = slices.DeleteFunc(t.actors, func(b Actor) bool { return b.Base().ID == id })
}

// Map represents the rectangular map of a level.
type Map struct {
	Terrain rl.Grid // terrain cells
	tiles   []Tile  // tiles, row by row, in sync with Terrain
	fov     *rl.FOV // field of view
	inView  []gruid.Point
	width   int
	height  int
}

// NewMap returns a new map of the given size filled with walls.
func NewMap(w, h int) *Map {
	m := &Map{
		Terrain: rl.NewGrid(w, h),
		tiles:   make([]Tile, w*h),
		fov:     rl.NewFOV(gruid.NewRange(0, 0, w, h)),
		width:   w,
		height:  h,
	}
	m.Terrain.Fill(Wall)
	for i := range m.tiles {
		m.tiles[i] = Tile{P: pointAt(i, w), Blocked: true}
	}
	return m
}

// pointAt returns the position of the i-th cell of a row-major grid of
// width w.
func pointAt(i, w int) gruid.Point {
	return gruid.Point{X: i % w, Y: i / w}
}

// Size returns the map dimensions.
func (m *Map) Size() gruid.Point {
	return gruid.Point{X: m.width, Y: m.height}
}

// Contains reports whether a position is within map bounds.
func (m *Map) Contains(p gruid.Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// Tile returns the tile at p, or nil if p is out of the map.
func (m *Map) Tile(p gruid.Point) *Tile {
	if !m.Contains(p) {
		return nil
	}
	return &m.tiles[p.Y*m.width+p.X]
}

// Blocked reports whether the position blocks movement and sight. Positions
// outside the map are blocked.
func (m *Map) Blocked(p gruid.Point) bool {
	t := m.Tile(p)
	return t == nil || t.Blocked
}

// SetTerrain changes the terrain at p and keeps the tile's blocked flag in
// sync.
func (m *Map) SetTerrain(p gruid.Point, c rl.Cell) {
	t := m.Tile(p)
	if t == nil {
		return
	}
	m.Terrain.Set(p, c)
	t.Blocked = !Passable(c)
}

// syncTiles refreshes every tile's blocked flag from the terrain grid. It
// has to be called after the terrain grid has been modified directly, as
// during map generation.
func (m *Map) syncTiles() {
	for p, c := range m.Terrain.All() {
		m.tiles[p.Y*m.width+p.X].Blocked = !Passable(c)
	}
}

// All returns an iterator over every tile, row by row.
func (m *Map) All() iter.Seq[*Tile] {
	return func(yield func(*Tile) bool) {
		for i := range m.tiles {
			if !yield(&m.tiles[i]) {
				return
			}
		}
	}
}

// ExploredTiles returns the tiles that have been seen at least once.
func (m *Map) ExploredTiles() []*Tile {
	var ts []*Tile
	for t := range m.All() {
		if t.Explored {
			ts = append(ts, t)
		}
	}
	return ts
}

// InViewTiles returns the currently visible tiles.
func (m *Map) InViewTiles() []*Tile {
	ts := make([]*Tile, 0, len(m.inView))
	for _, p := range m.inView {
		ts = append(ts, m.Tile(p))
	}
	return ts
}

// FreeTiles returns the tiles that are not blocked and hold no actor.
func (m *Map) FreeTiles() []*Tile {
	var ts []*Tile
	for t := range m.All() {
		if t.Empty() {
			ts = append(ts, t)
		}
	}
	return ts
}
