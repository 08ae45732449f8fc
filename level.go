package crunchbang

import (
	"fmt"
	"slices"

	"codeberg.org/anaseto/gruid/paths"
)

// LevelKind distinguishes the town from dungeon levels.
type LevelKind int

const (
	TownLevel LevelKind = iota
	DungeonLevel
)

func (k LevelKind) String() string {
	if k == TownLevel {
		return "town"
	}
	return "dungeon"
}

// maxTileAttempts bounds the random draws of RandomEmptyTile before it falls
// back to an exhaustive scan.
const maxTileAttempts = 1000

// GenerationError reports that a level could not be built or populated.
type GenerationError struct {
	Level  string // level name
	Reason string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating level %q: %s", e.Level, e.Reason)
}

// Level is one floor of the game. It owns a map and the rosters of actors
// placed on it. An actor is in a roster if and only if it stands on one of
// the level's tiles.
type Level struct {
	ID    int
	Name  string
	Depth int // 0 for the town
	Kind  LevelKind
	Map   *Map

	game       *Game
	characters []Character
	portals    []*Portal
	items      []*Item
	pr         *paths.PathRange
}

// newLevel returns an empty level with a map full of walls.
func (g *Game) newLevel(id int, name string, depth int, kind LevelKind) *Level {
	m := NewMap(g.Config.MapWidth, g.Config.MapHeight)
	return &Level{
		ID:         id,
		Name:       name,
		Depth:      depth,
		Kind:       kind,
		Map:        m,
		game:       g,
		characters: []Character{},
		portals:    []*Portal{},
		items:      []*Item{},
		pr:         paths.NewPathRange(m.Terrain.Range()),
	}
}

// Game returns the game owning the level.
func (l *Level) Game() *Game {
	return l.game
}

// Characters returns the level's character roster, in insertion order.
func (l *Level) Characters() []Character {
	return slices.Clone(l.characters)
}

// Portals returns the portals of the level.
func (l *Level) Portals() []*Portal {
	return slices.Clone(l.portals)
}

// Items returns the items lying on the level's floor.
func (l *Level) Items() []*Item {
	return slices.Clone(l.items)
}

// HasCharacter reports whether c is in the level's roster.
func (l *Level) HasCharacter(c Character) bool {
	id := c.Base().ID
	return slices.ContainsFunc(l.characters, func(o Character) bool { return o.Base().ID == id })
}

// RandomEmptyTile returns a uniformly chosen tile that is neither blocked
// nor occupied. A bounded number of random draws is tried first, then every
// tile is scanned, so that it never loops forever on a full map.
func (l *Level) RandomEmptyTile() (*Tile, error) {
	rng := l.game.RNG
	sz := l.Map.Size()
	for range maxTileAttempts {
		t := l.Map.Tile(pointAt(rng.IntN(sz.X*sz.Y), sz.X))
		if t.Empty() {
			return t, nil
		}
	}
	free := l.Map.FreeTiles()
	if len(free) == 0 {
		return nil, &GenerationError{Level: l.Name, Reason: "no empty tile"}
	}
	return free[rng.IntN(len(free))], nil
}

// MoveToLevel places an actor on the given tile of a level, removing it from
// any previous tile and level first. Placing the player changes the current
// level and updates its field of view.
func (g *Game) MoveToLevel(a Actor, l *Level, t *Tile) {
	e := a.Base()
	prev := e.level
	g.removeFromLevel(a)
	l.place(a, t)
	if e.Kind == KindPlayer {
		if prev != nil && prev != l {
			prev.Map.ClearView()
		}
		g.Current = l
		g.UpdateFieldOfView()
	}
}

// place registers an unplaced actor on the level's roster and the given
// tile.
func (l *Level) place(a Actor, t *Tile) {
	switch a := a.(type) {
	case Character:
		l.characters = append(l.characters, a)
	case *Portal:
		l.portals = append(l.portals, a)
	case *Item:
		l.items = append(l.items, a)
	}
	t.add(a)
	e := a.Base()
	e.tile, e.level, e.P = t, l, t.P
}

// removeFromLevel removes an actor from its tile and its level's roster.
func (g *Game) removeFromLevel(a Actor) {
	e := a.Base()
	if e.tile != nil {
		e.tile.remove(a)
	}
	if l := e.level; l != nil {
		id := e.ID
		switch a.(type) {
		case Character:
			l.characters = slices.DeleteFunc(l.characters, func(c Character) bool { return c.Base().ID == id })
		case *Portal:
			l.portals = slices.DeleteFunc(l.portals, func(p *Portal) bool { return p.ID == id })
		case *Item:
			l.items = slices.DeleteFunc(l.items, func(it *Item) bool { return it.ID == id })
		}
	}
	e.tile, e.level, e.P = nil, nil, InvalidPos
}
