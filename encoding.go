package crunchbang

import (
	"bytes"
	"compress/zlib"
	"encoding/gob"
	"errors"
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// Version identifies the save format.
const Version = "crunchbang-v1"

// ErrIncompatibleSave is returned when decoding a save of another version.
var ErrIncompatibleSave = errors.New("incompatible save version")

// gameSave is the persisted form of a game. Pointers between levels and
// actors are replaced by IDs.
type gameSave struct {
	Version string
	Config  Config
	RNG     []byte
	RNGPos  int64
	NextID  ID
	Turn    int
	State   GameState
	Current int // ID of the current level
	Log     *Log
	Player  *Player
	Levels  []levelSave
}

type levelSave struct {
	ID       int
	Name     string
	Depth    int
	Kind     LevelKind
	Terrain  []rl.Cell
	Explored []bool
	InView   []bool
	Roster   []ID // character IDs in roster order
	Monsters []*Monster
	Portals  []*Portal
	Items    []*Item
}

// Encode returns the compressed save data of the game.
func (g *Game) Encode() ([]byte, error) {
	rng, err := g.RNG.MarshalBinary()
	if err != nil {
		return nil, err
	}
	gs := &gameSave{
		Version: Version,
		Config:  g.Config,
		RNG:     rng,
		RNGPos:  g.RNG.Position(),
		NextID:  g.nextID,
		Turn:    g.Turn,
		State:   g.State,
		Current: g.Current.ID,
		Log:     g.Log,
		Player:  g.Player,
	}
	for _, l := range g.Levels {
		gs.Levels = append(gs.Levels, saveLevel(l))
	}
	data := bytes.Buffer{}
	enc := gob.NewEncoder(&data)
	if err := enc.Encode(gs); err != nil {
		return nil, fmt.Errorf("encoding game: %w", err)
	}
	buf := bytes.Buffer{}
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data.Bytes()); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func saveLevel(l *Level) levelSave {
	m := l.Map
	n := m.width * m.height
	ls := levelSave{
		ID:       l.ID,
		Name:     l.Name,
		Depth:    l.Depth,
		Kind:     l.Kind,
		Terrain:  make([]rl.Cell, 0, n),
		Explored: make([]bool, 0, n),
		InView:   make([]bool, 0, n),
		Portals:  l.portals,
		Items:    l.items,
	}
	for t := range m.All() {
		ls.Terrain = append(ls.Terrain, m.Terrain.At(t.P))
		ls.Explored = append(ls.Explored, t.Explored)
		ls.InView = append(ls.InView, t.InView)
	}
	for _, c := range l.characters {
		ls.Roster = append(ls.Roster, c.Base().ID)
		if mons, ok := c.(*Monster); ok {
			ls.Monsters = append(ls.Monsters, mons)
		}
	}
	return ls
}

// Decode replaces the game's state by the state in the given save data.
func (g *Game) Decode(data []byte) error {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding save: %w", err)
	}
	defer r.Close()
	gs := &gameSave{}
	if err := gob.NewDecoder(r).Decode(gs); err != nil {
		return fmt.Errorf("decoding save: %w", err)
	}
	if gs.Version != Version {
		return fmt.Errorf("%w: %q", ErrIncompatibleSave, gs.Version)
	}
	return g.restore(gs)
}

// restore rebuilds the level and actor graph from a save.
func (g *Game) restore(gs *gameSave) error {
	if err := gs.Config.Validate(); err != nil {
		return err
	}
	rng, err := RestoreRNG(gs.RNG, gs.RNGPos)
	if err != nil {
		return err
	}
	g.Config = gs.Config
	g.RNG = rng
	g.nextID = gs.NextID
	g.Turn = gs.Turn
	g.State = gs.State
	g.Log = gs.Log
	if g.Log == nil {
		g.Log = NewLog()
	}
	g.Player = gs.Player
	g.Levels = nil
	portals := map[ID]*Portal{}
	for _, ls := range gs.Levels {
		l, err := g.restoreLevel(ls, portals)
		if err != nil {
			return err
		}
		g.Levels = append(g.Levels, l)
	}
	for _, p := range portals {
		if p.DestID == 0 {
			continue
		}
		dest, ok := portals[p.DestID]
		if !ok {
			return fmt.Errorf("decoding save: portal %d links to missing portal %d", p.ID, p.DestID)
		}
		p.dest = dest
	}
	g.Current = g.LevelByID(gs.Current)
	if g.Current == nil {
		return fmt.Errorf("decoding save: missing current level %d", gs.Current)
	}
	return nil
}

func (g *Game) restoreLevel(ls levelSave, portals map[ID]*Portal) (*Level, error) {
	l := g.newLevel(ls.ID, ls.Name, ls.Depth, ls.Kind)
	m := l.Map
	n := m.width * m.height
	if len(ls.Terrain) != n || len(ls.Explored) != n || len(ls.InView) != n {
		return nil, fmt.Errorf("decoding save: level %q has wrong map size", ls.Name)
	}
	for i, c := range ls.Terrain {
		p := pointAt(i, m.width)
		m.SetTerrain(p, c)
		t := m.Tile(p)
		t.Explored = ls.Explored[i]
		if ls.InView[i] {
			t.InView = true
			m.inView = append(m.inView, p)
		}
	}
	tileAt := func(p gruid.Point, name string) (*Tile, error) {
		t := m.Tile(p)
		if t == nil {
			return nil, fmt.Errorf("decoding save: %s outside level %q", name, ls.Name)
		}
		return t, nil
	}
	monsters := map[ID]*Monster{}
	for _, mons := range ls.Monsters {
		monsters[mons.ID] = mons
	}
	for _, id := range ls.Roster {
		var c Character
		if mons, ok := monsters[id]; ok {
			c = mons
		} else if id == g.Player.ID {
			c = g.Player
		} else {
			return nil, fmt.Errorf("decoding save: unknown character %d on level %q", id, ls.Name)
		}
		t, err := tileAt(c.Base().P, c.Base().Name)
		if err != nil {
			return nil, err
		}
		l.place(c, t)
	}
	for _, pt := range ls.Portals {
		t, err := tileAt(pt.P, pt.Name)
		if err != nil {
			return nil, err
		}
		l.place(pt, t)
		portals[pt.ID] = pt
	}
	for _, it := range ls.Items {
		t, err := tileAt(it.P, it.Name)
		if err != nil {
			return nil, err
		}
		l.place(it, t)
	}
	return l, nil
}
