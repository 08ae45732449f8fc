package crunchbang

import (
	"errors"
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// ErrInvalidCommand is returned for malformed commands, like movement deltas
// outside {-1,0,1}.
var ErrInvalidCommand = errors.New("invalid command")

// TryMoveOrAttack moves the character by (dx, dy), or attacks a hostile
// character on the destination tile instead. Blocked destinations and
// friendly blocking characters make it a no-op.
func (g *Game) TryMoveOrAttack(c Character, dx, dy int) error {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || dx == 0 && dy == 0 {
		return fmt.Errorf("%w: move (%d,%d)", ErrInvalidCommand, dx, dy)
	}
	e := c.Base()
	if e.Tile() == nil || c.Stats().IsDead() {
		return nil
	}
	m := e.Level().Map
	to := m.Tile(e.P.Add(gruid.Point{X: dx, Y: dy}))
	if to == nil || to.Blocked {
		if e.Kind == KindPlayer {
			if to == nil {
				g.Log.Message(ChannelGame, "You cannot go there.")
			} else {
				g.Log.Messagef(ChannelGame, "There is a %s in the way.", TerrainName(m.Terrain.At(to.P)))
			}
		}
		return nil
	}
	if o, ok := to.Character(); ok {
		if Hostile(c, o) {
			g.Attack(c, o)
		}
		return nil
	}
	g.MoveActor(c, to)
	return nil
}

// MoveActor moves an actor to another tile of its level. Moving the player
// updates the field of view.
func (g *Game) MoveActor(a Actor, to *Tile) {
	e := a.Base()
	if e.tile != nil {
		e.tile.remove(a)
	}
	to.add(a)
	e.tile = to
	e.P = to.P
	if e.Kind == KindPlayer {
		g.UpdateFieldOfView()
		if items := to.Items(); len(items) > 0 {
			g.Log.Messagef(ChannelGame, "You see %s here.", items[0].Name)
		}
	}
}

// TryFollowPortal makes the character take a portal in the given direction
// on its tile, if any. It reports whether the character travelled. When
// another character stands on the destination portal, the traveller arrives
// on a random free neighbour tile, and stays if there is none.
func (g *Game) TryFollowPortal(c Character, dir PortalDir) bool {
	e := c.Base()
	if e.Tile() == nil || c.Stats().IsDead() {
		return false
	}
	p, ok := e.Tile().Portal(dir)
	if !ok || p.Destination() == nil || p.Destination().Level() == nil {
		if e.Kind == KindPlayer {
			g.Log.Messagef(ChannelGame, "There are no stairs leading %s here.", dir)
		}
		return false
	}
	dest := p.Destination()
	to := g.arrivalTile(dest)
	if to == nil {
		if e.Kind == KindPlayer {
			g.Log.Message(ChannelGame, "Something blocks the way on the other side.")
		}
		return false
	}
	g.MoveToLevel(c, dest.Level(), to)
	if e.Kind == KindPlayer {
		g.Log.Message(ChannelTravel, p.Message)
	}
	return true
}

// arrivalTile returns the tile where a traveller through the given portal
// lands, or nil if the portal and its surroundings are all occupied.
func (g *Game) arrivalTile(dest *Portal) *Tile {
	t := dest.Tile()
	if _, ok := t.Character(); !ok {
		return t
	}
	m := dest.Level().Map
	nbs := paths.Neighbors{}
	free := nbs.All(t.P, func(q gruid.Point) bool {
		nt := m.Tile(q)
		if nt == nil || nt.Blocked {
			return false
		}
		_, ok := nt.Character()
		return !ok
	})
	if len(free) == 0 {
		return nil
	}
	g.RNG.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	return m.Tile(free[0])
}

// TryFollowPortalDown is TryFollowPortal with PortalDown.
func (g *Game) TryFollowPortalDown(c Character) bool {
	return g.TryFollowPortal(c, PortalDown)
}

// TryFollowPortalUp is TryFollowPortal with PortalUp.
func (g *Game) TryFollowPortalUp(c Character) bool {
	return g.TryFollowPortal(c, PortalUp)
}

// UpdateFieldOfView recomputes the player's field of view on its level.
func (g *Game) UpdateFieldOfView() {
	e := g.Player.Base()
	if e.Level() == nil {
		return
	}
	e.Level().Map.UpdateFieldOfView(e.P, g.Config.FOVRadius)
}
