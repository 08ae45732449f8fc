package crunchbang

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// MonsState represents the behavior state of a monster.
type MonsState int

const (
	Wandering MonsState = iota
	Hunting
)

// Behavior is the AI component of a monster.
type Behavior struct {
	State  MonsState   // current behavior state
	Target gruid.Point // current destination (InvalidPos if none)
}

// Monster is an AI-controlled character.
type Monster struct {
	Entity
	Creature
	Template   string   // template name
	AggroRange int      // distance at which it notices the player
	Behavior   Behavior // AI state
}

// Stats returns the monster's character stats.
func (m *Monster) Stats() *Creature {
	return &m.Creature
}

// wanderDistance bounds the distance of wandering targets.
const wanderDistance = 6

// TakeTurn runs the monster's AI. A monster that sees the player within its
// aggro range hunts it: it attacks when adjacent and otherwise moves closer.
// Other monsters wander around or idle.
func (m *Monster) TakeTurn(g *Game) error {
	if m.IsDead() || m.Tile() == nil {
		return nil
	}
	pl := g.Player
	if m.notices(pl) {
		m.Behavior.State = Hunting
		m.Behavior.Target = pl.P
	}
	switch m.Behavior.State {
	case Hunting:
		return m.hunt(g)
	default:
		return m.wander(g)
	}
}

// notices reports whether the monster sees the player. Vision is symmetric:
// a monster on a tile in the player's view sees the player.
func (m *Monster) notices(pl *Player) bool {
	if pl.IsDead() || pl.Level() != m.Level() {
		return false
	}
	return m.Tile().InView && paths.DistanceChebyshev(m.P, pl.P) <= m.AggroRange
}

// hunt moves toward the target, attacking the player when adjacent.
func (m *Monster) hunt(g *Game) error {
	pl := g.Player
	if !pl.IsDead() && pl.Level() == m.Level() && paths.DistanceChebyshev(m.P, pl.P) == 1 {
		g.Attack(m, pl)
		return nil
	}
	if m.Behavior.Target == m.P || m.Behavior.Target == InvalidPos {
		// Lost track of the player.
		m.Behavior.State = Wandering
		m.Behavior.Target = InvalidPos
		return nil
	}
	return m.stepToward(g, m.Behavior.Target)
}

// wander moves toward a random nearby target, choosing a new one when it is
// reached. Wandering monsters idle two turns out of three.
func (m *Monster) wander(g *Game) error {
	if g.RNG.IntN(3) != 0 {
		return nil
	}
	if m.Behavior.Target == m.P || m.Behavior.Target == InvalidPos {
		m.Behavior.Target = m.Level().RandomPassableWithin(m.P, wanderDistance)
		return nil
	}
	return m.stepToward(g, m.Behavior.Target)
}

// stepToward makes one step along a path to the given position, falling back
// to a straight step when no path exists.
func (m *Monster) stepToward(g *Game, to gruid.Point) error {
	delta := gruid.Point{X: sign(to.X - m.P.X), Y: sign(to.Y - m.P.Y)}
	if path := m.Level().MonsterPath(m.P, to); len(path) > 1 {
		delta = path[1].Sub(m.P)
	}
	if delta == (gruid.Point{}) {
		return nil
	}
	return g.TryMoveOrAttack(m, delta.X, delta.Y)
}
