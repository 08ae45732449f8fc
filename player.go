package crunchbang

import (
	"codeberg.org/crunchbang/crunchbang/dice"
)

// Player is the character controlled through commands from the
// presentation layer.
type Player struct {
	Entity
	Creature

	pending Command
}

// NewPlayer returns a new player character.
func (g *Game) NewPlayer(name string) *Player {
	return &Player{
		Entity:   newEntity(g.newID(), KindPlayer, name, '@', ColorBlue),
		Creature: NewCreature(g.Config.PlayerHP, dice.MustParse(g.Config.PlayerHitDie), 0),
	}
}

// Stats returns the player's character stats.
func (p *Player) Stats() *Creature {
	return &p.Creature
}

// TakeTurn executes the pending command. Without a command the player waits.
func (p *Player) TakeTurn(g *Game) error {
	cmd := p.pending
	p.pending = nil
	if cmd == nil || p.IsDead() {
		return nil
	}
	return cmd.Execute(g, p)
}

// Pending returns the command to be executed on the player's next turn.
func (p *Player) Pending() Command {
	return p.pending
}
