package crunchbang

import (
	"fmt"
)

// Command is an action issued for a character, usually the player.
type Command interface {
	Execute(g *Game, c Character) error
}

// CmdMove moves or attacks in a direction.
type CmdMove struct{ DX, DY int }

func (cmd CmdMove) Execute(g *Game, c Character) error {
	return g.TryMoveOrAttack(c, cmd.DX, cmd.DY)
}

// CmdWait does nothing for a turn.
type CmdWait struct{}

func (cmd CmdWait) Execute(g *Game, c Character) error {
	return nil
}

// CmdPortal follows a portal in the given direction.
type CmdPortal struct{ Dir PortalDir }

func (cmd CmdPortal) Execute(g *Game, c Character) error {
	if cmd.Dir != PortalDown && cmd.Dir != PortalUp {
		return fmt.Errorf("%w: portal direction %d", ErrInvalidCommand, cmd.Dir)
	}
	g.TryFollowPortal(c, cmd.Dir)
	return nil
}

// CmdUse uses the inventory item with the given index. Out of range indices
// select nothing.
type CmdUse struct{ Index int }

func (cmd CmdUse) Execute(g *Game, c Character) error {
	it, ok := c.Stats().InventoryItem(cmd.Index)
	if !ok {
		if c.Base().Kind == KindPlayer {
			g.Log.Message(ChannelGame, "You have no such item.")
		}
		return nil
	}
	return g.UseItem(c, it)
}

// CmdPickUp picks up the items on the character's tile.
type CmdPickUp struct{}

func (cmd CmdPickUp) Execute(g *Game, c Character) error {
	if !g.PickUp(c) && c.Base().Kind == KindPlayer {
		g.Log.Message(ChannelGame, "There is nothing here.")
	}
	return nil
}

// CmdDrop drops the inventory item with the given index.
type CmdDrop struct{ Index int }

func (cmd CmdDrop) Execute(g *Game, c Character) error {
	it, ok := c.Stats().InventoryItem(cmd.Index)
	if !ok {
		if c.Base().Kind == KindPlayer {
			g.Log.Message(ChannelGame, "You have no such item.")
		}
		return nil
	}
	g.Drop(c, it)
	return nil
}
