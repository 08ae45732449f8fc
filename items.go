package crunchbang

import (
	"errors"
	"fmt"
)

// ErrNotUsable is returned when using an item that has neither a use effect
// nor an equipment slot.
var ErrNotUsable = errors.New("item cannot be used")

// Item is an actor that is either carried in an inventory or lying on a
// level's floor.
type Item struct {
	Entity
	Template     string      // template name
	Use          *EffectSpec // effect when used (nil if none)
	DefenseBonus int         // defense bonus when equipped
	Equippable   bool        // whether the item can be worn
	Equipped     bool        // whether the item is worn
}

// Consumable reports whether the item is destroyed on use.
func (it *Item) Consumable() bool {
	return it.Use != nil
}

// Desc returns a short description of the item for inventory listings.
func (it *Item) Desc() string {
	switch {
	case it.Equipped:
		return fmt.Sprintf("%s (worn)", it.Name)
	case it.Use != nil:
		return fmt.Sprintf("%s (%s %s)", it.Name, it.Use.Kind, it.Use.Die)
	default:
		return it.Name
	}
}

// UseItem applies an inventory item for the given character. Items with an
// effect are consumed; equipment is worn or taken off.
func (g *Game) UseItem(c Character, it *Item) error {
	st := c.Stats()
	if st.IsDead() {
		return nil
	}
	switch {
	case it.Use != nil:
		// Self effects target the user, area effects are centered on
		// it.
		eff := it.Use.New(c)
		if err := eff.ApplyTo(g, c); err != nil {
			return fmt.Errorf("using %s: %w", it.Name, err)
		}
		st.removeItem(it)
	case it.Equippable:
		it.Equipped = !it.Equipped
		if c.Base().Kind == KindPlayer {
			if it.Equipped {
				g.Log.Messagef(ChannelGame, "You put on the %s.", it.Name)
			} else {
				g.Log.Messagef(ChannelGame, "You take off the %s.", it.Name)
			}
		}
	default:
		return fmt.Errorf("%s: %w", it.Name, ErrNotUsable)
	}
	return nil
}

// PickUp moves every item on the character's tile into its inventory. It
// reports whether something was picked up.
func (g *Game) PickUp(c Character) bool {
	t := c.Base().Tile()
	if t == nil {
		return false
	}
	items := t.Items()
	for _, it := range items {
		g.removeFromLevel(it)
		c.Stats().AddItem(it)
		if c.Base().Kind == KindPlayer {
			g.Log.Messagef(ChannelGame, "You pick up the %s.", it.Name)
		}
	}
	return len(items) > 0
}

// Drop puts an inventory item on the character's tile. Worn items are taken
// off first.
func (g *Game) Drop(c Character, it *Item) bool {
	st := c.Stats()
	e := c.Base()
	if e.Tile() == nil || !st.removeItem(it) {
		return false
	}
	it.Equipped = false
	g.MoveToLevel(it, e.Level(), e.Tile())
	if e.Kind == KindPlayer {
		g.Log.Messagef(ChannelGame, "You drop the %s.", it.Name)
	}
	return true
}
