package crunchbang

import (
	"codeberg.org/crunchbang/crunchbang/dice"
)

// CharState is the turn state of a character.
type CharState int

const (
	Active CharState = iota
	Dead
)

func (st CharState) String() string {
	if st == Dead {
		return "dead"
	}
	return "active"
}

// Experience thresholds: reaching level n+1 from level n costs
// LevelUpBase + n*LevelUpFactor experience.
const (
	LevelUpBase   = 200
	LevelUpFactor = 150
	LevelUpHP     = 4 // max HP gained per level
)

// Creature holds the data relevant to any character (player or monster).
type Creature struct {
	HP          int       // health points
	MaxHP       int       // maximum health points
	XP          int       // experience points
	XPLevel     int       // experience level
	NextLevelXP int       // experience needed for next level
	XPValue     int       // experience granted to the killer
	HitDie      dice.Dice // damage die for attacks
	BaseDefense int       // defense without equipment
	Inventory   []*Item   // carried items
	State       CharState // Active or Dead
}

// NewCreature returns creature stats with full health.
func NewCreature(hp int, hitDie dice.Dice, defense int) Creature {
	return Creature{
		HP:          hp,
		MaxHP:       hp,
		XPLevel:     1,
		NextLevelXP: LevelUpBase + LevelUpFactor,
		HitDie:      hitDie,
		BaseDefense: defense,
		Inventory:   []*Item{},
	}
}

// IsDead reports whether the creature is dead.
func (c *Creature) IsDead() bool {
	return c.State == Dead
}

// Defense returns the total defense, including equipped items.
func (c *Creature) Defense() int {
	def := c.BaseDefense
	for _, it := range c.Inventory {
		if it.Equipped {
			def += it.DefenseBonus
		}
	}
	return def
}

// adjustHP changes hit points by amount, clamped to [0, MaxHP]. It returns
// the effective change.
func (c *Creature) adjustHP(amount int) int {
	hp := c.HP
	c.HP = min(c.MaxHP, max(0, hp+amount))
	return c.HP - hp
}

// gainXP adds experience and handles level-ups. It returns the number of
// levels gained.
func (c *Creature) gainXP(xp int) int {
	if xp <= 0 {
		return 0
	}
	c.XP += xp
	levels := 0
	for c.XP >= c.NextLevelXP {
		c.XPLevel++
		c.NextLevelXP += LevelUpBase + c.XPLevel*LevelUpFactor
		c.MaxHP += LevelUpHP
		c.HP = c.MaxHP
		levels++
	}
	return levels
}

// AddItem puts an item in the inventory.
func (c *Creature) AddItem(it *Item) {
	c.Inventory = append(c.Inventory, it)
}

// InventoryItem returns the i-th inventory item. Out of range selections
// report false.
func (c *Creature) InventoryItem(i int) (*Item, bool) {
	if i < 0 || i >= len(c.Inventory) {
		return nil, false
	}
	return c.Inventory[i], true
}

// removeItem removes an item from the inventory.
func (c *Creature) removeItem(it *Item) bool {
	for i, o := range c.Inventory {
		if o == it {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
			return true
		}
	}
	return false
}
