// This file defines functions for basic handling of entities.

package crunchbang

import (
	"codeberg.org/anaseto/gruid"
)

// ID identifies an entity for the whole game.
type ID int32

// InvalidPos is a position used for entities that are not on a map.
var InvalidPos = gruid.Point{X: -1, Y: -1}

// Kind is the variant tag of an actor.
type Kind int

const (
	KindPlayer Kind = iota
	KindMonster
	KindPortal
	KindItem
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	case KindPortal:
		return "portal"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// Blocks reports whether actors of this kind prevent others from entering
// their tile.
func (k Kind) Blocks() bool {
	return k == KindPlayer || k == KindMonster
}

// Layer returns the drawing priority of the kind: when several actors share
// a tile, the one with the highest layer is drawn.
func (k Kind) Layer() int {
	switch k {
	case KindPlayer:
		return 3
	case KindMonster:
		return 2
	case KindItem:
		return 1
	default:
		return 0
	}
}

// Entity gathers the components common to every actor.
type Entity struct {
	ID      ID
	Name    string      // name
	Rune    rune        // rune for display
	Color   gruid.Color // foreground for display
	Kind    Kind        // variant tag
	Visible bool        // whether it is drawn when in view
	P       gruid.Point // map position (InvalidPos if none)

	tile  *Tile
	level *Level
}

func newEntity(id ID, kind Kind, name string, r rune, fg gruid.Color) Entity {
	return Entity{ID: id, Name: name, Rune: r, Color: fg, Kind: kind, Visible: true, P: InvalidPos}
}

// Base returns the entity itself. It allows accessing common components
// through the Actor interface.
func (e *Entity) Base() *Entity {
	return e
}

// Tile returns the tile the actor stands on, or nil if it is not placed.
func (e *Entity) Tile() *Tile {
	return e.tile
}

// Level returns the level the actor is on, or nil if it is not placed.
func (e *Entity) Level() *Level {
	return e.level
}

// String returns the name of the entity.
func (e *Entity) String() string {
	return e.Name
}

// Actor is any entity placeable on a tile: Player, Monster, Portal or Item.
type Actor interface {
	Base() *Entity
}

// Character is an actor with hit points that participates in turns.
type Character interface {
	Actor
	Stats() *Creature
	// TakeTurn performs the character's action for the current turn.
	TakeTurn(g *Game) error
}

// Hostile reports whether two characters fight each other. Only the player
// and monsters are hostile to each other.
func Hostile(a, b Character) bool {
	ka, kb := a.Base().Kind, b.Base().Kind
	return ka == KindPlayer && kb == KindMonster || ka == KindMonster && kb == KindPlayer
}
