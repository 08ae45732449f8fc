// Package crunchbang implements a turn-based dungeon crawler engine: levels
// linked by portals, characters fighting on tile maps, magic effects and
// field of view. A presentation layer issues player commands, calls PlayTurn
// and draws the resulting state.
package crunchbang

import (
	"fmt"
	"math/rand/v2"

	"codeberg.org/crunchbang/crunchbang/templates"
	"go.uber.org/zap"
)

// GameState tells whether a game is still being played.
type GameState int

const (
	Playing GameState = iota
	Finished
)

func (st GameState) String() string {
	if st == Finished {
		return "finished"
	}
	return "playing"
}

// StartingItems are the template names of the player's initial inventory.
var StartingItems = []string{"regular_heal", "cloak", "firenova"}

// Game is the simulation root of a play session.
type Game struct {
	Levels   []*Level        // town followed by dungeon levels
	Current  *Level          // level of the player
	Player   *Player         // player character
	Monsters *MonsterLibrary // monster factory
	Items    *ItemLibrary    // item factory
	State    GameState       // Playing or Finished
	Turn     int             // number of completed turns
	Log      *Log            // player messages
	RNG      *RNG            // source of randomness
	Config   Config          // settings

	logger    *zap.Logger
	templates *templates.Set
	nextID    ID
}

// Option configures a Game on creation.
type Option func(*Game)

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithSeed makes the game deterministic.
func WithSeed(seed1, seed2 uint64) Option {
	return func(g *Game) {
		g.RNG = NewRNG(seed1, seed2)
	}
}

// WithTemplates sets the monster and item templates.
func WithTemplates(set *templates.Set) Option {
	return func(g *Game) {
		g.templates = set
	}
}

// NewGame returns a new game ready to be played.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	g, err := newGame(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.ResetGame(); err != nil {
		return nil, err
	}
	return g, nil
}

// newGame returns a game with its collaborators set up but no world.
func newGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{Config: cfg, Log: NewLog()}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.RNG == nil {
		if cfg.Seed != 0 {
			g.RNG = NewRNG(cfg.Seed, cfg.Seed)
		} else {
			g.RNG = NewRNG(rand.Uint64(), rand.Uint64())
		}
	}
	if g.templates == nil {
		var err error
		if cfg.TemplateDir != "" {
			g.templates, err = templates.Load(cfg.TemplateDir)
		} else {
			g.templates, err = templates.Default()
		}
		if err != nil {
			return nil, fmt.Errorf("loading templates: %w", err)
		}
	}
	g.Monsters = newMonsterLibrary(g, g.templates)
	g.Items = newItemLibrary(g, g.templates)
	return g, nil
}

// newID returns a new unique entity ID.
func (g *Game) newID() ID {
	g.nextID++
	return g.nextID
}

// Logger returns the diagnostic logger.
func (g *Game) Logger() *zap.Logger {
	return g.logger
}

// ResetGame builds a whole new world: the town, the dungeon levels linked by
// pairs of portals, and the player with its starting inventory.
func (g *Game) ResetGame() error {
	g.Levels = nil
	g.Current = nil
	g.Player = nil
	g.Turn = 0
	g.Log = NewLog()

	town := g.newLevel(0, "Town", 0, TownLevel)
	if err := town.generate(); err != nil {
		return err
	}
	g.Levels = append(g.Levels, town)
	g.Current = town
	for i := 1; i <= g.Config.DungeonLevels; i++ {
		prev := g.Levels[i-1]
		cur := g.newLevel(i, fmt.Sprintf("Dungeon level %d", i), i, DungeonLevel)
		if err := cur.generate(); err != nil {
			return err
		}
		g.Levels = append(g.Levels, cur)
		if err := g.linkLevels(prev, cur); err != nil {
			return err
		}
	}
	g.logger.Debug("levels generated", zap.Int("count", len(g.Levels)))

	g.Player = g.NewPlayer(g.Config.PlayerName)
	first := g.Levels[0]
	t, err := first.RandomEmptyTile()
	if err != nil {
		return err
	}
	g.MoveToLevel(g.Player, first, t)
	for _, name := range StartingItems {
		it, err := g.Items.CreateItem(name)
		if err != nil {
			return fmt.Errorf("starting inventory: %w", err)
		}
		g.Player.AddItem(it)
	}
	g.State = Playing
	g.Log.Messagef(ChannelGame, "You are %s, a young and fearless adventurer. It is time to begin "+
		"your legendary and without doubt heroic expedition into the unknown. Good luck!", g.Player.Name)
	return nil
}

// linkLevels places a down portal in upper and an up portal in lower, and
// connects them.
func (g *Game) linkLevels(upper, lower *Level) error {
	down := g.NewPortal(PortalDown, "stairs leading down into darkness",
		"You follow the stairs down, looking for more adventure.")
	t, err := upper.RandomEmptyTile()
	if err != nil {
		return err
	}
	g.MoveToLevel(down, upper, t)
	up := g.NewPortal(PortalUp, "stairs leading up",
		"You follow the stairs up, hoping to find the exit.")
	t, err = lower.RandomEmptyTile()
	if err != nil {
		return err
	}
	g.MoveToLevel(up, lower, t)
	down.ConnectTo(up)
	return nil
}

// Command sets the player's command for the next turn.
func (g *Game) Command(cmd Command) {
	g.Player.pending = cmd
}

// PlayTurn plays one complete turn on the current level: every active
// character of the roster acts once, in roster order. Characters that die or
// leave the level during the pass are skipped. When the player changes level
// the pass stops. Errors in a character's turn make that turn a no-op.
func (g *Game) PlayTurn() {
	if g.State != Playing {
		return
	}
	g.Log.NewTurn()
	lvl := g.Current
	for _, c := range lvl.Characters() {
		if c.Stats().State != Active || c.Base().Level() != lvl {
			continue
		}
		if err := c.TakeTurn(g); err != nil {
			g.turnError(c, err)
		}
		if g.State != Playing || g.Current != lvl {
			break
		}
	}
	g.Turn++
}

// turnError reports an error in a character's turn.
func (g *Game) turnError(c Character, err error) {
	e := c.Base()
	g.logger.Warn("turn error",
		zap.Int32("id", int32(e.ID)),
		zap.String("name", e.Name),
		zap.Int("turn", g.Turn),
		zap.Error(err))
	if e.Kind == KindPlayer {
		g.Log.Message(ChannelError, err.Error())
	}
}

// Step issues a player command and plays the turn.
func (g *Game) Step(cmd Command) {
	g.Command(cmd)
	g.PlayTurn()
}

// LevelByID returns the level with the given ID, or nil.
func (g *Game) LevelByID(id int) *Level {
	for _, l := range g.Levels {
		if l.ID == id {
			return l
		}
	}
	return nil
}
