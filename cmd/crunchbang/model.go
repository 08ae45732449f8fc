package main

import (
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
	"codeberg.org/crunchbang/crunchbang"
)

// Those constants represent available styling attributes.
const (
	AttrReverse gruid.AttrMask = 1 << iota
	AttrBold
)

const (
	logLines    = 2 // log lines above the map
	statusLines = 2 // status and inventory lines below the map
)

// model implements gruid.Model. It translates keys into game commands and
// draws the player's view of the current level.
type model struct {
	g        *crunchbang.Game
	gd       gruid.Grid
	keys     map[gruid.Key]crunchbang.Command
	saveFile string
	drop     bool                      // next digit drops instead of using
	effects  []crunchbang.EffectRecord // effects of the last turn
	err      error                     // save error that ended the session
}

func newModel(g *crunchbang.Game, saveFile string) *model {
	md := &model{
		g:        g,
		gd:       gruid.NewGrid(g.Config.MapWidth, g.Config.MapHeight+logLines+statusLines),
		saveFile: saveFile,
	}
	md.keys = map[gruid.Key]crunchbang.Command{
		gruid.KeyArrowLeft:  crunchbang.CmdMove{DX: -1},
		gruid.KeyArrowDown:  crunchbang.CmdMove{DY: 1},
		gruid.KeyArrowUp:    crunchbang.CmdMove{DY: -1},
		gruid.KeyArrowRight: crunchbang.CmdMove{DX: 1},
		"h":                 crunchbang.CmdMove{DX: -1},
		"j":                 crunchbang.CmdMove{DY: 1},
		"k":                 crunchbang.CmdMove{DY: -1},
		"l":                 crunchbang.CmdMove{DX: 1},
		"y":                 crunchbang.CmdMove{DX: -1, DY: -1},
		"u":                 crunchbang.CmdMove{DX: 1, DY: -1},
		"b":                 crunchbang.CmdMove{DX: -1, DY: 1},
		"n":                 crunchbang.CmdMove{DX: 1, DY: 1},
		".":                 crunchbang.CmdWait{},
		">":                 crunchbang.CmdPortal{Dir: crunchbang.PortalDown},
		"<":                 crunchbang.CmdPortal{Dir: crunchbang.PortalUp},
		"g":                 crunchbang.CmdPickUp{},
		",":                 crunchbang.CmdPickUp{},
	}
	return md
}

func (md *model) Update(msg gruid.Msg) gruid.Effect {
	switch msg := msg.(type) {
	case gruid.MsgKeyDown:
		return md.updateKeyDown(msg.Key)
	}
	return nil
}

func (md *model) updateKeyDown(key gruid.Key) gruid.Effect {
	g := md.g
	if g.State == crunchbang.Finished {
		return gruid.End()
	}
	switch key {
	case "Q", gruid.KeyEscape:
		if md.drop {
			md.drop = false
			return nil
		}
		return gruid.End()
	case "S":
		if err := g.SaveGame(md.saveFile); err != nil {
			md.err = err
		}
		return gruid.End()
	case "d":
		md.drop = true
		g.Log.Message(crunchbang.ChannelGame, "Drop which item? [1-9]")
		return nil
	}
	if i, ok := inventoryIndex(key); ok {
		var cmd crunchbang.Command = crunchbang.CmdUse{Index: i}
		if md.drop {
			cmd = crunchbang.CmdDrop{Index: i}
		}
		md.drop = false
		md.step(cmd)
		return nil
	}
	md.drop = false
	if cmd, ok := md.keys[key]; ok {
		md.step(cmd)
	}
	return nil
}

// inventoryIndex returns the inventory index selected by a digit key.
func inventoryIndex(key gruid.Key) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

func (md *model) step(cmd crunchbang.Command) {
	md.g.Step(cmd)
	md.effects = md.g.Log.DrainEffects()
}

func (md *model) Draw() gruid.Grid {
	md.gd.Fill(gruid.Cell{Rune: ' '})
	md.drawLog(md.gd.Slice(md.gd.Range().Lines(0, logLines)))
	mapRange := md.gd.Range().Shift(0, logLines, 0, -statusLines)
	md.drawMap(md.gd.Slice(mapRange))
	md.drawStatus(md.gd.Slice(md.gd.Range().Lines(mapRange.Max.Y, mapRange.Max.Y+statusLines)))
	return md.gd
}

func (md *model) drawLog(gd gruid.Grid) {
	for i, e := range md.g.Log.Last(logLines) {
		st := gruid.Style{}.WithFg(e.Channel.Color())
		ui.Text(e.String()).WithStyle(st).Draw(gd.Slice(gd.Range().Line(i)))
	}
}

func (md *model) drawMap(gd gruid.Grid) {
	m := md.g.Current.Map
	for tile := range m.All() {
		if !tile.Explored {
			continue
		}
		c := gruid.Cell{Rune: crunchbang.MapRune(m.Terrain.At(tile.P))}
		c.Style.Fg = crunchbang.ColorForegroundSecondary
		if tile.InView {
			c.Style.Fg = crunchbang.ColorForeground
		}
		if a := topActor(tile); a != nil {
			e := a.Base()
			c.Rune = e.Rune
			c.Style.Fg = e.Color
			if e.Kind == crunchbang.KindPlayer {
				c.Style.Attrs |= AttrBold
			}
		}
		gd.Set(tile.P, c)
	}
	for _, eff := range md.effects {
		for _, p := range eff.Points {
			if !m.InFOV(p) {
				continue
			}
			c := gd.At(p)
			c.Style.Bg = eff.Color
			gd.Set(p, c)
		}
	}
}

// topActor returns the actor drawn on a tile: the visible one with the
// highest layer. Out of view, only portals are remembered.
func topActor(tile *crunchbang.Tile) crunchbang.Actor {
	var top crunchbang.Actor
	for _, a := range tile.Actors() {
		e := a.Base()
		if !e.Visible || !tile.InView && e.Kind != crunchbang.KindPortal {
			continue
		}
		if top == nil || e.Kind.Layer() > top.Base().Kind.Layer() {
			top = a
		}
	}
	return top
}

func (md *model) drawStatus(gd gruid.Grid) {
	g := md.g
	pl := g.Player
	st := gruid.Style{}
	hpStyle := st.WithFg(crunchbang.ColorGreen)
	if pl.HP*3 <= pl.MaxHP {
		hpStyle = st.WithFg(crunchbang.ColorRed).WithAttrs(AttrBold)
	}
	line := gd.Range().Line(0)
	x := ui.Textf("%s ", pl.Name).WithStyle(st.WithFg(crunchbang.ColorForegroundEmph)).Draw(gd.Slice(line)).Size().X
	x += ui.Textf("HP %d/%d ", pl.HP, pl.MaxHP).WithStyle(hpStyle).Draw(gd.Slice(line.Shift(x, 0, 0, 0))).Size().X
	status := fmt.Sprintf("Def %d  XP %d/%d (L%d)  %s  Turn %d",
		pl.Defense(), pl.XP, pl.NextLevelXP, pl.XPLevel, g.Current.Name, g.Turn)
	if g.State == crunchbang.Finished {
		status += "  -- press any key --"
	}
	ui.Text(status).Draw(gd.Slice(line.Shift(x, 0, 0, 0)))

	var inv []string
	for i, it := range pl.Inventory {
		if i >= 9 {
			break
		}
		inv = append(inv, fmt.Sprintf("%d:%s", i+1, it.Desc()))
	}
	text := "Inventory empty"
	if len(inv) > 0 {
		text = strings.Join(inv, " ")
	}
	if md.drop {
		text = "Drop: " + text
	}
	ui.Text(text).WithStyle(st.WithFg(crunchbang.ColorForegroundSecondary)).Draw(gd.Slice(gd.Range().Line(1)))
}
