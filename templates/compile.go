package templates

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"codeberg.org/crunchbang/crunchbang/dice"
	lua "github.com/yuin/gopher-lua"
)

// Depth bounds used when a template has no depth field.
const (
	defaultMinDepth = 1
	defaultMaxDepth = 99
)

// ValidationError collects all the problems found in template files.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("template validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) addf(format string, a ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, a...))
}

// getString returns a string field from a Lua table, or def if missing.
func getString(tbl *lua.LTable, key, def string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return def
}

// getInt returns an integer field from a Lua table, or def if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getBool returns a bool field from a Lua table, or def if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getDepth returns the {min, max} depth range of a template.
func getDepth(tbl *lua.LTable) (int, int) {
	switch v := tbl.RawGetString("depth").(type) {
	case lua.LNumber:
		return int(v), int(v)
	case *lua.LTable:
		lo, hi := defaultMinDepth, defaultMaxDepth
		if n, ok := v.RawGetInt(1).(lua.LNumber); ok {
			lo = int(n)
		}
		if n, ok := v.RawGetInt(2).(lua.LNumber); ok {
			hi = int(n)
		}
		return lo, hi
	default:
		return defaultMinDepth, defaultMaxDepth
	}
}

func parseDice(ve *ValidationError, what, id, field, expr string) dice.Dice {
	d, err := dice.Parse(expr)
	if err != nil {
		ve.addf("%s %q: field %s: %v", what, id, field, err)
	}
	return d
}

func parseGlyph(ve *ValidationError, what, id string, tbl *lua.LTable) rune {
	s := getString(tbl, "glyph", "")
	if utf8.RuneCountInString(s) != 1 {
		ve.addf("%s %q: glyph must be a single character, got %q", what, id, s)
		return '?'
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// compile turns the collected Lua tables into a template set.
func compile(coll *collector) (*Set, error) {
	ve := &ValidationError{}
	set := &Set{Monsters: map[string]Monster{}, Items: map[string]Item{}}
	for _, raw := range coll.monsters {
		if _, ok := set.Monsters[raw.id]; ok {
			ve.addf("monster %q defined twice", raw.id)
			continue
		}
		set.Monsters[raw.id] = compileMonster(ve, raw)
	}
	for _, raw := range coll.items {
		if _, ok := set.Items[raw.id]; ok {
			ve.addf("item %q defined twice", raw.id)
			continue
		}
		set.Items[raw.id] = compileItem(ve, raw)
	}
	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return set, nil
}

func compileMonster(ve *ValidationError, raw rawDef) Monster {
	tbl := raw.table
	m := Monster{
		ID:      raw.id,
		Name:    getString(tbl, "name", raw.id),
		Glyph:   parseGlyph(ve, "monster", raw.id, tbl),
		Color:   getString(tbl, "color", "default"),
		Defense: getInt(tbl, "defense", 0),
		XP:      getInt(tbl, "xp", 0),
		Weight:  getInt(tbl, "weight", 1),
	}
	hp := getString(tbl, "hp", "")
	if hp == "" {
		ve.addf("monster %q: hp is required", raw.id)
	} else {
		m.HP = parseDice(ve, "monster", raw.id, "hp", hp)
		if m.HP.Min() <= 0 {
			ve.addf("monster %q: hp %s can roll a non positive value", raw.id, hp)
		}
	}
	m.HitDie = parseDice(ve, "monster", raw.id, "hit_die", getString(tbl, "hit_die", "1d4"))
	m.MinDepth, m.MaxDepth = getDepth(tbl)
	if m.MinDepth > m.MaxDepth {
		ve.addf("monster %q: empty depth range [%d,%d]", raw.id, m.MinDepth, m.MaxDepth)
	}
	if m.Weight < 0 {
		ve.addf("monster %q: negative weight", raw.id)
	}
	return m
}

func compileItem(ve *ValidationError, raw rawDef) Item {
	tbl := raw.table
	it := Item{
		ID:      raw.id,
		Name:    getString(tbl, "name", raw.id),
		Glyph:   parseGlyph(ve, "item", raw.id, tbl),
		Color:   getString(tbl, "color", "default"),
		Defense: getInt(tbl, "defense", 0),
		Weight:  getInt(tbl, "weight", 1),
	}
	it.Equip = getBool(tbl, "equip", it.Defense > 0)
	if use, ok := tbl.RawGetString("use").(*lua.LTable); ok {
		eff := &Effect{Kind: getString(use, "type", "")}
		switch eff.Kind {
		case "heal", "nova":
		default:
			ve.addf("item %q: unknown effect type %q", raw.id, eff.Kind)
		}
		if die := getString(use, "die", ""); die != "" {
			eff.Die = parseDice(ve, "item", raw.id, "use", die)
		}
		it.Use = eff
	}
	if it.Use != nil && it.Equip {
		ve.addf("item %q: cannot both have a use effect and be worn", raw.id)
	}
	it.MinDepth, it.MaxDepth = getDepth(tbl)
	if it.MinDepth > it.MaxDepth {
		ve.addf("item %q: empty depth range [%d,%d]", raw.id, it.MinDepth, it.MaxDepth)
	}
	if it.Weight < 0 {
		ve.addf("item %q: negative weight", raw.id)
	}
	return it
}
