// Package templates loads monster and item templates written in Lua into Go
// structs. The Lua VM is discarded after loading.
//
// Template files use curried constructors:
//
//	Monster "rat" { name = "giant rat", glyph = "r", hp = "2d4", hit_die = "1d3" }
//	Item "regular_heal" { name = "healing potion", glyph = "!", use = Heal "2d6" }
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"codeberg.org/crunchbang/crunchbang/dice"
	lua "github.com/yuin/gopher-lua"
)

//go:embed data/*.lua
var defaultFS embed.FS

// Monster is a compiled monster template.
type Monster struct {
	ID       string    // template name
	Name     string    // display name
	Glyph    rune      // display rune
	Color    string    // palette color name
	HP       dice.Dice // rolled maximum hit points
	HitDie   dice.Dice // attack damage die
	Defense  int       // base defense
	XP       int       // experience granted to the killer
	MinDepth int       // shallowest eligible depth
	MaxDepth int       // deepest eligible depth
	Weight   int       // relative frequency
}

// Eligible reports whether the template can appear at the given depth.
func (m Monster) Eligible(depth int) bool {
	return m.Weight > 0 && depth >= m.MinDepth && depth <= m.MaxDepth
}

// Effect is a compiled item use effect.
type Effect struct {
	Kind string    // "heal" or "nova"
	Die  dice.Dice // magnitude die
}

// Item is a compiled item template.
type Item struct {
	ID       string  // template name
	Name     string  // display name
	Glyph    rune    // display rune
	Color    string  // palette color name
	Use      *Effect // use effect, nil if none
	Defense  int     // defense bonus when worn
	Equip    bool    // whether it can be worn
	MinDepth int     // shallowest eligible depth
	MaxDepth int     // deepest eligible depth
	Weight   int     // relative frequency (0: never generated randomly)
}

// Eligible reports whether the template can be generated at the given depth.
func (it Item) Eligible(depth int) bool {
	return it.Weight > 0 && depth >= it.MinDepth && depth <= it.MaxDepth
}

// Set holds every loaded template.
type Set struct {
	Monsters map[string]Monster
	Items    map[string]Item
}

// MonsterIDs returns the monster template names in sorted order.
func (s *Set) MonsterIDs() []string {
	return sortedKeys(s.Monsters)
}

// ItemIDs returns the item template names in sorted order.
func (s *Set) ItemIDs() []string {
	return sortedKeys(s.Items)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Default returns the templates embedded in the program.
func Default() (*Set, error) {
	sub, err := fs.Sub(defaultFS, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// Load reads all .lua files from dir.
func Load(dir string) (*Set, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads all .lua files at the root of fsys in alphabetical order,
// compiles them and validates the result.
func LoadFS(fsys fs.FS) (*Set, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading template directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .lua template files found")
	}
	sort.Strings(files)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)
	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range files {
		src, err := fs.ReadFile(fsys, path.Clean(f))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		if err := L.DoString(string(src)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}
	return compile(coll)
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "collectgarbage"} {
		L.SetGlobal(name, lua.LNil)
	}
	// Templates must not depend on Lua's own randomness.
	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("random", lua.LNil)
		tbl.RawSetString("randomseed", lua.LNil)
	}
}
