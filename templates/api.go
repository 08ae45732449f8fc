package templates

import (
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	monsters []rawDef
	items    []rawDef
}

// rawDef holds a template table before compilation.
type rawDef struct {
	id    string
	table *lua.LTable
}

// registerAPI registers the template constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Monster "id" { ... }: Monster("id") returns a function taking the
	// table.
	L.SetGlobal("Monster", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.monsters = append(coll.monsters, rawDef{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Item "id" { ... }
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.items = append(coll.items, rawDef{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Heal "2d6" and Nova "2d4" build use effects.
	for name, kind := range map[string]string{"Heal": "heal", "Nova": "nova"} {
		L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
			die := L.OptString(1, "")
			tbl := L.NewTable()
			tbl.RawSetString("type", lua.LString(kind))
			tbl.RawSetString("die", lua.LString(die))
			L.Push(tbl)
			return 1
		}))
	}
}
