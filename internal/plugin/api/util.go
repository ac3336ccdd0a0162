package api

import (
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helixpdk/editor"
)

// selectionToLua converts a selection handle into a {view, index} table.
func selectionToLua(L *lua.LState, s editor.Selection) *lua.LTable {
	t := L.CreateTable(0, 2)
	t.RawSetString("view", lua.LNumber(s.View))
	t.RawSetString("index", lua.LNumber(s.Index))
	return t
}

// checkSelection reads a {view, index} table argument.
func checkSelection(L *lua.LState, n int) editor.Selection {
	t := L.CheckTable(n)
	view, okView := toUint(t.RawGetString("view"))
	index, okIndex := toUint(t.RawGetString("index"))
	if !okView || !okIndex {
		L.ArgError(n, "selection must have non-negative integer view and index")
	}
	return editor.Selection{View: editor.View(view), Index: index}
}

// checkUint reads a non-negative integer argument.
func checkUint(L *lua.LState, n int) uint64 {
	v, ok := toUint(L.Get(n))
	if !ok {
		L.ArgError(n, "non-negative integer expected")
	}
	return v
}

func toUint(lv lua.LValue) (uint64, bool) {
	n, ok := lv.(lua.LNumber)
	if !ok {
		return 0, false
	}
	f := float64(n)
	if f < 0 || f != math.Trunc(f) || f >= 1<<64 {
		return 0, false
	}
	return uint64(f), true
}

// checkArgs collects the string arguments from position first onward.
func checkArgs(L *lua.LState, first int) []string {
	top := L.GetTop()
	if top < first {
		return nil
	}
	args := make([]string, 0, top-first+1)
	for i := first; i <= top; i++ {
		args = append(args, L.CheckString(i))
	}
	return args
}

// raise converts an editor error into a Lua error.
func raise(L *lua.LState, op string, err error) int {
	L.RaiseError("%s: %v", op, err)
	return 0
}
