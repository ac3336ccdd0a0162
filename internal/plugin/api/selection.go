package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helixpdk/editor"
	"github.com/dshills/helixpdk/internal/plugin/security"
)

// SelectionModule implements the hx.sel API module.
type SelectionModule struct {
	ctx *Context
}

// NewSelectionModule creates a new selection module.
func NewSelectionModule(ctx *Context) *SelectionModule {
	return &SelectionModule{ctx: ctx}
}

// Name returns the module name.
func (m *SelectionModule) Name() string {
	return "sel"
}

// RequiredCapability returns the capability required for this module.
func (m *SelectionModule) RequiredCapability() security.Capability {
	return security.CapabilitySelection
}

// Register registers the module into the Lua state.
func (m *SelectionModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "count", L.NewFunction(m.count))
	L.SetField(mod, "list", L.NewFunction(m.list))
	L.SetField(mod, "add", L.NewFunction(m.add))
	L.SetField(mod, "from", L.NewFunction(m.from))
	L.SetField(mod, "to", L.NewFunction(m.to))
	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "reset", L.NewFunction(m.reset))
	L.SetField(mod, "insert_before", L.NewFunction(m.insertBefore))
	L.SetField(mod, "insert_after", L.NewFunction(m.insertAfter))
	L.SetField(mod, "replace", L.NewFunction(m.replace))

	L.SetGlobal("_hx_sel", mod)
	return nil
}

// count() -> number
func (m *SelectionModule) count(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Editor.SelectionCount()))
	return 1
}

// list() -> {selection...}
// Returns handles for the focused view's selections at the time of the call.
func (m *SelectionModule) list(L *lua.LState) int {
	t := L.NewTable()
	for sel := range m.ctx.Editor.Selections() {
		t.Append(selectionToLua(L, sel))
	}
	L.Push(t)
	return 1
}

// add(start, end) -> selection
func (m *SelectionModule) add(L *lua.LState) int {
	start := checkUint(L, 1)
	end := checkUint(L, 2)
	L.Push(selectionToLua(L, m.ctx.Editor.AddSelection(start, end)))
	return 1
}

// from(selection) -> number
func (m *SelectionModule) from(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Editor.SelectionFrom(checkSelection(L, 1))))
	return 1
}

// to(selection) -> number
func (m *SelectionModule) to(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Editor.SelectionTo(checkSelection(L, 1))))
	return 1
}

// text(selection) -> string
func (m *SelectionModule) text(L *lua.LState) int {
	s, err := m.ctx.Editor.SelectionText(checkSelection(L, 1))
	if err != nil {
		return raise(L, "text", err)
	}
	L.Push(lua.LString(s))
	return 1
}

// reset()
func (m *SelectionModule) reset(L *lua.LState) int {
	m.ctx.Editor.ClearSelection()
	return 0
}

// insert_before(text)
func (m *SelectionModule) insertBefore(L *lua.LState) int {
	return m.insert(L, editor.InsertBefore)
}

// insert_after(text)
func (m *SelectionModule) insertAfter(L *lua.LState) int {
	return m.insert(L, editor.InsertAfter)
}

func (m *SelectionModule) insert(L *lua.LState, where editor.Insert) int {
	if err := m.ctx.Editor.InsertText(L.CheckString(1), where); err != nil {
		return raise(L, "insert_"+where.String(), err)
	}
	return 0
}

// replace(text)
func (m *SelectionModule) replace(L *lua.LState) int {
	if err := m.ctx.Editor.ReplaceText(L.CheckString(1)); err != nil {
		return raise(L, "replace", err)
	}
	return 0
}
