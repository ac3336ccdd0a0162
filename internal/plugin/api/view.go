package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helixpdk/editor"
	"github.com/dshills/helixpdk/internal/plugin/security"
)

// ViewModule implements the hx.view API module.
type ViewModule struct {
	ctx *Context
}

// NewViewModule creates a new view module.
func NewViewModule(ctx *Context) *ViewModule {
	return &ViewModule{ctx: ctx}
}

// Name returns the module name.
func (m *ViewModule) Name() string {
	return "view"
}

// RequiredCapability returns the capability required for this module.
func (m *ViewModule) RequiredCapability() security.Capability {
	return security.CapabilityView
}

// Register registers the module into the Lua state.
func (m *ViewModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "id", L.NewFunction(m.id))
	L.SetField(mod, "focus", L.NewFunction(m.focus))
	L.SetField(mod, "next", L.NewFunction(m.next))
	L.SetField(mod, "prev", L.NewFunction(m.prev))
	L.SetField(mod, "vsplit", L.NewFunction(m.vsplit))
	L.SetField(mod, "hsplit", L.NewFunction(m.hsplit))
	L.SetField(mod, "with", L.NewFunction(m.with))

	L.SetGlobal("_hx_view", mod)
	return nil
}

// id() -> number
func (m *ViewModule) id(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Editor.View()))
	return 1
}

// focus(id)
func (m *ViewModule) focus(L *lua.LState) int {
	m.ctx.Editor.Focus(editor.View(checkUint(L, 1)))
	return 0
}

// next()
func (m *ViewModule) next(L *lua.LState) int {
	m.ctx.Editor.FocusNext()
	return 0
}

// prev()
func (m *ViewModule) prev(L *lua.LState) int {
	m.ctx.Editor.FocusPrev()
	return 0
}

// vsplit() -> number
// Returns the id of the new, focused view.
func (m *ViewModule) vsplit(L *lua.LState) int {
	m.ctx.Editor.VSplit()
	L.Push(lua.LNumber(m.ctx.Editor.View()))
	return 1
}

// hsplit() -> number
func (m *ViewModule) hsplit(L *lua.LState) int {
	m.ctx.Editor.HSplit()
	L.Push(lua.LNumber(m.ctx.Editor.View()))
	return 1
}

// with(id, fn) -> ...
// Calls fn with id focused and restores the previous focus afterwards,
// also when fn raises an error.
func (m *ViewModule) with(L *lua.LState) int {
	target := editor.View(checkUint(L, 1))
	fn := L.CheckFunction(2)

	top := L.GetTop()
	err := m.ctx.Editor.WithFocus(target, func() error {
		return L.CallByParam(lua.P{Fn: fn, NRet: lua.MultRet, Protect: true})
	})
	if err != nil {
		return raise(L, "with", err)
	}
	return L.GetTop() - top
}
