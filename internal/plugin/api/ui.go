package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helixpdk/internal/plugin/security"
)

// UIModule implements the hx.ui API module.
type UIModule struct {
	ctx *Context
}

// NewUIModule creates a new UI module.
func NewUIModule(ctx *Context) *UIModule {
	return &UIModule{ctx: ctx}
}

// Name returns the module name.
func (m *UIModule) Name() string {
	return "ui"
}

// RequiredCapability returns the capability required for this module.
func (m *UIModule) RequiredCapability() security.Capability {
	return security.CapabilityUI
}

// Register registers the module into the Lua state.
func (m *UIModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "status", L.NewFunction(m.status))
	L.SetField(mod, "clear_status", L.NewFunction(m.clearStatus))

	L.SetGlobal("_hx_ui", mod)
	return nil
}

// status(text)
func (m *UIModule) status(L *lua.LState) int {
	text := L.CheckString(1)
	if err := m.ctx.Editor.SetStatus(text); err != nil {
		return raise(L, "status", err)
	}
	if m.ctx.Log != nil {
		m.ctx.Log.WithField("status", text).Debug("status set by script")
	}
	return 0
}

// clear_status()
func (m *UIModule) clearStatus(L *lua.LState) int {
	m.ctx.Editor.ClearStatus()
	return 0
}
