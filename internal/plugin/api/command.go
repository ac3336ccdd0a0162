package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helixpdk/editor"
	"github.com/dshills/helixpdk/internal/plugin/security"
)

// CommandModule implements the hx.cmd API module.
type CommandModule struct {
	ctx *Context
}

// NewCommandModule creates a new command module.
func NewCommandModule(ctx *Context) *CommandModule {
	return &CommandModule{ctx: ctx}
}

// Name returns the module name.
func (m *CommandModule) Name() string {
	return "cmd"
}

// RequiredCapability returns the capability required for this module.
func (m *CommandModule) RequiredCapability() security.Capability {
	return security.CapabilityCommand
}

// Register registers the module into the Lua state.
func (m *CommandModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "execute", L.NewFunction(m.execute))
	L.SetField(mod, "run", L.NewFunction(m.run))
	L.SetField(mod, "typed", L.NewFunction(m.typed))
	L.SetField(mod, "select_all", L.NewFunction(m.selectAll))

	L.SetGlobal("_hx_cmd", mod)
	return nil
}

// execute(line)
// Passes line to the host unchanged.
func (m *CommandModule) execute(L *lua.LState) int {
	if err := m.ctx.Editor.Execute(L.CheckString(1)); err != nil {
		return raise(L, "execute", err)
	}
	return 0
}

// run(name, ...) -> string
// Executes a static command with quoted arguments and returns the line sent.
func (m *CommandModule) run(L *lua.LState) int {
	return m.build(L, editor.NewCommand(L.CheckString(1)))
}

// typed(name, ...) -> string
// Like run, for a typed (":") command.
func (m *CommandModule) typed(L *lua.LState) int {
	return m.build(L, editor.NewTypedCommand(L.CheckString(1)))
}

func (m *CommandModule) build(L *lua.LState, cmd *editor.Command) int {
	cmd.Args(checkArgs(L, 2)...)
	if err := cmd.Execute(m.ctx.Editor); err != nil {
		return raise(L, cmd.Name(), err)
	}
	L.Push(lua.LString(cmd.String()))
	return 1
}

// select_all()
func (m *CommandModule) selectAll(L *lua.LState) int {
	if err := m.ctx.Editor.SelectAll(); err != nil {
		return raise(L, "select_all", err)
	}
	return 0
}
