package lua

import (
	"strings"

	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"
)

// ModulePrefix is the namespace of host API modules.
const ModulePrefix = "hx"

// Sandbox restricts Lua execution to safe operations.
type Sandbox struct {
	L   *lua.LState
	log *logrus.Entry
}

// NewSandbox creates a new sandbox for the Lua state.
func NewSandbox(L *lua.LState, log *logrus.Entry) *Sandbox {
	return &Sandbox{L: L, log: log}
}

// Install applies the sandbox restrictions.
func (s *Sandbox) Install() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.installPrint()
	s.installRequire()
}

// installPrint sends print output to the plugin log.
func (s *Sandbox) installPrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		s.log.WithField("source", "lua").Info(strings.Join(parts, "\t"))
		return 0
	}))
}

// installRequire clears the filesystem search paths and replaces require
// with a version that only resolves standard and host API modules.
func (s *Sandbox) installRequire() {
	if pkg, ok := s.L.GetGlobal("package").(*lua.LTable); ok {
		s.L.SetField(pkg, "path", lua.LString(""))
		s.L.SetField(pkg, "cpath", lua.LString(""))
	}

	original := s.L.GetGlobal("require")
	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !allowedModule(name) {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(original)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))
}

func allowedModule(name string) bool {
	switch name {
	case lua.StringLibName, lua.TabLibName, lua.MathLibName, ModulePrefix:
		return true
	}
	return strings.HasPrefix(name, ModulePrefix+".")
}
