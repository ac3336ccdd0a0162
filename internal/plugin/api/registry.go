package api

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helixpdk/editor"
	"github.com/dshills/helixpdk/internal/plugin/security"
)

// APIVersion is reported to scripts as hx.api_version.
const APIVersion = 1

// Module represents a Lua API module that can be registered with the plugin system.
type Module interface {
	// Name returns the module name (e.g., "sel", "doc").
	Name() string

	// RequiredCapability returns the capability required to use this module.
	// Returns empty string if no capability is required.
	RequiredCapability() security.Capability

	// Register registers the module functions into the Lua state
	// under the _hx_<name> global.
	Register(L *lua.LState) error
}

// Context provides access to the editor for API modules.
type Context struct {
	Editor *editor.Editor
	Log    *logrus.Entry
}

// Registry manages API modules and their registration.
type Registry struct {
	modules map[string]Module
}

// NewRegistry creates a new API registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// DefaultRegistry creates a registry with all standard modules registered.
func DefaultRegistry(ctx *Context) (*Registry, error) {
	r := NewRegistry()

	modules := []Module{
		NewSelectionModule(ctx),
		NewDocumentModule(ctx),
		NewViewModule(ctx),
		NewCommandModule(ctx),
		NewUIModule(ctx),
	}
	for _, mod := range modules {
		if err := r.Register(mod); err != nil {
			return nil, fmt.Errorf("failed to register module %q: %w", mod.Name(), err)
		}
	}
	return r, nil
}

// Register adds a module to the registry.
func (r *Registry) Register(mod Module) error {
	if _, exists := r.modules[mod.Name()]; exists {
		return fmt.Errorf("module %q already registered", mod.Name())
	}
	r.modules[mod.Name()] = mod
	return nil
}

// Get returns a module by name.
func (r *Registry) Get(name string) (Module, bool) {
	mod, ok := r.modules[name]
	return mod, ok
}

// List returns all registered module names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InjectAll registers every module the checker allows and makes the hx
// module available to require. Modules that are not allowed are replaced
// with a table that raises a capability error when indexed. A nil checker
// allows only modules that need no capability.
func (r *Registry) InjectAll(L *lua.LState, checker *security.PermissionChecker) error {
	hx := L.NewTable()

	for _, name := range r.List() {
		mod := r.modules[name]
		reqCap := mod.RequiredCapability()
		if reqCap != "" && (checker == nil || !checker.HasCapability(reqCap)) {
			L.SetField(hx, name, deniedModule(L, name, reqCap))
			continue
		}

		if err := mod.Register(L); err != nil {
			return fmt.Errorf("failed to register module %q: %w", name, err)
		}
		global := "_hx_" + name
		L.SetField(hx, name, L.GetGlobal(global))
		L.SetGlobal(global, lua.LNil)
	}

	L.SetField(hx, "api_version", lua.LNumber(APIVersion))

	L.PreloadModule("hx", func(L *lua.LState) int {
		L.Push(hx)
		return 1
	})
	return nil
}

// deniedModule returns a table whose every field access fails.
func deniedModule(L *lua.LState, name string, c security.Capability) *lua.LTable {
	stub := L.NewTable()
	mt := L.NewTable()
	L.SetField(mt, "__index", L.NewFunction(func(L *lua.LState) int {
		field := L.CheckString(2)
		err := security.NewCapabilityError(c, "hx."+name+"."+field, "not granted")
		L.RaiseError("%s", err.Error())
		return 0
	}))
	L.SetMetatable(stub, mt)
	return stub
}
