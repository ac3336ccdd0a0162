package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helixpdk/internal/plugin/security"
)

// DocumentModule implements the hx.doc API module.
type DocumentModule struct {
	ctx *Context
}

// NewDocumentModule creates a new document module.
func NewDocumentModule(ctx *Context) *DocumentModule {
	return &DocumentModule{ctx: ctx}
}

// Name returns the module name.
func (m *DocumentModule) Name() string {
	return "doc"
}

// RequiredCapability returns the capability required for this module.
func (m *DocumentModule) RequiredCapability() security.Capability {
	return security.CapabilityDocument
}

// Register registers the module into the Lua state.
func (m *DocumentModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "path", L.NewFunction(m.path))
	L.SetField(mod, "set_path", L.NewFunction(m.setPath))
	L.SetField(mod, "open", L.NewFunction(m.open))
	L.SetField(mod, "save", L.NewFunction(m.save))
	L.SetField(mod, "close", L.NewFunction(m.close))
	L.SetField(mod, "undo", L.NewFunction(m.undo))
	L.SetField(mod, "redo", L.NewFunction(m.redo))
	L.SetField(mod, "language", L.NewFunction(m.language))
	L.SetField(mod, "len_lines", L.NewFunction(m.lenLines))
	L.SetField(mod, "len_chars", L.NewFunction(m.lenChars))
	L.SetField(mod, "len_bytes", L.NewFunction(m.lenBytes))
	L.SetField(mod, "text", L.NewFunction(m.text))

	L.SetGlobal("_hx_doc", mod)
	return nil
}

// path() -> string|nil
// Returns nil when the document has no path.
func (m *DocumentModule) path(L *lua.LState) int {
	p, ok, err := m.ctx.Editor.Path()
	if err != nil {
		return raise(L, "path", err)
	}
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(p))
	return 1
}

// set_path(path)
func (m *DocumentModule) setPath(L *lua.LState) int {
	if err := m.ctx.Editor.SetPath(L.CheckString(1)); err != nil {
		return raise(L, "set_path", err)
	}
	return 0
}

// open(path)
func (m *DocumentModule) open(L *lua.LState) int {
	if err := m.ctx.Editor.Open(L.CheckString(1)); err != nil {
		return raise(L, "open", err)
	}
	return 0
}

// save([path])
// Without a path the document is written to its current path.
func (m *DocumentModule) save(L *lua.LState) int {
	if L.GetTop() == 0 || L.Get(1) == lua.LNil {
		m.ctx.Editor.Save()
		return 0
	}
	if err := m.ctx.Editor.SaveAs(L.CheckString(1)); err != nil {
		return raise(L, "save", err)
	}
	return 0
}

// close()
func (m *DocumentModule) close(L *lua.LState) int {
	m.ctx.Editor.Close()
	return 0
}

// undo()
func (m *DocumentModule) undo(L *lua.LState) int {
	m.ctx.Editor.Undo()
	return 0
}

// redo()
func (m *DocumentModule) redo(L *lua.LState) int {
	m.ctx.Editor.Redo()
	return 0
}

// language() -> string
func (m *DocumentModule) language(L *lua.LState) int {
	lang, err := m.ctx.Editor.LanguageName()
	if err != nil {
		return raise(L, "language", err)
	}
	L.Push(lua.LString(lang))
	return 1
}

// len_lines() -> number
func (m *DocumentModule) lenLines(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Editor.LenLines()))
	return 1
}

// len_chars() -> number
func (m *DocumentModule) lenChars(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Editor.LenChars()))
	return 1
}

// len_bytes() -> number
func (m *DocumentModule) lenBytes(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Editor.LenBytes()))
	return 1
}

// text([from, to]) -> string
// Character range, defaulting to the whole document.
func (m *DocumentModule) text(L *lua.LState) int {
	from := uint64(0)
	to := m.ctx.Editor.LenChars()
	if L.GetTop() >= 1 {
		from = checkUint(L, 1)
	}
	if L.GetTop() >= 2 {
		to = checkUint(L, 2)
	}
	s, err := m.ctx.Editor.Text(from, to)
	if err != nil {
		return raise(L, "text", err)
	}
	L.Push(lua.LString(s))
	return 1
}
