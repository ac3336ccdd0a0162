package lua

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helixpdk/internal/plugin/security"
)

// State wraps a gopher-lua state configured for plugin scripts.
//
// gopher-lua's LState is not goroutine-safe. Plugin invocations are
// single-threaded, so State carries no lock.
type State struct {
	L *lua.LState

	limits  security.Limits
	log     *logrus.Entry
	sandbox *Sandbox
	closed  bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithLimits sets the resource limits for the state.
func WithLimits(l security.Limits) StateOption {
	return func(s *State) {
		s.limits = l
	}
}

// WithLogger sets the logger that receives print output.
func WithLogger(log *logrus.Entry) StateOption {
	return func(s *State) {
		if log != nil {
			s.log = log
		}
	}
}

// NewState creates a new sandboxed Lua state.
func NewState(opts ...StateOption) *State {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := &State{
		limits: security.DefaultLimits(),
		log:    logrus.NewEntry(quiet),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.L = lua.NewState(lua.Options{
		SkipOpenLibs:    true,
		CallStackSize:   s.limits.CallStackSize,
		RegistrySize:    s.limits.RegistrySize,
		RegistryMaxSize: s.limits.RegistryMaxSize,
	})
	openSafeLibraries(s.L)

	s.sandbox = NewSandbox(s.L, s.log)
	s.sandbox.Install()

	return s
}

// openSafeLibraries opens only the libraries scripts may use. io, os and
// debug stay closed.
func openSafeLibraries(L *lua.LState) {
	libs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// Preload makes a module available to require.
func (s *State) Preload(name string, loader lua.LGFunction) error {
	if s.closed {
		return ErrStateClosed
	}
	s.L.PreloadModule(name, loader)
	return nil
}

// DoString executes a chunk and discards its results.
func (s *State) DoString(code string) error {
	_, err := s.Run("chunk", code)
	return err
}

// Run compiles and executes code as a chunk named name, passing args as
// the chunk's varargs, and returns the values it returned.
func (s *State) Run(name, code string, args ...lua.LValue) ([]lua.LValue, error) {
	if s.closed {
		return nil, ErrStateClosed
	}
	if limit := s.limits.MaxSourceBytes; limit > 0 && len(code) > limit {
		return nil, &ScriptError{
			Name: name,
			Err:  fmt.Errorf("%w: %d bytes, limit %d", ErrSourceTooLarge, len(code), limit),
		}
	}

	fn, err := s.L.LoadString(code)
	if err != nil {
		return nil, &ScriptError{Name: name, Err: err}
	}

	top := s.L.GetTop()
	s.L.Push(fn)
	for _, arg := range args {
		s.L.Push(arg)
	}

	if err := s.callWithRecovery(len(args)); err != nil {
		s.L.SetTop(top)
		return nil, &ScriptError{Name: name, Err: err}
	}

	n := s.L.GetTop() - top
	results := make([]lua.LValue, n)
	for i := range n {
		results[i] = s.L.Get(top + i + 1)
	}
	s.L.SetTop(top)

	s.log.WithFields(logrus.Fields{"script": name, "results": n}).Debug("script finished")
	return results, nil
}

// callWithRecovery runs the function on the stack in protected mode. Go
// panics raised below PCall surface as errors.
func (s *State) callWithRecovery(nargs int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return s.L.PCall(nargs, lua.MultRet, nil)
}

// GetGlobal returns a global variable value.
func (s *State) GetGlobal(name string) lua.LValue {
	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// SetGlobal sets a global variable.
func (s *State) SetGlobal(name string, value lua.LValue) {
	if s.closed {
		return
	}
	s.L.SetGlobal(name, value)
}

// LuaState returns the underlying gopher-lua state.
func (s *State) LuaState() *lua.LState {
	return s.L
}

// IsClosed returns true if the state has been closed.
func (s *State) IsClosed() bool {
	return s.closed
}

// Close releases the Lua state. Closing twice is a no-op.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.L.Close()
	s.closed = true
}
