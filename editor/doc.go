// Package editor is the plugin-facing API over the Helix host.
//
// The Editor facade exposes every host entry point as a typed method. It
// holds no editor state of its own: views and selections are coordinates
// the host resolves on every call, and text crosses the boundary through
// transfer buffers (package memory) that the facade allocates and releases
// around each call.
//
// # Focus
//
// Several host primitives only act on the focused view. Methods that read a
// Selection of another view wrap those primitives in a FocusGuard, which
// focuses the selection's view and restores the previous focus on every exit
// path, including errors and host traps:
//
//	g := e.AcquireFocus(sel.View)
//	defer g.Release()
//
// WithFocus packages the same pattern around a callback.
//
// # Stale selections
//
// A Selection is an index into the host's live selection list of a view,
// not a reference to a region. Nothing is cached and nothing is validated:
// after a call that changes the selection list, an old Selection may denote
// a different range, or none at all. Re-enumerate with Selections after
// mutating calls when that matters.
//
// # Commands
//
// Operations without a dedicated entry point go through the generic
// command-line channel. Command builds such lines:
//
//	err := editor.NewTypedCommand("w").Arg("foo.txt").Execute(e) // :w "foo.txt"
//
// Arguments are wrapped in double quotes without escaping.
package editor
