// Package api exposes the editor to plugin scripts as the hx Lua module.
//
// Scripts load it with
//
//	local hx = require("hx")
//
// and reach the editor through its sub-tables:
//
//	hx.sel   selections of the focused view     (editor.selection)
//	hx.doc   the focused document               (editor.document)
//	hx.view  focus and splits                   (editor.view)
//	hx.cmd   command lines                      (editor.command)
//	hx.ui    the status line                    (editor.ui)
//
// Each sub-table requires the capability in parentheses. Indexing a
// sub-table whose capability was not granted raises a capability error.
//
// Selections are passed to and from Lua as {view = <id>, index = <n>}
// tables. They are positional handles: editing the selection list of a
// view can make an earlier handle refer to a different selection.
package api
