// Package samples implements the functions the plugin exports: two
// selection helpers, a document summary and a Lua script runner. Each one
// is an ordinary client of package editor.
package samples
