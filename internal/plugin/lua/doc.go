// Package lua runs plugin scripts in a sandboxed gopher-lua state.
//
// A State opens only the base, package, table, string and math libraries,
// removes the functions that load code from disk or strings, and restricts
// require to the standard modules and those preloaded by the host API
// (see package api). print is redirected to the plugin logger.
//
// Values cross the Go/Lua boundary through ToGo and ToLua, which convert
// between Lua values and the plain Go shapes produced by JSON decoders.
package lua
