// Package host declares the numeric entry points a Helix plugin host exposes
// to guest code.
//
// Every parameter and result is an unsigned integer. Text never crosses the
// boundary directly: a text argument is the offset of a transfer buffer (see
// package memory) and a text result is an offset the guest must locate, read
// and release. Offset 0 means "no buffer".
//
// The Host interface exists so the editor facade can run against the real
// wasm imports (Env, built for GOOS=wasip1) or against an in-process host in
// tests. Methods are thin: they perform no marshaling, validation or
// logging.
package host
