// Package memory moves variable-length data across the guest/host boundary.
//
// A transfer buffer is a region of host memory addressed by an opaque
// offset. The guest either allocates one and fills it for the host to read
// (Alloc, AllocString) or receives an offset from a host call and wraps it
// (Find). Either way the resulting *Buffer owns exactly one host
// allocation and must be released exactly once:
//
//	buf, err := memory.AllocString(a, "hello")
//	if err != nil {
//		return err
//	}
//	h.SetStatus(buf.Offset())
//	return buf.Release()
//
// Offset 0 is reserved for "no buffer" and is never dereferenced.
//
// Go cannot reject a second Release at compile time, so a released Buffer
// fails every later operation with ErrReleased without reaching the host.
package memory
