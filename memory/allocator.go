package memory

// Allocator is the host memory kernel a Buffer is carved from.
type Allocator interface {
	// Alloc reserves n bytes and returns their offset, or 0 on failure.
	Alloc(n uint64) uint64
	// Free releases the allocation at offset.
	Free(offset uint64)
	// Length returns the size of the allocation at offset.
	Length(offset uint64) uint64
	// Load copies len(dst) bytes starting at offset into dst.
	Load(offset uint64, dst []byte)
	// Store copies src into host memory starting at offset.
	Store(offset uint64, src []byte)
}
