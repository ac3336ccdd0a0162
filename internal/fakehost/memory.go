package fakehost

// Alloc implements memory.Allocator.
func (h *Host) Alloc(n uint64) uint64 {
	if h.FailAlloc && n > 0 {
		return 0
	}
	off := h.nextOffset
	// Keep regions disjoint and 8-byte aligned, even for empty ones.
	h.nextOffset += (n+7)/8*8 + 8
	h.mem[off] = make([]byte, n)
	h.Allocs++
	return off
}

// Free implements memory.Allocator. Freeing an unknown or already freed
// offset is counted in DoubleFrees instead of panicking.
func (h *Host) Free(offset uint64) {
	if _, ok := h.mem[offset]; !ok {
		h.DoubleFrees++
		return
	}
	delete(h.mem, offset)
	h.Frees++
}

// Length implements memory.Allocator.
func (h *Host) Length(offset uint64) uint64 {
	return uint64(len(h.mem[offset]))
}

// Load implements memory.Allocator.
func (h *Host) Load(offset uint64, dst []byte) {
	copy(dst, h.mem[offset])
}

// Store implements memory.Allocator.
func (h *Host) Store(offset uint64, src []byte) {
	copy(h.mem[offset], src)
}

// Live returns the number of allocations not yet freed.
func (h *Host) Live() int {
	return len(h.mem)
}

// Bytes returns a copy of the allocation at offset, for assertions.
func (h *Host) Bytes(offset uint64) ([]byte, bool) {
	b, ok := h.mem[offset]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), b...), true
}

// hostAlloc allocates a region on behalf of the host for a call result.
func (h *Host) hostAlloc(data []byte) uint64 {
	off := h.Alloc(uint64(len(data)))
	if off == 0 {
		return 0
	}
	h.Store(off, data)
	return off
}

// guestBytes reads a guest-provided argument buffer. Offset 0 reads empty.
func (h *Host) guestBytes(offset uint64) []byte {
	if offset == 0 {
		return nil
	}
	return append([]byte(nil), h.mem[offset]...)
}
