package memory

import (
	"errors"
	"unicode/utf8"
)

// Buffer is an owned handle on one host allocation.
type Buffer struct {
	alloc    Allocator
	offset   uint64
	length   uint64
	released bool
}

// Alloc copies data into a fresh host allocation.
//
// Zero-length data is valid; the host may answer with offset 0, in which
// case the buffer reads back empty and Release does not call the host.
func Alloc(a Allocator, data []byte) (*Buffer, error) {
	n := uint64(len(data))
	off := a.Alloc(n)
	if off == 0 && n > 0 {
		return nil, &AllocationError{Size: n}
	}
	if n > 0 {
		a.Store(off, data)
	}
	return &Buffer{alloc: a, offset: off, length: n}, nil
}

// AllocString copies s into a fresh host allocation.
func AllocString(a Allocator, s string) (*Buffer, error) {
	return Alloc(a, []byte(s))
}

// Find wraps an offset returned by the host. It reports false for offset 0,
// which means the host returned no data.
func Find(a Allocator, offset uint64) (*Buffer, bool) {
	if offset == 0 {
		return nil, false
	}
	return &Buffer{alloc: a, offset: offset, length: a.Length(offset)}, true
}

// Offset returns the host offset of b. A nil Buffer has offset 0, which host
// calls taking an optional argument treat as "none".
func (b *Buffer) Offset() uint64 {
	if b == nil {
		return 0
	}
	return b.offset
}

// Len returns the size of the allocation in bytes.
func (b *Buffer) Len() uint64 {
	if b == nil {
		return 0
	}
	return b.length
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool {
	return b != nil && b.released
}

// Bytes copies the buffer contents out of host memory.
func (b *Buffer) Bytes() ([]byte, error) {
	if b.released {
		return nil, ErrReleased
	}
	out := make([]byte, b.length)
	if b.length > 0 {
		b.alloc.Load(b.offset, out)
	}
	return out, nil
}

// String copies the buffer contents out and decodes them as UTF-8.
func (b *Buffer) String() (string, error) {
	data, err := b.Bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &DecodeError{Offset: b.offset, Length: b.length}
	}
	return string(data), nil
}

// Release frees the host allocation. It must be called exactly once; later
// calls return ErrReleased.
func (b *Buffer) Release() error {
	if b.released {
		return ErrReleased
	}
	b.released = true
	if b.offset != 0 {
		b.alloc.Free(b.offset)
	}
	return nil
}

// Take locates a host-returned offset, decodes it as a string and releases
// it. ok is false when the host returned no buffer. The buffer is released
// even when decoding fails.
func Take(a Allocator, offset uint64) (s string, ok bool, err error) {
	buf, found := Find(a, offset)
	if !found {
		return "", false, nil
	}
	s, err = buf.String()
	if rerr := buf.Release(); rerr != nil {
		err = errors.Join(err, rerr)
	}
	if err != nil {
		return "", true, err
	}
	return s, true, nil
}
