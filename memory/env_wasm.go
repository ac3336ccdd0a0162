//go:build wasip1

package memory

import (
	"github.com/extism/go-pdk"
)

// Env is the Allocator backed by the Extism memory kernel of the running
// plugin instance.
type Env struct{}

var _ Allocator = Env{}

func (Env) Alloc(n uint64) uint64 {
	mem := pdk.Allocate(int(n))
	return mem.Offset()
}

func (Env) Free(offset uint64) {
	mem := pdk.FindMemory(offset)
	mem.Free()
}

func (Env) Length(offset uint64) uint64 {
	mem := pdk.FindMemory(offset)
	return mem.Length()
}

func (Env) Load(offset uint64, dst []byte) {
	mem := pdk.NewMemory(offset, uint64(len(dst)))
	mem.Load(dst)
}

func (Env) Store(offset uint64, src []byte) {
	mem := pdk.NewMemory(offset, uint64(len(src)))
	mem.Store(src)
}
