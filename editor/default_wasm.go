//go:build wasip1

package editor

import (
	"github.com/dshills/helixpdk/host"
	"github.com/dshills/helixpdk/memory"
)

// Default returns an Editor bound to the host of the running plugin.
func Default(opts ...Option) *Editor {
	return New(host.Env{}, memory.Env{}, opts...)
}
