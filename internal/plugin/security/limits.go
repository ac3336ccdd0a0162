package security

// Limits bound the Lua state a script runs in.
type Limits struct {
	// MaxSourceBytes rejects larger scripts before they are compiled.
	MaxSourceBytes int
	// CallStackSize is the Lua call stack depth.
	CallStackSize int
	// RegistrySize is the initial Lua registry size.
	RegistrySize int
	// RegistryMaxSize caps registry growth; 0 means fixed at RegistrySize.
	RegistryMaxSize int
}

// DefaultLimits returns limits suitable for short editor scripts.
func DefaultLimits() Limits {
	return Limits{
		MaxSourceBytes:  64 * 1024,
		CallStackSize:   120,
		RegistrySize:    1024,
		RegistryMaxSize: 64 * 1024,
	}
}
