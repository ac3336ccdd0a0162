//go:build wasip1

package config

import "github.com/extism/go-pdk"

// PDKSource reads the config map the host attached to the plugin.
type PDKSource struct{}

// Get returns the config value stored under key.
func (PDKSource) Get(key string) (string, bool) {
	return pdk.GetConfig(key)
}
