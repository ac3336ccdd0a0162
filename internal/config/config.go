package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/dshills/helixpdk/internal/plugin/security"
)

// Direction selects the split a sample plugin opens.
type Direction string

// Split directions.
const (
	Vertical   Direction = "vertical"
	Horizontal Direction = "horizontal"
)

// Config holds the plugin settings.
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Split  SplitConfig  `toml:"split" yaml:"split"`
	Script ScriptConfig `toml:"script" yaml:"script"`
	Stats  StatsConfig  `toml:"stats" yaml:"stats"`
}

// LogConfig configures the plugin logger.
type LogConfig struct {
	// Level is a logrus level name.
	Level string `toml:"level" yaml:"level"`
}

// SplitConfig configures splits opened by the sample plugins.
type SplitConfig struct {
	Direction Direction `toml:"direction" yaml:"direction"`
}

// ScriptConfig configures run_script.
type ScriptConfig struct {
	// Capabilities lists the hx modules scripts may use. A missing list
	// grants DefaultCapabilities; an empty list grants nothing.
	Capabilities []string `toml:"capabilities" yaml:"capabilities"`
	// Default names the source run when the input names none.
	Default string `toml:"default" yaml:"default"`
	// Sources maps script names to Lua source.
	Sources map[string]string `toml:"sources" yaml:"sources"`
}

// StatsConfig configures doc_stats.
type StatsConfig struct {
	ShowLanguage bool `toml:"show_language" yaml:"show_language"`
}

// DefaultCapabilities are granted when the configuration lists none.
var DefaultCapabilities = []string{
	string(security.CapabilitySelection),
	string(security.CapabilityDocument),
	string(security.CapabilityView),
	string(security.CapabilityUI),
}

// Default returns the configuration used when the host provides none.
func Default() *Config {
	c := base()
	c.Script.Capabilities = append([]string(nil), DefaultCapabilities...)
	return c
}

// base returns the defaults that documents are decoded over.
func base() *Config {
	return &Config{
		Log:   LogConfig{Level: "info"},
		Split: SplitConfig{Direction: Vertical},
		Stats: StatsConfig{ShowLanguage: true},
	}
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "unknown log level",
			Value:   c.Log.Level,
		})
	}

	switch c.Split.Direction {
	case Vertical, Horizontal:
	default:
		errs = append(errs, &ValidationError{
			Path:    "split.direction",
			Message: fmt.Sprintf("must be %q or %q", Vertical, Horizontal),
			Value:   c.Split.Direction,
		})
	}

	for i, name := range c.Script.Capabilities {
		if _, err := security.ParseCapability(name); err != nil {
			errs = append(errs, &ValidationError{
				Path:    fmt.Sprintf("script.capabilities[%d]", i),
				Message: "unknown capability",
				Value:   name,
			})
		}
	}

	if d := c.Script.Default; d != "" {
		if _, ok := c.Script.Sources[d]; !ok {
			errs = append(errs, &ValidationError{
				Path:    "script.default",
				Message: "no source with this name",
				Value:   d,
			})
		}
	}

	return errors.Join(errs...)
}

// LogLevel returns the configured level, or Info if it does not parse.
func (c *Config) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Capabilities returns the granted script capabilities, skipping unknown
// names.
func (c *Config) Capabilities() []security.Capability {
	caps := make([]security.Capability, 0, len(c.Script.Capabilities))
	for _, name := range c.Script.Capabilities {
		if parsed, err := security.ParseCapability(name); err == nil {
			caps = append(caps, parsed)
		}
	}
	return caps
}

// ScriptNames returns the configured script names, sorted.
func (c *Config) ScriptNames() []string {
	names := make([]string, 0, len(c.Script.Sources))
	for name := range c.Script.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
