package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config map keys.
const (
	KeyTOML     = "helix.toml"
	KeyYAML     = "helix.yaml"
	KeyLogLevel = "log_level"
	KeySplit    = "split"
	KeyScript   = "script"
)

// Format identifies a configuration document syntax.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Source provides raw configuration values by key.
type Source interface {
	Get(key string) (string, bool)
}

// MapSource is a Source backed by a map.
type MapSource map[string]string

// Get returns the value stored under key.
func (m MapSource) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Load builds a validated Config from src. A source without a document
// yields the defaults plus any flat overrides.
func Load(src Source) (*Config, error) {
	cfg := base()

	if data, ok := src.Get(KeyTOML); ok {
		if err := Parse(FormatTOML, KeyTOML, []byte(data), cfg); err != nil {
			return nil, err
		}
	} else if data, ok := src.Get(KeyYAML); ok {
		if err := Parse(FormatYAML, KeyYAML, []byte(data), cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Script.Capabilities == nil {
		cfg.Script.Capabilities = append([]string(nil), DefaultCapabilities...)
	}

	if v, ok := src.Get(KeyLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := src.Get(KeySplit); ok {
		cfg.Split.Direction = Direction(v)
	}
	if v, ok := src.Get(KeyScript); ok {
		cfg.Script.Default = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Parse decodes a document over cfg. Fields the document omits keep their
// current values; unknown fields are errors. key names the document in
// errors.
func Parse(format Format, key string, data []byte, cfg *Config) error {
	switch format {
	case FormatTOML:
		return parseTOML(key, data, cfg)
	case FormatYAML:
		return parseYAML(key, data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func parseTOML(key string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		perr := &ParseError{Key: key, Message: err.Error(), Err: err}

		var decErr *toml.DecodeError
		var strictErr *toml.StrictMissingError
		switch {
		case errors.As(err, &decErr):
			perr.Line, perr.Column = decErr.Position()
		case errors.As(err, &strictErr):
			if len(strictErr.Errors) > 0 {
				perr.Line, perr.Column = strictErr.Errors[0].Position()
				perr.Message = "unknown field " + strings.Join(strictErr.Errors[0].Key(), ".")
			}
		}
		return perr
	}
	return nil
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func parseYAML(key string, data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		perr := &ParseError{Key: key, Message: err.Error(), Err: err}
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			perr.Line, _ = strconv.Atoi(m[1])
		}
		return perr
	}
	return nil
}
