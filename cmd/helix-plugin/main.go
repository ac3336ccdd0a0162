// Package main is the helix plugin module. Built with GOOS=wasip1 it
// exports vsplit_sel, open_sel, doc_stats and run_script to the host.
package main

import (
	"fmt"

	"github.com/dshills/helixpdk/editor"
	"github.com/dshills/helixpdk/host"
	"github.com/dshills/helixpdk/internal/config"
	"github.com/dshills/helixpdk/internal/logging"
	"github.com/dshills/helixpdk/internal/samples"
	"github.com/dshills/helixpdk/memory"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {}

// env is everything an invocation needs from the outside.
type env struct {
	source config.Source
	sink   logging.Sink
	host   host.Host
	mem    memory.Allocator
}

// handler is one exported function.
type handler func(p *samples.Plugin, input []byte) ([]byte, error)

var handlers = map[string]handler{
	"vsplit_sel": func(p *samples.Plugin, _ []byte) ([]byte, error) {
		return nil, p.VSplitSelection()
	},
	"open_sel": func(p *samples.Plugin, _ []byte) ([]byte, error) {
		_, err := p.OpenSelections()
		return nil, err
	},
	"doc_stats": func(p *samples.Plugin, _ []byte) ([]byte, error) {
		return p.DocStats()
	},
	"run_script": func(p *samples.Plugin, input []byte) ([]byte, error) {
		return p.RunScript(input)
	},
}

// invoke loads the configuration, builds the logger and editor for one
// call of the exported function name, and runs it.
func invoke(e env, name string, input []byte) ([]byte, error) {
	fn, ok := handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q", name)
	}

	cfg, err := config.Load(e.source)
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel()}, e.sink)
	log := logging.ForInvocation(logging.WithComponent(logger, "helix-plugin"), name).
		WithField("version", version)

	ed := editor.New(e.host, e.mem, editor.WithLogger(log))
	out, err := fn(samples.New(ed, cfg, log), input)
	if err != nil {
		log.WithError(err).Error("plugin function failed")
		return nil, err
	}
	log.Debug("plugin function done")
	return out, nil
}
