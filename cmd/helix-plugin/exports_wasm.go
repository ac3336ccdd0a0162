//go:build wasip1

package main

import (
	"github.com/extism/go-pdk"

	"github.com/dshills/helixpdk/host"
	"github.com/dshills/helixpdk/internal/config"
	"github.com/dshills/helixpdk/internal/logging"
	"github.com/dshills/helixpdk/memory"
)

//go:wasmexport vsplit_sel
func vsplitSel() int32 { return export("vsplit_sel") }

//go:wasmexport open_sel
func openSel() int32 { return export("open_sel") }

//go:wasmexport doc_stats
func docStats() int32 { return export("doc_stats") }

//go:wasmexport run_script
func runScript() int32 { return export("run_script") }

// export runs name against the live host and reports the outcome the way
// Extism expects: output on success, an error message and 1 on failure.
func export(name string) int32 {
	pluginEnv := env{
		source: config.PDKSource{},
		sink:   logging.HostSink{},
		host:   host.Env{},
		mem:    memory.Env{},
	}

	out, err := invoke(pluginEnv, name, pdk.Input())
	if err != nil {
		pdk.SetError(err)
		return 1
	}
	if out != nil {
		pdk.Output(out)
	}
	return 0
}
