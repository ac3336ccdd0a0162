package samples

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helixpdk/internal/plugin/api"
	hlua "github.com/dshills/helixpdk/internal/plugin/lua"
	"github.com/dshills/helixpdk/internal/plugin/security"
)

// inlineName names scripts passed as source in the input.
const inlineName = "inline"

// ScriptRequest is the decoded run_script input.
type ScriptRequest struct {
	Name   string
	Source string
	Args   []gjson.Result
}

// ParseScriptRequest decodes run_script input:
//
//	{"script": "<configured name>", "args": [...]}
//	{"source": "<lua>", "args": [...]}
//
// Empty input selects the configured default script.
func (p *Plugin) ParseScriptRequest(input []byte) (ScriptRequest, error) {
	var req ScriptRequest
	if len(input) > 0 {
		if !gjson.ValidBytes(input) {
			return req, ErrInvalidInput
		}
		doc := gjson.ParseBytes(input)
		if !doc.IsObject() {
			return req, fmt.Errorf("%w: want a JSON object", ErrInvalidInput)
		}
		req.Name = doc.Get("script").String()
		req.Source = doc.Get("source").String()
		req.Args = doc.Get("args").Array()
	}

	if req.Source != "" {
		if req.Name == "" {
			req.Name = inlineName
		}
		return req, nil
	}

	if req.Name == "" {
		req.Name = p.cfg.Script.Default
	}
	if req.Name == "" {
		return req, ErrNoScript
	}
	src, ok := p.cfg.Script.Sources[req.Name]
	if !ok {
		return req, fmt.Errorf("%w: %q", ErrUnknownScript, req.Name)
	}
	req.Source = src
	return req, nil
}

// RunScript runs a Lua script against the editor with the configured
// capabilities and returns {"script": name, "results": [...]}.
func (p *Plugin) RunScript(input []byte) ([]byte, error) {
	req, err := p.ParseScriptRequest(input)
	if err != nil {
		return nil, fmt.Errorf("run_script: %w", err)
	}

	log := p.log.WithField("script", req.Name)
	state := hlua.NewState(hlua.WithLogger(log))
	defer state.Close()

	checker := security.NewPermissionChecker(req.Name)
	checker.GrantAll(p.cfg.Capabilities())

	reg, err := api.DefaultRegistry(&api.Context{Editor: p.editor, Log: log})
	if err != nil {
		return nil, fmt.Errorf("run_script: %w", err)
	}
	if err := reg.InjectAll(state.LuaState(), checker); err != nil {
		return nil, fmt.Errorf("run_script: %w", err)
	}

	args := make([]lua.LValue, len(req.Args))
	for i, a := range req.Args {
		args[i] = hlua.ToLua(state.LuaState(), a.Value())
	}

	log.WithField("capabilities", checker.Capabilities()).Debug("running script")
	results, err := state.Run(req.Name, req.Source, args...)
	if err != nil {
		return nil, fmt.Errorf("run_script: %w", err)
	}

	values := make([]any, len(results))
	for i, r := range results {
		values[i] = hlua.ToGo(r)
	}

	out, err := sjson.SetBytes([]byte(`{}`), "script", req.Name)
	if err == nil {
		out, err = sjson.SetBytes(out, "results", values)
	}
	if err != nil {
		return nil, fmt.Errorf("run_script: encode results: %w", err)
	}
	return out, nil
}
