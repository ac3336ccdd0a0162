package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/helixpdk/internal/config"
	"github.com/dshills/helixpdk/internal/fakehost"
	"github.com/dshills/helixpdk/internal/logging"
)

func testEnv(src config.MapSource) (env, *fakehost.Host, *logging.Recorder) {
	h := fakehost.New()
	rec := &logging.Recorder{}
	return env{source: src, sink: rec, host: h, mem: h}, h, rec
}

func TestInvokeDocStats(t *testing.T) {
	e, h, _ := testEnv(config.MapSource{})
	h.SetText("hello")

	out, err := invoke(e, "doc_stats", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lines":1,"chars":5,"bytes":5,"language":"","path":null}`, string(out))
	assert.Equal(t, "1 lines, 5 chars, 5 B", h.Status)
}

func TestInvokeVSplitSel(t *testing.T) {
	e, h, _ := testEnv(config.MapSource{config.KeySplit: "horizontal"})
	h.SetText("abc")
	h.SetSelections(h.FocusedView(), fakehost.Range{Start: 0, End: 3})

	out, err := invoke(e, "vsplit_sel", nil)
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Contains(t, h.CallNames(), "hsplit")
}

func TestInvokeOpenSel(t *testing.T) {
	e, h, _ := testEnv(config.MapSource{})
	h.SetText("f.txt")
	h.SetSelections(h.FocusedView(), fakehost.Range{Start: 0, End: 5})
	h.Files["f.txt"] = "content"

	_, err := invoke(e, "open_sel", nil)
	require.NoError(t, err)
	assert.Equal(t, "content", h.Document(h.FocusedView()).Text)
}

func TestInvokeRunScript(t *testing.T) {
	e, _, rec := testEnv(config.MapSource{config.KeyLogLevel: "info"})

	out, err := invoke(e, "run_script", []byte(`{"source":"print('hi') return 2"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"script":"inline","results":[2]}`, string(out))

	require.NotEmpty(t, rec.Records)
	line := rec.Records[0].Line
	assert.Contains(t, line, "msg=hi")
	assert.Contains(t, line, "plugin_fn=run_script")
	assert.Contains(t, line, "invocation=")
}

func TestInvokeErrorsAreLogged(t *testing.T) {
	e, _, rec := testEnv(config.MapSource{})

	_, err := invoke(e, "run_script", []byte(`not json`))
	require.Error(t, err)

	require.NotEmpty(t, rec.Records)
	assert.Contains(t, rec.Records[len(rec.Records)-1].Line, "level=error")
}

func TestInvokeBadConfig(t *testing.T) {
	e, h, rec := testEnv(config.MapSource{config.KeyTOML: "[log\n"})

	_, err := invoke(e, "doc_stats", nil)
	var perr *config.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, h.Calls, "nothing reaches the host without a config")
	assert.Empty(t, rec.Records)
}

func TestInvokeUnknownFunction(t *testing.T) {
	e, _, _ := testEnv(config.MapSource{})
	_, err := invoke(e, "explode", nil)
	assert.Error(t, err)
}
