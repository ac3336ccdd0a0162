package samples_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/helixpdk/editor"
	"github.com/dshills/helixpdk/internal/config"
	"github.com/dshills/helixpdk/internal/fakehost"
	"github.com/dshills/helixpdk/internal/samples"
)

func newPlugin(t *testing.T, cfg *config.Config) (*fakehost.Host, *samples.Plugin) {
	t.Helper()
	h := fakehost.New()
	return h, samples.New(editor.New(h, h), cfg, nil)
}

func TestVSplitSelection(t *testing.T) {
	h, p := newPlugin(t, nil)
	home := h.FocusedView()
	h.SetText("copy me please")
	h.SetSelections(home, fakehost.Range{Start: 0, End: 7})

	require.NoError(t, p.VSplitSelection())

	split := h.FocusedView()
	assert.NotEqual(t, home, split)
	assert.Contains(t, h.CallNames(), "vsplit")
	// The split shares the document, so the copy lands at its start.
	assert.Equal(t, "copy mecopy me please", h.Document(split).Text)
	assert.Equal(t, []fakehost.Range{{Start: 0, End: 0}}, h.Selections(split))
	assert.Equal(t, 0, h.Live())
}

func TestVSplitSelectionHorizontal(t *testing.T) {
	cfg := config.Default()
	cfg.Split.Direction = config.Horizontal
	h, p := newPlugin(t, cfg)
	h.SetText("x")
	h.SetSelections(h.FocusedView(), fakehost.Range{Start: 0, End: 1})

	require.NoError(t, p.VSplitSelection())
	assert.Contains(t, h.CallNames(), "hsplit")
	assert.NotContains(t, h.CallNames(), "vsplit")
}

func TestVSplitSelectionDecodeError(t *testing.T) {
	h, p := newPlugin(t, nil)
	h.SetText("abc")
	h.SetSelections(h.FocusedView(), fakehost.Range{Start: 0, End: 3})
	h.Garbage["text"] = true

	err := p.VSplitSelection()
	assert.ErrorIs(t, err, editor.ErrDecode)
	assert.Len(t, h.Views(), 1, "no split after a failed read")
}

func TestOpenSelections(t *testing.T) {
	h, p := newPlugin(t, nil)
	home := h.FocusedView()
	h.SetText("a.txt b.txt")
	h.SetSelections(home,
		fakehost.Range{Start: 0, End: 5},
		fakehost.Range{Start: 5, End: 5},
		fakehost.Range{Start: 6, End: 11},
	)
	h.Files["a.txt"] = "alpha"
	h.Files["b.txt"] = "beta"

	n, err := p.OpenSelections()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	views := h.Views()
	require.Len(t, views, 3)
	assert.Equal(t, "alpha", h.Document(views[1]).Text)
	assert.Equal(t, "beta", h.Document(views[2]).Text)
	assert.Equal(t, views[2], h.FocusedView())
	assert.Equal(t, 0, h.Live())
}

func TestOpenSelectionsNone(t *testing.T) {
	h, p := newPlugin(t, nil)

	n, err := p.OpenSelections()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, h.Views(), 1)
}
