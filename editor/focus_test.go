package editor_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/helixpdk/editor"
	"github.com/dshills/helixpdk/internal/fakehost"
)

// twoViews returns a host whose focused view is home and a second view,
// other, holding "second view text" with one selection over "second".
func twoViews(t *testing.T) (h *fakehost.Host, e *editor.Editor, home, other editor.View) {
	t.Helper()

	h = fakehost.New()
	h.SetText("first")
	id := h.AddView(&fakehost.Document{Text: "second view text"})
	h.SetSelections(id, fakehost.Range{Start: 0, End: 6}, fakehost.Range{Start: 7, End: 11})
	h.ResetCalls()

	return h, editor.New(h, h), editor.View(h.FocusedView()), editor.View(id)
}

func recoverTrap(fn func()) (trap any) {
	defer func() { trap = recover() }()
	fn()
	return nil
}

func TestSelectionBoundsRestoreFocus(t *testing.T) {
	h, e, home, other := twoViews(t)
	sel := editor.Selection{View: other, Index: 1}

	assert.Equal(t, uint64(7), e.SelectionFrom(sel))
	assert.Equal(t, uint64(home), h.FocusedView())
	assert.Equal(t, []uint64{uint64(other), uint64(home)}, h.FocusCalls())

	h.ResetCalls()
	assert.Equal(t, uint64(11), e.SelectionTo(sel))
	assert.Equal(t, uint64(home), h.FocusedView())
	assert.Equal(t, []uint64{uint64(other), uint64(home)}, h.FocusCalls())
}

func TestSelectionBoundsSameViewStillRestores(t *testing.T) {
	h := fakehost.New()
	h.SetText("abc")
	h.SetSelections(h.FocusedView(), fakehost.Range{Start: 1, End: 2})
	e := editor.New(h, h)

	sel := editor.Selection{View: e.View(), Index: 0}
	h.ResetCalls()

	assert.Equal(t, uint64(1), e.SelectionFrom(sel))
	// No switch is needed, but the restore is unconditional.
	assert.Equal(t, []uint64{h.FocusedView()}, h.FocusCalls())
}

func TestSelectionBoundsRestoreFocusOnHostTrap(t *testing.T) {
	for _, call := range []string{"selection_begin", "selection_end"} {
		t.Run(call, func(t *testing.T) {
			h, e, home, other := twoViews(t)
			h.PanicOn[call] = true
			sel := editor.Selection{View: other, Index: 0}

			trap := recoverTrap(func() {
				if call == "selection_begin" {
					e.SelectionFrom(sel)
				} else {
					e.SelectionTo(sel)
				}
			})

			require.IsType(t, fakehost.Trap{}, trap)
			assert.Equal(t, uint64(home), h.FocusedView())
			assert.Equal(t, []uint64{uint64(other), uint64(home)}, h.FocusCalls())
		})
	}
}

func TestSelectionText(t *testing.T) {
	h, e, home, other := twoViews(t)

	text, err := e.SelectionText(editor.Selection{View: other, Index: 0})
	require.NoError(t, err)
	assert.Equal(t, "second", text)
	assert.Equal(t, uint64(home), h.FocusedView())
	assert.Equal(t, 0, h.Live(), "text buffer must be released")
	assert.Equal(t,
		[]string{"view_id", "focus", "selection_begin", "selection_end", "text", "focus"},
		h.CallNames())
}

func TestSelectionTextDecodeFailureRestoresFocus(t *testing.T) {
	h, e, home, other := twoViews(t)
	h.Garbage["text"] = true

	_, err := e.SelectionText(editor.Selection{View: other, Index: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, editor.ErrDecode))
	assert.Equal(t, uint64(home), h.FocusedView())
	assert.Equal(t, 0, h.Live(), "buffer must be released on the error path")
}

func TestSelectionTextStaleIndex(t *testing.T) {
	h, e, home, other := twoViews(t)
	sel := editor.Selection{View: other, Index: 1}

	// Shrink the selection list behind the handle's back.
	h.SetSelections(uint64(other), fakehost.Range{Start: 0, End: 6})

	text, err := e.SelectionText(sel)
	require.NoError(t, err)
	assert.Equal(t, "", text, "a stale index resolves to whatever the host reports")
	assert.Equal(t, uint64(home), h.FocusedView())
}

func TestWithFocus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, e, home, other := twoViews(t)

		err := e.WithFocus(other, func() error {
			assert.Equal(t, uint64(other), h.FocusedView())
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(home), h.FocusedView())
	})

	t.Run("error", func(t *testing.T) {
		h, e, home, other := twoViews(t)
		boom := errors.New("boom")

		err := e.WithFocus(other, func() error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, uint64(home), h.FocusedView())
	})

	t.Run("panic", func(t *testing.T) {
		h, e, home, other := twoViews(t)

		trap := recoverTrap(func() {
			_ = e.WithFocus(other, func() error { panic("boom") })
		})
		assert.Equal(t, "boom", trap)
		assert.Equal(t, uint64(home), h.FocusedView())
	})
}

func TestFocusGuardStates(t *testing.T) {
	h, e, home, other := twoViews(t)

	g := e.AcquireFocus(other)
	assert.True(t, g.Armed())
	assert.Equal(t, home, g.Previous())
	assert.Equal(t, other, g.Target())

	g.Release()
	assert.False(t, g.Armed())
	assert.Equal(t, uint64(home), h.FocusedView())

	h.ResetCalls()
	g.Release()
	g.Refocus()
	assert.Empty(t, h.Calls, "a disarmed guard must not touch the host")
}

func TestFocusGuardRefocus(t *testing.T) {
	h, e, home, other := twoViews(t)

	g := e.AcquireFocus(other)
	e.VSplit()
	require.NotEqual(t, uint64(other), h.FocusedView())

	g.Refocus()
	assert.Equal(t, uint64(other), h.FocusedView())

	g.Release()
	assert.Equal(t, uint64(home), h.FocusedView())
}

func TestFocusGuardNesting(t *testing.T) {
	h, e, home, other := twoViews(t)
	third := editor.View(h.AddView(&fakehost.Document{Text: "third"}))

	outer := e.AcquireFocus(other)
	inner := e.AcquireFocus(third)
	assert.Equal(t, uint64(third), h.FocusedView())

	inner.Release()
	assert.Equal(t, uint64(other), h.FocusedView())

	outer.Release()
	assert.Equal(t, uint64(home), h.FocusedView())
}

func TestFocusGuardLogsSwitch(t *testing.T) {
	h := fakehost.New()
	other := editor.View(h.AddView(&fakehost.Document{}))

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	e := editor.New(h, h, editor.WithLogger(logrus.NewEntry(logger)))

	g := e.AcquireFocus(other)
	g.Release()

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, other, entry.Data["to"])
}
