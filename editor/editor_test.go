package editor_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/helixpdk/editor"
	"github.com/dshills/helixpdk/internal/fakehost"
)

func newEditor(t *testing.T, text string) (*fakehost.Host, *editor.Editor) {
	t.Helper()
	h := fakehost.New()
	h.SetText(text)
	return h, editor.New(h, h)
}

func strPtr(s string) *string { return &s }

func TestSelections(t *testing.T) {
	h, e := newEditor(t, "one two three")
	h.SetSelections(h.FocusedView(),
		fakehost.Range{Start: 0, End: 3},
		fakehost.Range{Start: 4, End: 7},
		fakehost.Range{Start: 8, End: 13},
	)

	seq := e.Selections()
	got := slices.Collect(seq)

	require.Len(t, got, int(e.SelectionCount()))
	for i, sel := range got {
		assert.Equal(t, editor.View(h.FocusedView()), sel.View)
		assert.Equal(t, uint64(i), sel.Index)
	}

	assert.Empty(t, slices.Collect(seq), "sequence must not restart")
}

func TestSelectionsCountReadOnce(t *testing.T) {
	h, e := newEditor(t, "abc")
	h.SetSelections(h.FocusedView(), fakehost.Range{Start: 0, End: 1})

	seq := e.Selections()
	h.SetSelections(h.FocusedView(), fakehost.Range{}, fakehost.Range{}, fakehost.Range{})

	assert.Len(t, slices.Collect(seq), 1)
}

func TestSelectionsEarlyBreak(t *testing.T) {
	h, e := newEditor(t, "abc")
	h.SetSelections(h.FocusedView(), fakehost.Range{}, fakehost.Range{}, fakehost.Range{})

	var n int
	for range e.Selections() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestSelectionsEmpty(t *testing.T) {
	_, e := newEditor(t, "")
	assert.Empty(t, slices.Collect(e.Selections()))
}

func TestSelectionOrdering(t *testing.T) {
	sels := []editor.Selection{
		{View: 2, Index: 0},
		{View: 1, Index: 3},
		{View: 1, Index: 0},
		{View: 1, Index: 3},
	}
	slices.SortFunc(sels, editor.Selection.Compare)
	sels = slices.Compact(sels)

	assert.Equal(t, []editor.Selection{
		{View: 1, Index: 0},
		{View: 1, Index: 3},
		{View: 2, Index: 0},
	}, sels)
	assert.True(t, sels[0].Less(sels[1]))
	assert.False(t, sels[2].Less(sels[1]))
}

func TestAddSelection(t *testing.T) {
	h, e := newEditor(t, "hello")

	sel := e.AddSelection(1, 3)
	assert.Equal(t, editor.Selection{View: editor.View(h.FocusedView()), Index: 0}, sel)
	assert.Equal(t, uint64(1), e.SelectionFrom(sel))
	assert.Equal(t, uint64(3), e.SelectionTo(sel))

	e.ClearSelection()
	assert.Equal(t, uint64(0), e.SelectionCount())
}

func TestInsertText(t *testing.T) {
	tests := []struct {
		name  string
		sel   fakehost.Range
		text  string
		where editor.Insert
		want  string
	}{
		{"before", fakehost.Range{Start: 0, End: 5}, "hello ", editor.InsertBefore, "hello world"},
		{"after", fakehost.Range{Start: 0, End: 5}, "!", editor.InsertAfter, "world!"},
		{"multibyte", fakehost.Range{Start: 5, End: 5}, " 世界", editor.InsertBefore, "world 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, e := newEditor(t, "world")
			h.SetSelections(h.FocusedView(), tt.sel)

			require.NoError(t, e.InsertText(tt.text, tt.where))
			assert.Equal(t, tt.want, h.Document(h.FocusedView()).Text)
			assert.Equal(t, 0, h.Live())
		})
	}
}

func TestInsertTextUnknownPlacement(t *testing.T) {
	h, e := newEditor(t, "x")
	err := e.InsertText("y", editor.Insert(9))
	require.Error(t, err)
	assert.Equal(t, 0, h.Allocs)
}

func TestReplaceText(t *testing.T) {
	h, e := newEditor(t, "foo bar")
	h.SetSelections(h.FocusedView(), fakehost.Range{Start: 4, End: 7})

	require.NoError(t, e.ReplaceText("baz"))
	assert.Equal(t, "foo baz", h.Document(h.FocusedView()).Text)
	assert.Equal(t, 0, h.Live())
}

func TestText(t *testing.T) {
	h, e := newEditor(t, "héllo wörld")

	s, err := e.Text(6, 11)
	require.NoError(t, err)
	assert.Equal(t, "wörld", s)
	assert.Equal(t, 0, h.Live())
}

func TestPath(t *testing.T) {
	tests := []struct {
		name   string
		path   *string
		want   string
		wantOK bool
	}{
		{"null offset", nil, "", false},
		{"empty buffer", strPtr(""), "", false},
		{"set", strPtr("/src/main.go"), "/src/main.go", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, e := newEditor(t, "")
			h.Document(h.FocusedView()).Path = tt.path

			got, ok, err := e.Path()
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 0, h.Live())
		})
	}
}

func TestPathDecodeError(t *testing.T) {
	h, e := newEditor(t, "")
	h.Document(h.FocusedView()).Path = strPtr("/x")
	h.Garbage["get_path"] = true

	_, ok, err := e.Path()
	assert.False(t, ok)
	assert.ErrorIs(t, err, editor.ErrDecode)
	assert.Equal(t, 0, h.Live())
}

func TestFileOperations(t *testing.T) {
	h, e := newEditor(t, "")
	h.Files["notes.txt"] = "remember"

	require.NoError(t, e.Open("notes.txt"))
	doc := h.Document(h.FocusedView())
	assert.Equal(t, "remember", doc.Text)

	require.NoError(t, e.SetPath("renamed.txt"))
	path, ok, err := e.Path()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "renamed.txt", path)

	e.Save()
	require.NoError(t, e.SaveAs("copy.txt"))
	assert.Equal(t, []string{"renamed.txt", "copy.txt"}, h.Saved)

	saveCalls := 0
	for _, c := range h.Calls {
		if c.Name == "save" {
			if saveCalls == 0 {
				assert.Equal(t, []uint64{0}, c.Args, "Save passes the null path")
			}
			saveCalls++
		}
	}
	assert.Equal(t, 2, saveCalls)
	assert.Equal(t, 0, h.Live())
}

func TestLanguageName(t *testing.T) {
	h, e := newEditor(t, "")
	h.Document(h.FocusedView()).Language = "rust"

	lang, err := e.LanguageName()
	require.NoError(t, err)
	assert.Equal(t, "rust", lang)
	assert.Equal(t, 0, h.Live())
}

func TestStatus(t *testing.T) {
	h, e := newEditor(t, "")

	require.NoError(t, e.SetStatus("ready"))
	assert.Equal(t, "ready", h.Status)
	assert.True(t, h.StatusSet)

	e.ClearStatus()
	assert.False(t, h.StatusSet)
	assert.Equal(t, 0, h.Live())
}

func TestDocumentMetrics(t *testing.T) {
	_, e := newEditor(t, "añb\nc")

	assert.Equal(t, uint64(2), e.LenLines())
	assert.Equal(t, uint64(5), e.LenChars())
	assert.Equal(t, uint64(6), e.LenBytes())
}

func TestViewOperations(t *testing.T) {
	h, e := newEditor(t, "")
	first := e.View()

	e.VSplit()
	second := e.View()
	assert.NotEqual(t, first, second)

	e.HSplit()
	third := e.View()

	e.FocusNext()
	assert.Equal(t, first, e.View())
	e.FocusPrev()
	assert.Equal(t, third, e.View())

	e.Focus(second)
	assert.Equal(t, second, e.View())

	e.Close()
	assert.Len(t, h.Views(), 2)
}

func TestUndoRedo(t *testing.T) {
	h, e := newEditor(t, "")
	e.Undo()
	e.Undo()
	e.Redo()
	assert.Equal(t, 2, h.Undos)
	assert.Equal(t, 1, h.Redos)
}

func TestSelectAllUsesCommandChannel(t *testing.T) {
	h, e := newEditor(t, "everything")

	require.NoError(t, e.SelectAll())
	assert.Equal(t, []string{"select_all"}, h.Executed)
	assert.Equal(t, []fakehost.Range{{Start: 0, End: 10}}, h.Selections(h.FocusedView()))
	assert.Equal(t, 0, h.Live())
}

func TestEncodingError(t *testing.T) {
	h, e := newEditor(t, "")
	bad := string([]byte{0xff, 'x'})

	calls := map[string]func() error{
		"status":  func() error { return e.SetStatus(bad) },
		"execute": func() error { return e.Execute(bad) },
		"open":    func() error { return e.Open(bad) },
		"insert":  func() error { return e.InsertText(bad, editor.InsertAfter) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, editor.ErrEncoding))

			var encErr *editor.EncodingError
			assert.ErrorAs(t, err, &encErr)
		})
	}
	assert.Equal(t, 0, h.Allocs, "nothing may be allocated for unencodable input")
}

func TestAllocationError(t *testing.T) {
	h, e := newEditor(t, "")
	h.FailAlloc = true

	err := e.SetStatus("hello")
	assert.ErrorIs(t, err, editor.ErrAllocation)
	assert.False(t, h.StatusSet, "host must not be called without a buffer")
}

func TestBufferReleasedWhenHostTraps(t *testing.T) {
	h, e := newEditor(t, "")
	h.PanicOn["set_status"] = true

	trap := recoverTrap(func() { _ = e.SetStatus("x") })
	require.NotNil(t, trap)
	assert.Equal(t, 0, h.Live())
}

func TestEmptyStringArguments(t *testing.T) {
	h, e := newEditor(t, "")

	require.NoError(t, e.SetStatus(""))
	assert.True(t, h.StatusSet)
	assert.Equal(t, "", h.Status)
	assert.Equal(t, 0, h.Live())
}
