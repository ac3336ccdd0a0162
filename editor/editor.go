package editor

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/dshills/helixpdk/host"
	"github.com/dshills/helixpdk/memory"
)

// Editor is a stateless handle on the host editor. It is cheap to create and
// safe to copy around; all state lives on the host.
type Editor struct {
	host host.Host
	mem  memory.Allocator
	log  *logrus.Entry
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger used for debug output.
func WithLogger(log *logrus.Entry) Option {
	return func(e *Editor) {
		if log != nil {
			e.log = log
		}
	}
}

// New returns an Editor that issues calls to h and moves text through a.
func New(h host.Host, a memory.Allocator, opts ...Option) *Editor {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	e := &Editor{
		host: h,
		mem:  a,
		log:  logrus.NewEntry(quiet),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// View returns the focused view.
func (e *Editor) View() View {
	return View(e.host.ViewID())
}

// Focus makes v the focused view.
func (e *Editor) Focus(v View) {
	e.host.Focus(uint64(v))
}

// FocusNext cycles focus forward.
func (e *Editor) FocusNext() {
	e.host.FocusNext()
}

// FocusPrev cycles focus backward.
func (e *Editor) FocusPrev() {
	e.host.FocusPrev()
}

// VSplit opens a vertical split of the focused view and focuses it.
func (e *Editor) VSplit() {
	e.host.VSplit()
}

// HSplit opens a horizontal split of the focused view and focuses it.
func (e *Editor) HSplit() {
	e.host.HSplit()
}

// AddSelection adds a selection to the focused view.
func (e *Editor) AddSelection(start, end uint64) Selection {
	idx := e.host.SelectionAdd(start, end)
	return Selection{View: e.View(), Index: idx}
}

// SelectionCount returns the live selection count of the focused view.
func (e *Editor) SelectionCount() uint64 {
	return e.host.SelectionCount()
}

// Selections returns the selections of the focused view.
//
// The count and view are read once, when Selections is called. The returned
// sequence can be ranged over only once; later ranges yield nothing.
func (e *Editor) Selections() iter.Seq[Selection] {
	n := e.host.SelectionCount()
	v := e.View()
	used := false
	return func(yield func(Selection) bool) {
		if used {
			return
		}
		used = true
		for i := uint64(0); i < n; i++ {
			if !yield(Selection{View: v, Index: i}) {
				return
			}
		}
	}
}

// ClearSelection clears the selections of the focused view.
func (e *Editor) ClearSelection() {
	e.host.SelectionReset()
}

// SelectionFrom returns the start bound of s.
func (e *Editor) SelectionFrom(s Selection) uint64 {
	g := e.AcquireFocus(s.View)
	defer g.Release()
	return e.host.SelectionBegin(s.Index)
}

// SelectionTo returns the end bound of s.
func (e *Editor) SelectionTo(s Selection) uint64 {
	g := e.AcquireFocus(s.View)
	defer g.Release()
	return e.host.SelectionEnd(s.Index)
}

// SelectionText returns the text covered by s.
func (e *Editor) SelectionText(s Selection) (string, error) {
	g := e.AcquireFocus(s.View)
	defer g.Release()

	from := e.host.SelectionBegin(s.Index)
	to := e.host.SelectionEnd(s.Index)
	text, err := e.receive("selection text", func() uint64 {
		return e.host.Text(from, to)
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// Text returns the focused view's text in [from, to).
func (e *Editor) Text(from, to uint64) (string, error) {
	return e.receive("text", func() uint64 {
		return e.host.Text(from, to)
	})
}

// InsertText inserts text before or after the focused view's selection.
func (e *Editor) InsertText(text string, where Insert) error {
	switch where {
	case InsertBefore:
		return e.send("insert text", text, e.host.SelectionInsertTextBefore)
	case InsertAfter:
		return e.send("insert text", text, e.host.SelectionInsertTextAfter)
	default:
		return fmt.Errorf("insert text: unknown placement %d", int(where))
	}
}

// ReplaceText replaces the content of the focused view's selection.
func (e *Editor) ReplaceText(text string) error {
	return e.send("replace text", text, e.host.SelectionReplaceText)
}

// Open opens path in the focused view.
func (e *Editor) Open(path string) error {
	return e.send("open", path, e.host.Open)
}

// SetPath changes the path of the focused document without saving.
func (e *Editor) SetPath(path string) error {
	return e.send("set path", path, e.host.SetPath)
}

// Save writes the focused document to its current path.
func (e *Editor) Save() {
	e.host.Save(0)
}

// SaveAs writes the focused document to path.
func (e *Editor) SaveAs(path string) error {
	return e.send("save", path, e.host.Save)
}

// Path returns the path of the focused document. ok is false when the
// document has no path; the host reports that either with no buffer or with
// an empty one.
func (e *Editor) Path() (path string, ok bool, err error) {
	s, found, err := memory.Take(e.mem, e.host.GetPath())
	if err != nil {
		return "", false, fmt.Errorf("path: %w", err)
	}
	if !found || s == "" {
		return "", false, nil
	}
	return s, true, nil
}

// LanguageName returns the language of the focused document.
func (e *Editor) LanguageName() (string, error) {
	return e.receive("language name", e.host.LanguageName)
}

// Close closes the focused view.
func (e *Editor) Close() {
	e.host.Close()
}

// Undo undoes the last change of the focused document.
func (e *Editor) Undo() {
	e.host.Undo()
}

// Redo redoes the last undone change of the focused document.
func (e *Editor) Redo() {
	e.host.Redo()
}

// SetStatus shows text on the status line.
func (e *Editor) SetStatus(text string) error {
	return e.send("set status", text, e.host.SetStatus)
}

// ClearStatus clears the status line.
func (e *Editor) ClearStatus() {
	e.host.ClearStatus()
}

// Execute runs one command line.
func (e *Editor) Execute(line string) error {
	return e.send("execute", line, e.host.Execute)
}

// SelectAll selects the whole focused document.
func (e *Editor) SelectAll() error {
	return e.Execute("select_all")
}

// LenLines returns the line count of the focused document.
func (e *Editor) LenLines() uint64 {
	return e.host.LenLines()
}

// LenChars returns the character count of the focused document.
func (e *Editor) LenChars() uint64 {
	return e.host.LenChars()
}

// LenBytes returns the byte length of the focused document.
func (e *Editor) LenBytes() uint64 {
	return e.host.LenBytes()
}

// send copies s into a transfer buffer, passes its offset to call and
// releases the buffer afterwards, including when call panics.
func (e *Editor) send(op, s string, call func(uint64)) (err error) {
	if !utf8.ValidString(s) {
		return &EncodingError{Op: op}
	}

	buf, err := memory.AllocString(e.mem, s)
	if err != nil {
		e.log.WithError(err).WithField("op", op).Debug("argument not marshaled")
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if rerr := buf.Release(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("%s: %w", op, rerr))
		}
	}()

	call(buf.Offset())
	return nil
}

// receive reads and releases the text buffer returned by call. A call that
// returns no buffer yields "".
func (e *Editor) receive(op string, call func() uint64) (string, error) {
	s, _, err := memory.Take(e.mem, call())
	if err != nil {
		e.log.WithError(err).WithField("op", op).Debug("result not decoded")
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}
