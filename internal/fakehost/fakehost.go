// Package fakehost provides an in-process editor host for tests.
//
// Host implements both host.Host and memory.Allocator, so an editor facade
// can be built on top of it without a wasm runtime:
//
//	h := fakehost.New()
//	h.SetText("hello world")
//	h.SetSelections(h.FocusedView(), fakehost.Range{Start: 0, End: 5})
//	e := editor.New(h, h)
//
// Positions are character (rune) indices, as in the real host. Every call
// is recorded in Calls, every allocation is tracked so tests can assert that
// the guest released what it allocated and what it was handed.
package fakehost

import (
	"fmt"
	"sort"
	"strings"
)

// Range is a selection range on a view, in characters.
type Range struct {
	Start uint64
	End   uint64
}

// Document is the content shared by every view that shows it.
type Document struct {
	Text     string
	Path     *string
	Language string
}

type view struct {
	doc  *Document
	sels []Range
}

// Call is one recorded host entry point invocation.
type Call struct {
	Name string
	Args []uint64
}

func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(parts, ",") + ")"
}

// Trap is the panic value raised by calls listed in Host.PanicOn. It stands
// in for a wasm trap unwinding through guest code.
type Trap struct {
	Call string
}

func (t Trap) Error() string { return "host trap in " + t.Call }

// Host is a scriptable fake of the editor host.
type Host struct {
	views    map[uint64]*view
	order    []uint64
	focused  uint64
	nextView uint64

	// Files maps a path to the content Open loads for it.
	Files map[string]string

	// Status is the current status line; StatusSet is false after ClearStatus.
	Status    string
	StatusSet bool

	Executed []string
	Saved    []string
	Undos    int
	Redos    int
	Calls    []Call

	// PanicOn makes the named calls panic with a Trap.
	PanicOn map[string]bool
	// Garbage makes the named text-returning calls answer with invalid UTF-8.
	Garbage map[string]bool
	// FailAlloc makes every non-empty allocation return offset 0.
	FailAlloc bool

	mem        map[uint64][]byte
	nextOffset uint64
	// Allocs counts successful allocations; Frees counts successful frees.
	Allocs      int
	Frees       int
	DoubleFrees int
}

// New returns a host with one empty view, focused.
func New() *Host {
	h := &Host{
		views:      make(map[uint64]*view),
		Files:      make(map[string]string),
		PanicOn:    make(map[string]bool),
		Garbage:    make(map[string]bool),
		mem:        make(map[uint64][]byte),
		nextOffset: 0x1000,
	}
	h.focused = h.AddView(&Document{})
	return h
}

// AddView opens a new view on doc without focusing it and returns its id.
func (h *Host) AddView(doc *Document) uint64 {
	h.nextView++
	id := h.nextView
	h.views[id] = &view{doc: doc}
	h.order = append(h.order, id)
	return id
}

// FocusedView returns the id of the focused view.
func (h *Host) FocusedView() uint64 { return h.focused }

// Views returns the open view ids in creation order.
func (h *Host) Views() []uint64 {
	return append([]uint64(nil), h.order...)
}

// Document returns the document shown by v, or nil.
func (h *Host) Document(v uint64) *Document {
	if vw, ok := h.views[v]; ok {
		return vw.doc
	}
	return nil
}

// SetText replaces the text of the focused view's document.
func (h *Host) SetText(text string) {
	h.cur().doc.Text = text
}

// SetSelections replaces the selection list of v.
func (h *Host) SetSelections(v uint64, ranges ...Range) {
	if vw, ok := h.views[v]; ok {
		vw.sels = append([]Range(nil), ranges...)
	}
}

// Selections returns the selection list of v.
func (h *Host) Selections(v uint64) []Range {
	if vw, ok := h.views[v]; ok {
		return append([]Range(nil), vw.sels...)
	}
	return nil
}

// FocusCalls returns the arguments of every focus call, in order.
func (h *Host) FocusCalls() []uint64 {
	var out []uint64
	for _, c := range h.Calls {
		if c.Name == "focus" {
			out = append(out, c.Args[0])
		}
	}
	return out
}

// CallNames returns the names of every recorded call, in order.
func (h *Host) CallNames() []string {
	out := make([]string, len(h.Calls))
	for i, c := range h.Calls {
		out[i] = c.Name
	}
	return out
}

// ResetCalls clears the call log.
func (h *Host) ResetCalls() { h.Calls = nil }

func (h *Host) record(name string, args ...uint64) {
	h.Calls = append(h.Calls, Call{Name: name, Args: args})
	if h.PanicOn[name] {
		panic(Trap{Call: name})
	}
}

func (h *Host) cur() *view {
	return h.views[h.focused]
}

func (h *Host) sel(idx uint64) (Range, bool) {
	vw := h.cur()
	if vw == nil || idx >= uint64(len(vw.sels)) {
		return Range{}, false
	}
	return vw.sels[idx], true
}

func (h *Host) reply(call, s string) uint64 {
	if h.Garbage[call] {
		return h.hostAlloc([]byte{0xff, 0xfe, 0xfd})
	}
	return h.hostAlloc([]byte(s))
}

// edit applies fn to each selection of the focused view, last first, so
// earlier ranges keep their positions.
func (h *Host) edit(fn func(text []rune, r Range) []rune) {
	vw := h.cur()
	if vw == nil {
		return
	}
	sels := append([]Range(nil), vw.sels...)
	sort.Slice(sels, func(i, j int) bool { return sels[i].Start > sels[j].Start })
	text := []rune(vw.doc.Text)
	for _, r := range sels {
		r = clamp(r, len(text))
		text = fn(text, r)
	}
	vw.doc.Text = string(text)
}

func clamp(r Range, n int) Range {
	if r.Start > uint64(n) {
		r.Start = uint64(n)
	}
	if r.End > uint64(n) {
		r.End = uint64(n)
	}
	if r.End < r.Start {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

func splice(text []rune, from, to uint64, insert string) []rune {
	out := make([]rune, 0, len(text)+len(insert))
	out = append(out, text[:from]...)
	out = append(out, []rune(insert)...)
	out = append(out, text[to:]...)
	return out
}

func (h *Host) SelectionAdd(start, end uint64) uint64 {
	h.record("selection_add", start, end)
	vw := h.cur()
	vw.sels = append(vw.sels, Range{Start: start, End: end})
	return uint64(len(vw.sels) - 1)
}

func (h *Host) SelectionCount() uint64 {
	h.record("selection_count")
	if vw := h.cur(); vw != nil {
		return uint64(len(vw.sels))
	}
	return 0
}

func (h *Host) SelectionBegin(idx uint64) uint64 {
	h.record("selection_begin", idx)
	r, _ := h.sel(idx)
	return r.Start
}

func (h *Host) SelectionEnd(idx uint64) uint64 {
	h.record("selection_end", idx)
	r, _ := h.sel(idx)
	return r.End
}

func (h *Host) SelectionReset() {
	h.record("selection_reset")
	if vw := h.cur(); vw != nil {
		vw.sels = nil
	}
}

func (h *Host) SelectionInsertTextBefore(text uint64) {
	h.record("selection_insert_text_before", text)
	s := string(h.guestBytes(text))
	h.edit(func(t []rune, r Range) []rune { return splice(t, r.Start, r.Start, s) })
}

func (h *Host) SelectionInsertTextAfter(text uint64) {
	h.record("selection_insert_text_after", text)
	s := string(h.guestBytes(text))
	h.edit(func(t []rune, r Range) []rune { return splice(t, r.End, r.End, s) })
}

func (h *Host) SelectionReplaceText(text uint64) {
	h.record("selection_replace_text", text)
	s := string(h.guestBytes(text))
	h.edit(func(t []rune, r Range) []rune { return splice(t, r.Start, r.End, s) })
}

func (h *Host) Text(from, to uint64) uint64 {
	h.record("text", from, to)
	runes := []rune(h.cur().doc.Text)
	r := clamp(Range{Start: from, End: to}, len(runes))
	return h.reply("text", string(runes[r.Start:r.End]))
}

func (h *Host) ViewID() uint64 {
	h.record("view_id")
	return h.focused
}

func (h *Host) Focus(v uint64) {
	h.record("focus", v)
	if _, ok := h.views[v]; ok {
		h.focused = v
	}
}

func (h *Host) cycle(step int) {
	if len(h.order) == 0 {
		return
	}
	i := 0
	for j, id := range h.order {
		if id == h.focused {
			i = j
			break
		}
	}
	n := len(h.order)
	h.focused = h.order[((i+step)%n+n)%n]
}

func (h *Host) FocusNext() {
	h.record("focus_next")
	h.cycle(1)
}

func (h *Host) FocusPrev() {
	h.record("focus_prev")
	h.cycle(-1)
}

func (h *Host) split(name string) {
	h.record(name)
	id := h.AddView(h.cur().doc)
	h.focused = id
}

func (h *Host) VSplit() { h.split("vsplit") }
func (h *Host) HSplit() { h.split("hsplit") }

func (h *Host) Open(path uint64) {
	h.record("open", path)
	p := string(h.guestBytes(path))
	h.cur().doc = &Document{Text: h.Files[p], Path: &p}
	h.cur().sels = nil
}

func (h *Host) Save(path uint64) {
	h.record("save", path)
	doc := h.cur().doc
	if path != 0 {
		p := string(h.guestBytes(path))
		doc.Path = &p
	}
	if doc.Path != nil {
		h.Saved = append(h.Saved, *doc.Path)
	} else {
		h.Saved = append(h.Saved, "")
	}
}

func (h *Host) SetPath(path uint64) {
	h.record("set_path", path)
	p := string(h.guestBytes(path))
	h.cur().doc.Path = &p
}

func (h *Host) GetPath() uint64 {
	h.record("get_path")
	p := h.cur().doc.Path
	if p == nil {
		return 0
	}
	return h.reply("get_path", *p)
}

func (h *Host) Close() {
	h.record("close")
	delete(h.views, h.focused)
	for i, id := range h.order {
		if id == h.focused {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	if len(h.order) > 0 {
		h.focused = h.order[0]
	} else {
		h.focused = 0
	}
}

func (h *Host) Undo() {
	h.record("undo")
	h.Undos++
}

func (h *Host) Redo() {
	h.record("redo")
	h.Redos++
}

func (h *Host) SetStatus(text uint64) {
	h.record("set_status", text)
	h.Status = string(h.guestBytes(text))
	h.StatusSet = true
}

func (h *Host) ClearStatus() {
	h.record("clear_status")
	h.Status = ""
	h.StatusSet = false
}

func (h *Host) Execute(line uint64) {
	h.record("execute", line)
	l := string(h.guestBytes(line))
	h.Executed = append(h.Executed, l)
	if l == "select_all" {
		if vw := h.cur(); vw != nil {
			vw.sels = []Range{{Start: 0, End: uint64(len([]rune(vw.doc.Text)))}}
		}
	}
}

func (h *Host) LanguageName() uint64 {
	h.record("language_name")
	return h.reply("language_name", h.cur().doc.Language)
}

func (h *Host) LenLines() uint64 {
	h.record("len_lines")
	return uint64(strings.Count(h.cur().doc.Text, "\n") + 1)
}

func (h *Host) LenChars() uint64 {
	h.record("len_chars")
	return uint64(len([]rune(h.cur().doc.Text)))
}

func (h *Host) LenBytes() uint64 {
	h.record("len_bytes")
	return uint64(len(h.cur().doc.Text))
}
