//go:build wasip1

package host

//go:wasmimport helix:editor/env selection_add
func selectionAdd(start, end uint64) uint64

//go:wasmimport helix:editor/env selection_count
func selectionCount() uint64

//go:wasmimport helix:editor/env selection_begin
func selectionBegin(idx uint64) uint64

//go:wasmimport helix:editor/env selection_end
func selectionEnd(idx uint64) uint64

//go:wasmimport helix:editor/env selection_reset
func selectionReset()

//go:wasmimport helix:editor/env selection_insert_text_before
func selectionInsertTextBefore(text uint64)

//go:wasmimport helix:editor/env selection_insert_text_after
func selectionInsertTextAfter(text uint64)

//go:wasmimport helix:editor/env selection_replace_text
func selectionReplaceText(text uint64)

//go:wasmimport helix:editor/env text
func text(from, to uint64) uint64

//go:wasmimport helix:editor/env view_id
func viewID() uint64

//go:wasmimport helix:editor/env focus
func focus(view uint64)

//go:wasmimport helix:editor/env focus_next
func focusNext()

//go:wasmimport helix:editor/env focus_prev
func focusPrev()

//go:wasmimport helix:editor/env vsplit
func vsplit()

//go:wasmimport helix:editor/env hsplit
func hsplit()

//go:wasmimport helix:editor/env open
func open(path uint64)

//go:wasmimport helix:editor/env save
func save(path uint64)

//go:wasmimport helix:editor/env set_path
func setPath(path uint64)

//go:wasmimport helix:editor/env get_path
func getPath() uint64

//go:wasmimport helix:editor/env close
func closeDoc()

//go:wasmimport helix:editor/env undo
func undo()

//go:wasmimport helix:editor/env redo
func redo()

//go:wasmimport helix:editor/env set_status
func setStatus(text uint64)

//go:wasmimport helix:editor/env clear_status
func clearStatus()

//go:wasmimport helix:editor/env execute
func execute(line uint64)

//go:wasmimport helix:editor/env language_name
func languageName() uint64

//go:wasmimport helix:editor/env len_lines
func lenLines() uint64

//go:wasmimport helix:editor/env len_chars
func lenChars() uint64

//go:wasmimport helix:editor/env len_bytes
func lenBytes() uint64

// Env is the Host backed by the wasm imports of the running plugin instance.
type Env struct{}

var _ Host = Env{}

func (Env) SelectionAdd(start, end uint64) uint64 { return selectionAdd(start, end) }
func (Env) SelectionCount() uint64 { return selectionCount() }
func (Env) SelectionBegin(idx uint64) uint64 { return selectionBegin(idx) }
func (Env) SelectionEnd(idx uint64) uint64 { return selectionEnd(idx) }
func (Env) SelectionReset() { selectionReset() }
func (Env) SelectionInsertTextBefore(t uint64) { selectionInsertTextBefore(t) }
func (Env) SelectionInsertTextAfter(t uint64) { selectionInsertTextAfter(t) }
func (Env) SelectionReplaceText(t uint64) { selectionReplaceText(t) }
func (Env) Text(from, to uint64) uint64 { return text(from, to) }
func (Env) ViewID() uint64 { return viewID() }
func (Env) Focus(view uint64) { focus(view) }
func (Env) FocusNext() { focusNext() }
func (Env) FocusPrev() { focusPrev() }
func (Env) VSplit() { vsplit() }
func (Env) HSplit() { hsplit() }
func (Env) Open(path uint64) { open(path) }
func (Env) Save(path uint64) { save(path) }
func (Env) SetPath(path uint64) { setPath(path) }
func (Env) GetPath() uint64 { return getPath() }
func (Env) Close() { closeDoc() }
func (Env) Undo() { undo() }
func (Env) Redo() { redo() }
func (Env) SetStatus(t uint64) { setStatus(t) }
func (Env) ClearStatus() { clearStatus() }
func (Env) Execute(line uint64) { execute(line) }
func (Env) LanguageName() uint64 { return languageName() }
func (Env) LenLines() uint64 { return lenLines() }
func (Env) LenChars() uint64 { return lenChars() }
func (Env) LenBytes() uint64 { return lenBytes() }
