package host

// ImportModule is the wasm import module the editor entry points live under.
const ImportModule = "helix:editor/env"

// Host is the numeric ABI of the editor. Calls that mention "the focused
// view" act on whichever view the host currently considers current.
type Host interface {
	// SelectionAdd creates a selection on the focused view and returns its index.
	SelectionAdd(start, end uint64) uint64
	// SelectionCount returns the live selection count of the focused view.
	SelectionCount() uint64
	// SelectionBegin returns the start bound of selection idx on the focused view.
	SelectionBegin(idx uint64) uint64
	// SelectionEnd returns the end bound of selection idx on the focused view.
	SelectionEnd(idx uint64) uint64
	// SelectionReset clears the selections of the focused view.
	SelectionReset()
	SelectionInsertTextBefore(text uint64)
	SelectionInsertTextAfter(text uint64)
	SelectionReplaceText(text uint64)

	// Text returns a buffer offset holding the focused view's text in [from, to).
	Text(from, to uint64) uint64

	// ViewID returns the id of the focused view.
	ViewID() uint64
	Focus(view uint64)
	FocusNext()
	FocusPrev()
	VSplit()
	HSplit()

	// Open, Save and SetPath take a path offset; 0 selects the default.
	Open(path uint64)
	Save(path uint64)
	SetPath(path uint64)
	// GetPath returns a path offset, or 0 when the document has no path.
	GetPath() uint64

	Close()
	Undo()
	Redo()

	SetStatus(text uint64)
	ClearStatus()

	// Execute runs one command line.
	Execute(line uint64)

	LanguageName() uint64
	LenLines() uint64
	LenChars() uint64
	LenBytes() uint64
}
