package editor

import "cmp"

// View identifies an editing pane. Ids are assigned and owned by the host;
// the guest only passes them back.
type View uint64

// Selection is the coordinate of one entry in a view's selection list.
//
// It is valid only while Index is below the live selection count of View.
// Bounds are never cached: each query re-reads host state, so a Selection
// held across a mutating call may refer to a different range or to nothing.
type Selection struct {
	View  View
	Index uint64
}

// Compare orders selections by view, then index.
func (s Selection) Compare(o Selection) int {
	if c := cmp.Compare(s.View, o.View); c != 0 {
		return c
	}
	return cmp.Compare(s.Index, o.Index)
}

// Less reports whether s sorts before o.
func (s Selection) Less(o Selection) bool {
	return s.Compare(o) < 0
}

// Insert selects where InsertText places text relative to the selection.
type Insert int

const (
	// InsertBefore inserts at the start of the selection.
	InsertBefore Insert = iota
	// InsertAfter inserts at the end of the selection.
	InsertAfter
)

func (i Insert) String() string {
	switch i {
	case InsertBefore:
		return "before"
	case InsertAfter:
		return "after"
	default:
		return "unknown"
	}
}
