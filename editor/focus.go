package editor

import "github.com/sirupsen/logrus"

type focusState int

const (
	focusUnarmed focusState = iota
	focusArmed
	focusDisarmed
)

// FocusGuard temporarily focuses a view and restores the previously focused
// view on Release. Always pair AcquireFocus with a deferred Release.
//
// Guards may nest: an inner guard restores the outer guard's target, the
// outer one then restores the original view. Guards are not safe for
// concurrent use.
type FocusGuard struct {
	e      *Editor
	prev   View
	target View
	state  focusState
}

// AcquireFocus records the focused view and focuses target if it differs.
func (e *Editor) AcquireFocus(target View) *FocusGuard {
	g := &FocusGuard{e: e, target: target}
	g.prev = e.View()
	if target != g.prev {
		e.log.WithFields(logrus.Fields{"from": g.prev, "to": target}).Debug("focus guard switching view")
		e.host.Focus(uint64(target))
	}
	g.state = focusArmed
	return g
}

// WithFocus runs fn with target focused and restores focus afterwards,
// whether fn returns normally, returns an error or panics.
func (e *Editor) WithFocus(target View, fn func() error) error {
	g := e.AcquireFocus(target)
	defer g.Release()
	return fn()
}

// Previous returns the view focused before the guard was acquired.
func (g *FocusGuard) Previous() View { return g.prev }

// Target returns the view the guard focuses.
func (g *FocusGuard) Target() View { return g.target }

// Armed reports whether the guard still has to restore focus.
func (g *FocusGuard) Armed() bool { return g.state == focusArmed }

// Refocus focuses the target again, for use after a call that may have moved
// focus as a side effect, such as opening a split.
func (g *FocusGuard) Refocus() {
	if g.state != focusArmed {
		return
	}
	g.e.host.Focus(uint64(g.target))
}

// Release restores the previously focused view. The restore is issued even
// when the previous view equals the target. Only the first call has an
// effect.
func (g *FocusGuard) Release() {
	if g.state != focusArmed {
		return
	}
	g.state = focusDisarmed
	g.e.host.Focus(uint64(g.prev))
}
