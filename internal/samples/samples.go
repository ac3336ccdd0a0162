package samples

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/dshills/helixpdk/editor"
	"github.com/dshills/helixpdk/internal/config"
)

// Plugin runs the exported functions against one editor.
type Plugin struct {
	editor *editor.Editor
	cfg    *config.Config
	log    *logrus.Entry
}

// New returns a Plugin. A nil cfg uses config.Default and a nil log
// discards output.
func New(e *editor.Editor, cfg *config.Config, log *logrus.Entry) *Plugin {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		log = logrus.NewEntry(quiet)
	}
	return &Plugin{editor: e, cfg: cfg, log: log}
}

// split opens the configured kind of split and focuses it.
func (p *Plugin) split() {
	if p.cfg.Split.Direction == config.Horizontal {
		p.editor.HSplit()
		return
	}
	p.editor.VSplit()
}

// VSplitSelection copies the text of the focused view's first selection
// into a new split, before a fresh empty selection at the top.
func (p *Plugin) VSplitSelection() error {
	sel := editor.Selection{View: p.editor.View(), Index: 0}
	text, err := p.editor.SelectionText(sel)
	if err != nil {
		return fmt.Errorf("vsplit_sel: %w", err)
	}

	p.split()
	p.editor.AddSelection(0, 0)
	if err := p.editor.InsertText(text, editor.InsertBefore); err != nil {
		return fmt.Errorf("vsplit_sel: %w", err)
	}

	p.log.WithFields(logrus.Fields{
		"from":  sel.View,
		"to":    p.editor.View(),
		"chars": len([]rune(text)),
	}).Debug("selection copied to split")
	return nil
}

// OpenSelections treats each selection of the focused view as a path and
// opens it in a new split. Empty selections are skipped. It returns the
// number of files opened.
func (p *Plugin) OpenSelections() (int, error) {
	opened := 0
	for sel := range p.editor.Selections() {
		path, err := p.editor.SelectionText(sel)
		if err != nil {
			return opened, fmt.Errorf("open_sel: selection %d: %w", sel.Index, err)
		}
		if path == "" {
			p.log.WithField("index", sel.Index).Debug("empty selection skipped")
			continue
		}

		p.split()
		if err := p.editor.Open(path); err != nil {
			return opened, fmt.Errorf("open_sel: %s: %w", path, err)
		}
		opened++
		p.log.WithField("path", path).Info("opened")
	}
	return opened, nil
}
