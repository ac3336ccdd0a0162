package samples

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/sjson"
)

// Stats summarizes the focused document.
type Stats struct {
	Lines    uint64
	Chars    uint64
	Bytes    uint64
	Language string
	Path     string
	HasPath  bool
}

// Status renders s for the status line, e.g.
// "1,204 lines, 38,112 chars, 39 kB [go]".
func (s Stats) Status(showLanguage bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s lines, %s chars, %s",
		humanize.Comma(int64(s.Lines)),
		humanize.Comma(int64(s.Chars)),
		humanize.Bytes(s.Bytes))
	if showLanguage && s.Language != "" {
		fmt.Fprintf(&b, " [%s]", s.Language)
	}
	return b.String()
}

// JSON renders s as {"lines","chars","bytes","language","path"}; path is
// null for documents without one.
func (s Stats) JSON() ([]byte, error) {
	out := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err == nil {
			out, err = sjson.SetBytes(out, path, v)
		}
	}
	set("lines", s.Lines)
	set("chars", s.Chars)
	set("bytes", s.Bytes)
	set("language", s.Language)
	if s.HasPath {
		set("path", s.Path)
	} else if err == nil {
		out, err = sjson.SetRawBytes(out, "path", []byte("null"))
	}
	if err != nil {
		return nil, fmt.Errorf("encode stats: %w", err)
	}
	return out, nil
}

// CollectStats reads the focused document's metrics.
func (p *Plugin) CollectStats() (Stats, error) {
	s := Stats{
		Lines: p.editor.LenLines(),
		Chars: p.editor.LenChars(),
		Bytes: p.editor.LenBytes(),
	}

	lang, err := p.editor.LanguageName()
	if err != nil {
		return Stats{}, err
	}
	s.Language = lang

	s.Path, s.HasPath, err = p.editor.Path()
	if err != nil {
		return Stats{}, err
	}
	return s, nil
}

// DocStats shows a summary of the focused document on the status line and
// returns it as JSON.
func (p *Plugin) DocStats() ([]byte, error) {
	s, err := p.CollectStats()
	if err != nil {
		return nil, fmt.Errorf("doc_stats: %w", err)
	}
	if err := p.editor.SetStatus(s.Status(p.cfg.Stats.ShowLanguage)); err != nil {
		return nil, fmt.Errorf("doc_stats: %w", err)
	}
	return s.JSON()
}
