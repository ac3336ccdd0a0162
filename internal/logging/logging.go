// Package logging builds the plugin's logrus logger.
//
// Plugins have no stdout worth writing to, so the logger discards its own
// output and forwards every entry to a Sink, normally the host's log
// channel.
package logging

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Sink receives formatted log lines.
type Sink interface {
	Log(level logrus.Level, line string)
}

// Config configures the logger.
type Config struct {
	// Level is the minimum level forwarded to the sink.
	Level logrus.Level
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{Level: logrus.InfoLevel}
}

// New returns a logger that forwards entries at or above cfg.Level to
// sink. A nil sink drops everything.
func New(cfg Config, sink Sink) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(cfg.Level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	if sink != nil {
		log.AddHook(&SinkHook{Sink: sink, Formatter: log.Formatter})
	}
	return log
}

// WithComponent returns an entry with the component field set.
func WithComponent(log logrus.FieldLogger, component string) *logrus.Entry {
	return log.WithField("component", component)
}

// ForInvocation returns an entry tagging everything logged during one call
// of an exported plugin function.
func ForInvocation(log logrus.FieldLogger, fn string) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"plugin_fn":  fn,
		"invocation": uuid.NewString(),
	})
}

// SinkHook forwards formatted entries to a Sink.
type SinkHook struct {
	Sink      Sink
	Formatter logrus.Formatter
}

// Levels returns all levels; the logger's own level does the filtering.
func (h *SinkHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire formats entry and passes it to the sink.
func (h *SinkHook) Fire(entry *logrus.Entry) error {
	b, err := h.Formatter.Format(entry)
	if err != nil {
		return err
	}
	h.Sink.Log(entry.Level, strings.TrimRight(string(b), "\n"))
	return nil
}

// Record is one line captured by a Recorder.
type Record struct {
	Level logrus.Level
	Line  string
}

// Recorder is a Sink that keeps every line in memory.
type Recorder struct {
	Records []Record
}

// Log implements Sink.
func (r *Recorder) Log(level logrus.Level, line string) {
	r.Records = append(r.Records, Record{Level: level, Line: line})
}

// Lines returns the recorded lines.
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.Records))
	for i, rec := range r.Records {
		lines[i] = rec.Line
	}
	return lines
}
