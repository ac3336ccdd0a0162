package editor

import "strings"

// Command builds one line for the host's command channel.
//
// The first argument is the command name; every further argument is
// wrapped in double quotes and separated by a space. Quotes and
// backslashes inside arguments are not escaped, so an argument containing
// '"' produces a malformed line.
type Command struct {
	typed bool
	args  []string
}

// NewCommand starts a plain command, such as "select_all".
func NewCommand(name string) *Command {
	return &Command{args: []string{name}}
}

// NewTypedCommand starts a ':'-prefixed typed command, such as ":w".
func NewTypedCommand(name string) *Command {
	return &Command{args: []string{name}, typed: true}
}

// Typed sets whether the line is prefixed with ':'.
func (c *Command) Typed(t bool) *Command {
	c.typed = t
	return c
}

// Arg appends one argument.
func (c *Command) Arg(arg string) *Command {
	c.args = append(c.args, arg)
	return c
}

// Args appends arguments in order.
func (c *Command) Args(args ...string) *Command {
	c.args = append(c.args, args...)
	return c
}

// Name returns the command name.
func (c *Command) Name() string { return c.args[0] }

// IsTyped reports whether the line is prefixed with ':'.
func (c *Command) IsTyped() bool { return c.typed }

// String returns the command line sent by Execute.
func (c *Command) String() string {
	var b strings.Builder
	if c.typed {
		b.WriteByte(':')
	}
	b.WriteString(c.args[0])
	for _, arg := range c.args[1:] {
		b.WriteString(` "`)
		b.WriteString(arg)
		b.WriteByte('"')
	}
	return b.String()
}

// Execute sends the command line to e. Executing the same Command again sends
// the same line again.
func (c *Command) Execute(e *Editor) error {
	return e.Execute(c.String())
}
