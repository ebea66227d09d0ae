// Package logger provides the named log source a formatted event
// belongs to. The formatter core only reads the name; hierarchy,
// filtering, and output routing are deliberately absent.
package logger

import "github.com/patlog/patlog/core"

// Logger is a named log source.
type Logger struct {
	name string
}

var _ core.Logger = (*Logger)(nil)

// New returns a logger with the given name. An empty name becomes
// "root".
func New(name string) *Logger {
	if name == "" {
		name = "root"
	}
	return &Logger{name: name}
}

// Name returns the logger's name, as rendered by the %c directive.
func (l *Logger) Name() string { return l.name }
