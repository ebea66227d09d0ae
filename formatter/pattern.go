package formatter

import (
	"bytes"
	"io"

	"github.com/patlog/patlog/core"
)

// DefaultPattern is the production layout used when no custom pattern
// is supplied.
const DefaultPattern = "%d{%Y-%m-%d %H:%M:%S}%T%t%T%N%T%F%T[%p]%T[%c]%T%f:%l%T%m%n"

// PatternFormatter renders events through an item chain compiled from a
// layout pattern. The chain is built eagerly in New and never changes,
// so a single PatternFormatter may be shared by concurrent render
// calls.
type PatternFormatter struct {
	pattern string
	items   []item
	err     bool
}

// New compiles pattern into a PatternFormatter. A malformed pattern
// still yields a working formatter; check IsError to reject it.
func New(pattern string) *PatternFormatter {
	items, hadError := compile(pattern)
	return &PatternFormatter{
		pattern: pattern,
		items:   items,
		err:     hadError,
	}
}

// Format returns the rendered event as a string.
func (f *PatternFormatter) Format(logger core.Logger, level core.Level, event *core.Event) string {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(buf, logger, level, event)
	return buf.String()
}

// FormatTo renders the event directly into w.
func (f *PatternFormatter) FormatTo(w io.Writer, logger core.Logger, level core.Level, event *core.Event) error {
	buf := getBuffer()

	f.formatToBuffer(buf, logger, level, event)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (f *PatternFormatter) formatToBuffer(buf *bytes.Buffer, logger core.Logger, level core.Level, event *core.Event) {
	for _, it := range f.items {
		it.render(buf, logger, level, event)
	}
}

// IsError reports whether compilation hit an unmatched brace or an
// unknown directive. The flag is sticky: it is set once at compile
// time and surfaces a static configuration defect, not a render
// failure.
func (f *PatternFormatter) IsError() bool { return f.err }

// Pattern returns the source layout the formatter was compiled from.
func (f *PatternFormatter) Pattern() string { return f.pattern }
