package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/patlog/patlog/core"
)

// Formatter renders one log event, with its logger and level context,
// into text.
type Formatter interface {
	// Format returns the rendered event as a string.
	Format(logger core.Logger, level core.Level, event *core.Event) string
	// FormatTo renders the event directly into w without an
	// intermediate string allocation.
	FormatTo(w io.Writer, logger core.Logger, level core.Level, event *core.Event) error
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
