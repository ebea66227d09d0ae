package formatter

import (
	"bytes"
	"strconv"

	"github.com/lestrrat-go/strftime"

	"github.com/patlog/patlog/core"
)

// itemKind selects which event field a compiled item projects.
type itemKind uint8

const (
	itemLiteral itemKind = iota
	itemMessage
	itemLevel
	itemElapsed
	itemLoggerName
	itemThreadID
	itemFiberID
	itemThreadName
	itemDateTime
	itemFilename
	itemLine
	itemTab
	itemNewline
	itemError
)

// item is one compiled renderer in the chain. Items are immutable after
// compilation and hold no per-render state, so the same chain can serve
// concurrent render calls.
type item struct {
	kind   itemKind
	text   string             // captured text, itemLiteral and itemError only
	layout *strftime.Strftime // compiled time layout, itemDateTime only
}

func (it item) render(buf *bytes.Buffer, logger core.Logger, level core.Level, event *core.Event) {
	switch it.kind {
	case itemLiteral, itemError:
		buf.WriteString(it.text)
	case itemMessage:
		buf.WriteString(event.Message())
	case itemLevel:
		buf.WriteString(level.String())
	case itemElapsed:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(event.ElapsedMillis()), 10))
	case itemLoggerName:
		if logger == nil {
			logger = event.Logger()
		}
		if logger != nil {
			buf.WriteString(logger.Name())
		}
	case itemThreadID:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(event.ThreadID()), 10))
	case itemFiberID:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(event.FiberID()), 10))
	case itemThreadName:
		buf.WriteString(event.ThreadName())
	case itemDateTime:
		// Writing into a bytes.Buffer cannot fail.
		_ = it.layout.Format(buf, event.Time())
	case itemFilename:
		buf.WriteString(event.File())
	case itemLine:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(event.Line()), 10))
	case itemTab:
		buf.WriteByte('\t')
	case itemNewline:
		buf.WriteByte('\n')
	}
}
