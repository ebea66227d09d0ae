package core

import (
	"bytes"
	"fmt"
	"time"
)

// Logger is the capability an Event carries to its owning logger. The
// formatter only reads the name; routing and filtering stay with the
// caller. The reference must stay valid for the duration of any render
// call that uses the event.
type Logger interface {
	Name() string
}

// Event is a single log occurrence. All identity fields are fixed at
// construction; only the message buffer grows, via AppendMessage and
// Appendf, until rendering begins.
type Event struct {
	file       string
	line       int
	elapsed    uint32 // milliseconds since program start
	threadID   uint32
	fiberID    uint32
	time       time.Time
	threadName string
	logger     Logger
	level      Level
	msg        bytes.Buffer
}

// NewEvent builds an event with every identity field populated and an
// empty message buffer.
func NewEvent(logger Logger, level Level, file string, line int,
	elapsedMillis, threadID, fiberID uint32, at time.Time, threadName string) *Event {
	return &Event{
		file:       file,
		line:       line,
		elapsed:    elapsedMillis,
		threadID:   threadID,
		fiberID:    fiberID,
		time:       at,
		threadName: threadName,
		logger:     logger,
		level:      level,
	}
}

// File returns the source file path the event was logged from.
func (e *Event) File() string { return e.file }

// Line returns the source line number.
func (e *Event) Line() int { return e.line }

// ElapsedMillis returns the milliseconds elapsed since program start.
func (e *Event) ElapsedMillis() uint32 { return e.elapsed }

// ThreadID returns the OS thread identifier.
func (e *Event) ThreadID() uint32 { return e.threadID }

// FiberID returns the lightweight-task identifier.
func (e *Event) FiberID() uint32 { return e.fiberID }

// Time returns the wall-clock timestamp of the event.
func (e *Event) Time() time.Time { return e.time }

// ThreadName returns the display name of the logging thread.
func (e *Event) ThreadName() string { return e.threadName }

// Logger returns the owning logger.
func (e *Event) Logger() Logger { return e.logger }

// Level returns the severity the event was logged at.
func (e *Event) Level() Level { return e.level }

// Message returns the accumulated message payload.
func (e *Event) Message() string { return e.msg.String() }

// AppendMessage appends a fragment to the message buffer.
func (e *Event) AppendMessage(s string) {
	e.msg.WriteString(s)
}

// Appendf appends a printf-formatted fragment to the message buffer.
func (e *Event) Appendf(format string, args ...any) {
	fmt.Fprintf(&e.msg, format, args...)
}
