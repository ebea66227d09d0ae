package core

import (
	"testing"
	"time"
)

type namedLogger struct{ name string }

func (l *namedLogger) Name() string { return l.name }

func TestEvent_Accessors(t *testing.T) {
	lg := &namedLogger{name: "app.db"}
	at := time.Unix(1700000000, 0)

	e := NewEvent(lg, WarnLevel, "store.go", 87, 1500, 7, 3, at, "worker-1")

	if e.File() != "store.go" {
		t.Errorf("File() = %q, want %q", e.File(), "store.go")
	}
	if e.Line() != 87 {
		t.Errorf("Line() = %d, want 87", e.Line())
	}
	if e.ElapsedMillis() != 1500 {
		t.Errorf("ElapsedMillis() = %d, want 1500", e.ElapsedMillis())
	}
	if e.ThreadID() != 7 {
		t.Errorf("ThreadID() = %d, want 7", e.ThreadID())
	}
	if e.FiberID() != 3 {
		t.Errorf("FiberID() = %d, want 3", e.FiberID())
	}
	if !e.Time().Equal(at) {
		t.Errorf("Time() = %v, want %v", e.Time(), at)
	}
	if e.ThreadName() != "worker-1" {
		t.Errorf("ThreadName() = %q, want %q", e.ThreadName(), "worker-1")
	}
	if e.Logger() != Logger(lg) {
		t.Error("Logger() did not return the owning logger")
	}
	if e.Level() != WarnLevel {
		t.Errorf("Level() = %v, want %v", e.Level(), WarnLevel)
	}
	if e.Message() != "" {
		t.Errorf("new event message = %q, want empty", e.Message())
	}
}

func TestEvent_MessageAccumulation(t *testing.T) {
	e := NewEvent(nil, InfoLevel, "a.go", 1, 0, 0, 0, time.Unix(0, 0), "")

	e.AppendMessage("connection ")
	e.Appendf("from %s refused after %d tries", "10.0.0.7", 3)

	want := "connection from 10.0.0.7 refused after 3 tries"
	if e.Message() != want {
		t.Errorf("Message() = %q, want %q", e.Message(), want)
	}

	// The accumulator grows; reads do not consume it.
	if e.Message() != want {
		t.Errorf("second Message() read = %q, want %q", e.Message(), want)
	}
}
