package logger

import "testing"

func TestNew(t *testing.T) {
	if got := New("app.db").Name(); got != "app.db" {
		t.Errorf("Name() = %q, want %q", got, "app.db")
	}
	if got := New("").Name(); got != "root" {
		t.Errorf("empty name: Name() = %q, want %q", got, "root")
	}
}
