package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/patlog/patlog/core"
)

// liftLine converts one raw input line into an event owned by lg.
// JSON lines have their well-known fields recognized; anything else
// falls back to keyword-based severity detection with the whole line
// as the message.
func liftLine(raw string, lg core.Logger) *core.Event {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if event, ok := jsonEvent(trimmed, lg); ok {
			return event
		}
	}
	return keywordEvent(raw, lg)
}

// jsonEvent lifts a JSON log line. Recognized field names follow the
// common conventions: level/severity, message/msg, timestamp/time/ts
// (RFC 3339), file, and line.
func jsonEvent(raw string, lg core.Logger) (*core.Event, bool) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, false
	}

	level := core.InfoLevel
	if v, ok := strField(data, "level", "severity"); ok {
		level = core.ParseLevel(v)
	}

	at := time.Now()
	if v, ok := strField(data, "timestamp", "time", "ts"); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			at = t
		}
	}

	file := ""
	if v, ok := strField(data, "file"); ok {
		file = v
	}
	line := 0
	if v, ok := data["line"].(float64); ok {
		line = int(v)
	}

	event := core.NewEvent(lg, level, file, line, 0, 0, 0, at, "")
	if v, ok := strField(data, "message", "msg"); ok {
		event.AppendMessage(v)
	} else {
		event.AppendMessage(raw)
	}
	return event, true
}

// keywordEvent detects severity from keywords in the line and keeps
// the whole line as the message.
func keywordEvent(raw string, lg core.Logger) *core.Event {
	level := core.InfoLevel
	upper := strings.ToUpper(raw)

	switch {
	case strings.Contains(upper, "FATAL"):
		level = core.FatalLevel
	case strings.Contains(upper, "ERROR"):
		level = core.ErrorLevel
	case strings.Contains(upper, "WARN"):
		level = core.WarnLevel
	case strings.Contains(upper, "DEBUG"):
		level = core.DebugLevel
	}

	event := core.NewEvent(lg, level, "", 0, 0, 0, 0, time.Now(), "")
	event.AppendMessage(raw)
	return event
}

// strField returns the first matching string value from a map.
func strField(data map[string]interface{}, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := data[k]; ok {
			s := fmt.Sprintf("%v", v)
			if s != "" {
				return s, true
			}
		}
	}
	return "", false
}
