package formatter_test

import (
	"io"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/patlog/patlog/core"
	"github.com/patlog/patlog/formatter"
	"github.com/patlog/patlog/logger"
)

func BenchmarkPatternFormatter_Format(b *testing.B) {
	lg := logger.New("root")
	f := formatter.New(formatter.DefaultPattern)
	event := testEventB(lg)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = f.Format(lg, core.InfoLevel, event)
	}
}

func BenchmarkPatternFormatter_FormatTo(b *testing.B) {
	lg := logger.New("root")
	f := formatter.New(formatter.DefaultPattern)
	event := testEventB(lg)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = f.FormatTo(io.Discard, lg, core.InfoLevel, event)
	}
}

// Renders a comparable console line through zap's encoder, as a
// baseline for the pattern chain. Identical sink (io.Discard) for both.
func BenchmarkCompetitive_ConsoleLine(b *testing.B) {
	b.Run("patlog", func(b *testing.B) {
		lg := logger.New("root")
		f := formatter.New("%d{%Y-%m-%d %H:%M:%S}%T[%p]%T[%c]%T%f:%l%T%m%n")
		event := testEventB(lg)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = f.FormatTo(io.Discard, lg, core.InfoLevel, event)
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
		ent := zapcore.Entry{
			Time:       time.Unix(0, 0),
			Level:      zapcore.InfoLevel,
			LoggerName: "root",
			Message:    "hello",
			Caller:     zapcore.NewEntryCaller(0, "a.cc", 10, true),
		}
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			buf, err := enc.EncodeEntry(ent, nil)
			if err != nil {
				b.Fatal(err)
			}
			_, _ = io.Discard.Write(buf.Bytes())
			buf.Free()
		}
	})
}

// testEventB builds the benchmark event outside the timed loop. Item
// rendering reads the frozen buffer, so reusing one event is safe.
func testEventB(lg core.Logger) *core.Event {
	e := core.NewEvent(lg, core.InfoLevel, "a.cc", 10, 1500, 7, 3, time.Unix(0, 0), "worker")
	e.AppendMessage("hello")
	return e
}
