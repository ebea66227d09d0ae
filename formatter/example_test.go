package formatter_test

import (
	"fmt"
	"os"
	"time"

	"github.com/patlog/patlog/core"
	"github.com/patlog/patlog/formatter"
	"github.com/patlog/patlog/logger"
)

func ExamplePatternFormatter() {
	lg := logger.New("server")
	event := core.NewEvent(lg, core.InfoLevel, "listen.go", 42, 0, 0, 0, time.Unix(0, 0), "main")
	event.AppendMessage("listening on :8080")

	f := formatter.New("[%p] %c %f:%l %m%n")
	fmt.Print(f.Format(lg, core.InfoLevel, event))
	// Output: [INFO] server listen.go:42 listening on :8080
}

func ExamplePatternFormatter_FormatTo() {
	lg := logger.New("server")
	event := core.NewEvent(lg, core.WarnLevel, "pool.go", 7, 0, 0, 0, time.Unix(0, 0), "main")
	event.Appendf("pool at %d%% capacity", 95)

	f := formatter.New("%p%T%m%n")
	_ = f.FormatTo(os.Stdout, lg, core.WarnLevel, event)
	// Output: WARN	pool at 95% capacity
}

func ExamplePatternFormatter_IsError() {
	f := formatter.New("%d{%H:%M %q")
	fmt.Println(f.IsError())
	// Output: true
}
