package formatter

import (
	"fmt"
	"os"

	"github.com/lestrrat-go/strftime"
)

// defaultTimeLayout is the %d argument used when none is given.
const defaultTimeLayout = "%Y-%m-%d %H:%M:%S"

// directives maps each directive letter to its item constructor. The
// returned bool is false when the argument was unusable; only %d ever
// inspects the argument, every other directive ignores it. The table is
// built once at package initialization and never mutated, keeping
// compile a pure function of its input.
var directives = map[string]func(arg string) (item, bool){
	"m": func(string) (item, bool) { return item{kind: itemMessage}, true },
	"p": func(string) (item, bool) { return item{kind: itemLevel}, true },
	"r": func(string) (item, bool) { return item{kind: itemElapsed}, true },
	"c": func(string) (item, bool) { return item{kind: itemLoggerName}, true },
	"t": func(string) (item, bool) { return item{kind: itemThreadID}, true },
	"n": func(string) (item, bool) { return item{kind: itemNewline}, true },
	"d": newDateTimeItem,
	"f": func(string) (item, bool) { return item{kind: itemFilename}, true },
	"l": func(string) (item, bool) { return item{kind: itemLine}, true },
	"T": func(string) (item, bool) { return item{kind: itemTab}, true },
	"F": func(string) (item, bool) { return item{kind: itemFiberID}, true },
	"N": func(string) (item, bool) { return item{kind: itemThreadName}, true },
}

// newDateTimeItem compiles the strftime argument once, at pattern
// compile time. An argument the strftime compiler rejects falls back to
// the default layout; the pattern is then flagged but still renders.
func newDateTimeItem(arg string) (item, bool) {
	layout := arg
	if layout == "" {
		layout = defaultTimeLayout
	}
	f, err := strftime.New(layout)
	if err != nil {
		f, _ = strftime.New(defaultTimeLayout)
		return item{kind: itemDateTime, layout: f}, false
	}
	return item{kind: itemDateTime, layout: f}, true
}

// compile parses a layout pattern into its item chain with a single
// left-to-right scan. It never aborts: malformed segments become
// placeholder items, the sticky hadError flag is set, and the rest of
// the pattern still compiles.
func compile(pattern string) (items []item, hadError bool) {
	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			items = append(items, item{kind: itemLiteral, text: string(lit)})
			lit = lit[:0]
		}
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			lit = append(lit, c)
			continue
		}

		// %% escapes a literal percent sign. Both characters are
		// consumed; the next position is re-tested from the top so an
		// immediately following directive still parses.
		if i+1 < len(pattern) && pattern[i+1] == '%' {
			lit = append(lit, '%')
			i++
			continue
		}

		// A directive. The candidate name is the maximal alphabetic
		// run after the '%'.
		j := i + 1
		for j < len(pattern) && isAlpha(pattern[j]) {
			j++
		}
		name := pattern[i+1 : j]

		if j < len(pattern) && pattern[j] == '{' {
			end := j + 1
			for end < len(pattern) && pattern[end] != '}' {
				end++
			}
			if end == len(pattern) {
				// Unmatched '{': the whole tail is unusable. Emit one
				// placeholder carrying the broken fragment and stop.
				fmt.Fprintf(os.Stderr, "pattern parse error: %q at %q\n", pattern, pattern[i:])
				flush()
				items = append(items, item{kind: itemError, text: "<<pattern_error " + pattern[i:] + ">>"})
				return items, true
			}
			flush()
			if ctor, ok := directives[name]; ok {
				it, clean := ctor(pattern[j+1 : end])
				if !clean {
					hadError = true
				}
				items = append(items, it)
			} else {
				items = append(items, item{kind: itemError, text: "<<error_format %" + name + ">>"})
				hadError = true
			}
			i = end
			continue
		}

		flush()
		if ctor, ok := directives[name]; ok {
			it, _ := ctor("")
			items = append(items, it)
			i = j - 1
			continue
		}
		// Longest-run lookup failed. Fall back to the first letter
		// alone, so %pFoo parses as directive p followed by literal
		// text; the remaining letters re-enter the scan as ordinary
		// characters.
		if len(name) > 1 {
			if ctor, ok := directives[name[:1]]; ok {
				it, _ := ctor("")
				items = append(items, it)
				i++
				continue
			}
		}
		items = append(items, item{kind: itemError, text: "<<error_format %" + name + ">>"})
		hadError = true
		i = j - 1
	}
	flush()
	return items, hadError
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
