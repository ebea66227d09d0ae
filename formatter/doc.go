// Package formatter compiles layout patterns and renders log events
// through them.
//
// A pattern such as
//
//	%d{%Y-%m-%d %H:%M:%S}%T%t%T[%p]%T%f:%l%T%m%n
//
// is parsed once, when the PatternFormatter is built, into an ordered
// chain of immutable format items. Each item projects one event field:
// %m message, %p level, %r elapsed milliseconds, %c logger name,
// %t thread id, %F fiber id, %N thread name, %d{fmt} local date/time
// with strftime semantics, %f file, %l line, %T tab, %n newline, and
// %% for a literal percent sign. Everything else is copied verbatim.
//
// Compilation never fails: a malformed segment (an unmatched '{' or an
// unknown directive letter) becomes an inline placeholder item and sets
// a sticky flag readable via IsError, so a bad pattern degrades the
// output instead of breaking the logger at startup.
//
// Rendering iterates the chain into a pooled bytes.Buffer, either
// returned as a string by Format or written straight to an io.Writer by
// FormatTo. The chain is never mutated after construction, so one
// PatternFormatter may serve concurrent render calls without locking,
// provided each event's message buffer is frozen before rendering.
package formatter
