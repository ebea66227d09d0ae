// Package core defines the shared types the pattern formatter reads from.
//
// It provides the Level type with its text mapping, the Logger capability
// interface (the formatter only ever reads a logger's name), and the Event
// type that carries one log occurrence: source location, elapsed time,
// thread and fiber identifiers, wall-clock time, severity, the owning
// logger, and a growable message buffer.
//
// An Event is built once per log call and is immutable afterwards except
// for its message buffer, which may receive appended fragments until
// rendering starts. The formatter treats the buffer as frozen for the
// duration of a render pass; enforcing that is the caller's contract.
package core
