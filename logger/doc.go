/*
Package logger renders leveled, call-site annotated diagnostic lines.

A Logger turns one call into one line of text of the form

	[WARN] server.go:42 (Serve): retrying in 3s

and writes it to its output with a single Write, serialized across
goroutines, so concurrent callers never interleave fragments of each other's
lines. The zero-value Config writes to standard error.

A call always produces exactly one line. Newlines inside the rendered
message are written as the two characters \n; a single trailing newline is
dropped.

Levels are tags only. Every call that reaches a Logger is emitted whatever its
Level; there is no threshold.

Rendering never fails from the caller's point of view. When the template and
arguments disagree (see ErrFormat) the Logger still writes a line carrying
the raw template, an inline error notice, and the supplied arguments, or
just their types when even fmt cannot print them.
*/
package logger
