/*
Package xslog provides leveled debug logging that compiles away in release
builds.

Six functions, Tracef, Debugf, Infof, Notef, Warnf and Errorf, take a
fmt-style template and arguments, capture the calling file, line and function,
and hand everything to the default logger.Logger, which writes one line such as

	[INFO] client.go:42 (Dial): connected to localhost:8080

to standard error.

Emission is controlled by the xslog_debug build tag:

	go build -tags xslog_debug ./...

Without the tag Enabled is false and every call is a branch on a false
constant: the compiler still checks the call, go vet still checks the
template against the arguments, but no caller lookup, formatting or I/O takes
place at run time.

Use SetDefault to send lines somewhere other than standard error, for example
to the Tarmac host through logging.HostWriter.
*/
package xslog
