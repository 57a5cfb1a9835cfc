//go:build !xslog_debug

package xslog

// Enabled reports whether this build emits log lines. Build with the
// xslog_debug tag to turn logging on.
const Enabled = false
