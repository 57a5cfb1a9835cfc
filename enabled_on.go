//go:build xslog_debug

package xslog

// Enabled reports whether this build emits log lines.
const Enabled = true
