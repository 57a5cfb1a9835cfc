/*
Package metrics counts log lines through the Tarmac host metrics capability.

A Counter satisfies logger.Counter, so it can be plugged into
logger.Config.Lines or logger.Config.FormatErrors:

	m, _ := metrics.New(metrics.Config{})
	lines, _ := m.NewCounter("xslog_lines_total")
	bad, _ := m.NewCounter("xslog_format_errors_total")
	l, _ := logger.New(logger.Config{Lines: lines, FormatErrors: bad})

Inc is best-effort and does not return errors. Marshal or host-call failures
are swallowed so that counting never affects the caller.
*/
package metrics
