/*
Package logging sends log lines to the Tarmac host runtime.

HostWriter is an output for logger.Logger. It forwards each rendered line to
the host's logging capability over waPC, choosing the host function from the
line's level (Trace, Debug, Info, Warn, Error). NOTE lines, which the host
does not know, are sent to Info.

	w, _ := logging.New(logging.Config{})
	l, _ := logger.New(logger.Config{Output: w})
	xslog.SetDefault(l)
*/
package logging
