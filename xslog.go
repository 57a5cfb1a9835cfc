package xslog

import (
	"sync/atomic"

	"github.com/xacobeo/xslog/logger"
)

// DefaultNamespace is the Tarmac host namespace used by the logging and
// metrics sinks when none is configured.
const DefaultNamespace = "tarmac"

// std is the Logger every leveled call writes to. It stays nil until first
// used, so builds without xslog_debug never construct one.
var std atomic.Pointer[logger.Logger]

// Default returns the Logger used by the package-level functions, creating
// one that writes to standard error on first use.
func Default() *logger.Logger {
	if l := std.Load(); l != nil {
		return l
	}

	l, err := logger.New(logger.Config{})
	if err != nil {
		// The zero Config has nothing to reject; keep whatever is installed.
		return std.Load()
	}
	std.CompareAndSwap(nil, l)
	return std.Load()
}

// SetDefault replaces the Logger used by the package-level functions. A nil
// Logger is ignored.
func SetDefault(l *logger.Logger) {
	if l == nil {
		return
	}
	std.Store(l)
}

// Tracef logs at LevelTrace.
func Tracef(format string, args ...any) {
	if Enabled {
		logAt(2, logger.LevelTrace, format, args...)
	}
}

// Debugf logs at LevelDebug.
func Debugf(format string, args ...any) {
	if Enabled {
		logAt(2, logger.LevelDebug, format, args...)
	}
}

// Infof logs at LevelInfo.
func Infof(format string, args ...any) {
	if Enabled {
		logAt(2, logger.LevelInfo, format, args...)
	}
}

// Notef logs at LevelNote.
func Notef(format string, args ...any) {
	if Enabled {
		logAt(2, logger.LevelNote, format, args...)
	}
}

// Warnf logs at LevelWarn.
func Warnf(format string, args ...any) {
	if Enabled {
		logAt(2, logger.LevelWarn, format, args...)
	}
}

// Errorf logs at LevelError.
func Errorf(format string, args ...any) {
	if Enabled {
		logAt(2, logger.LevelError, format, args...)
	}
}

// Logf logs at an explicit level.
func Logf(level logger.Level, format string, args ...any) {
	if Enabled {
		logAt(2, level, format, args...)
	}
}

// logAt captures the call site skip frames above it and writes the line.
func logAt(skip int, level logger.Level, format string, args ...any) {
	file, line, function := logger.Caller(skip)
	Default().Log(file, line, function, level, format, args...)
}
