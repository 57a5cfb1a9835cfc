package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// Counter is incremented by the Logger as lines are written. A
// *metrics.Counter satisfies it.
type Counter interface {
	Inc()
}

// LevelWriter is an output that wants to know the severity of each line.
// When the configured output implements it, WriteLevel is used instead of
// Write.
type LevelWriter interface {
	io.Writer
	WriteLevel(level Level, p []byte) (n int, err error)
}

// Config controls how a Logger renders and where it writes.
type Config struct {
	// Output receives one Write per line. Defaults to os.Stderr.
	Output io.Writer

	// LongFile writes the file path as captured instead of its base name.
	LongFile bool

	// Color selects when level tags are styled with ANSI escapes.
	Color ColorMode

	// Lines, when set, is incremented once for every line written.
	Lines Counter

	// FormatErrors, when set, is incremented for every call whose template
	// and arguments could not be rendered.
	FormatErrors Counter
}

// Logger writes leveled diagnostic lines. It is safe for concurrent use.
type Logger struct {
	// mu serializes writes to out so that lines never interleave.
	mu  sync.Mutex
	out io.Writer

	longFile bool

	// tags holds the rendered "[LEVEL]" prefix per level, styled or not.
	tags [len(levelNames)]string

	lines        Counter
	formatErrors Counter
}

type flusher interface {
	Flush() error
}

type nopCounter struct{}

func (nopCounter) Inc() {}

const maxPooledBuffer = 64 << 10

var bufPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// New creates a Logger. The zero Config writes uncolored-unless-terminal
// lines to standard error.
func New(config Config) (*Logger, error) {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	l := &Logger{
		out:          out,
		longFile:     config.LongFile,
		lines:        config.Lines,
		formatErrors: config.FormatErrors,
	}

	if l.lines == nil {
		l.lines = nopCounter{}
	}
	if l.formatErrors == nil {
		l.formatErrors = nopCounter{}
	}

	l.tags = levelTags(out, config.Color)

	return l, nil
}

// Log renders one line for the given call site and writes it. Formatting
// problems never reach the caller; see ErrFormat.
func (l *Logger) Log(file string, line int, function string, level Level, format string, args ...any) {
	l.emit(Record{Level: level, File: file, Line: line, Function: function}, format, args...)
}

// LogRecord renders r and writes it as a single line.
func (l *Logger) LogRecord(r Record) {
	l.emit(r, r.Format, r.Args...)
}

// emit renders the call site of r with format and args and writes the line.
// format and args are passed through unchanged so vet can check callers.
func (l *Logger) emit(r Record, format string, args ...any) {
	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		if buf.Cap() <= maxPooledBuffer {
			bufPool.Put(buf)
		}
	}()

	// Render outside the lock; a String method may log through this Logger.
	l.render(buf, r, format, args...)

	l.mu.Lock()
	l.write(r.Level, buf.Bytes())
	l.mu.Unlock()

	l.lines.Inc()
}

// write delivers p to the output. Callers must hold l.mu.
func (l *Logger) write(level Level, p []byte) {
	if lw, ok := l.out.(LevelWriter); ok {
		_, _ = lw.WriteLevel(level, p)
	} else {
		_, _ = l.out.Write(p)
	}

	if f, ok := l.out.(flusher); ok {
		_ = f.Flush()
	}
}

func (l *Logger) tag(level Level) string {
	if level < LevelTrace || level > LevelError {
		return "[" + level.String() + "]"
	}
	return l.tags[level]
}
