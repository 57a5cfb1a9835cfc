package logger

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const flagChars = "+-# 0"

// countArgs reports how many operands format consumes. When the template uses
// explicit argument indexes the count is not known and ok is false.
func countArgs(format string) (n int, ok bool, err error) {
	end := len(format)
	for i := 0; i < end; i++ {
		if format[i] != '%' {
			continue
		}
		i++

		for i < end && strings.IndexByte(flagChars, format[i]) >= 0 {
			i++
		}

		// width
		if i < end && format[i] == '[' {
			return 0, false, nil
		}
		if i < end && format[i] == '*' {
			n++
			i++
		} else {
			for i < end && isDigit(format[i]) {
				i++
			}
		}

		// precision
		if i < end && format[i] == '.' {
			i++
			if i < end && format[i] == '[' {
				return 0, false, nil
			}
			if i < end && format[i] == '*' {
				n++
				i++
			} else {
				for i < end && isDigit(format[i]) {
					i++
				}
			}
		}

		if i < end && format[i] == '[' {
			return 0, false, nil
		}
		if i >= end {
			return n, true, fmt.Errorf("%w: template ends with an incomplete verb", ErrFormat)
		}

		// %% does not absorb an operand
		if format[i] != '%' {
			n++
		}
	}
	return n, true, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// formatMessage writes the rendered template to buf. On error buf may hold a
// partial message and the caller is expected to discard it.
func formatMessage(buf *bytes.Buffer, format string, args ...any) (err error) {
	want, ok, err := countArgs(format)
	if err != nil {
		return err
	}
	if ok && want != len(args) {
		return fmt.Errorf("%w: template expects %d arguments, got %d", ErrFormat, want, len(args))
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: panic while formatting: %s", ErrFormat, describePanic(p))
		}
	}()

	fmt.Fprintf(buf, format, args...)
	return nil
}

// render writes one complete line, terminated by a newline: the call site
// of r followed by the rendered message. Newlines inside the message are
// written as the two characters \n so that every call is one line.
func (l *Logger) render(buf *bytes.Buffer, r Record, format string, args ...any) {
	l.writeHeader(buf, r)

	start := buf.Len()
	if err := formatMessage(buf, format, args...); err != nil {
		buf.Truncate(start)
		buf.WriteString(strings.TrimSuffix(format, "\n"))
		buf.WriteString(" [")
		buf.WriteString(err.Error())
		buf.WriteByte(']')
		if len(args) > 0 {
			writeArgs(buf, args)
		}
		l.formatErrors.Inc()
	}

	msg := bytes.TrimSuffix(buf.Bytes()[start:], newline)
	if bytes.IndexByte(msg, '\n') >= 0 {
		escaped := bytes.ReplaceAll(msg, newline, escapedNewline)
		buf.Truncate(start)
		buf.Write(escaped)
	} else {
		buf.Truncate(start + len(msg))
	}
	buf.WriteByte('\n')
}

var (
	newline        = []byte("\n")
	escapedNewline = []byte(`\n`)
)

// writeHeader writes "[LEVEL] file:line (function): ".
func (l *Logger) writeHeader(buf *bytes.Buffer, r Record) {
	buf.WriteString(l.tag(r.Level))
	buf.WriteByte(' ')

	file := r.File
	if !l.longFile {
		file = shortFile(file)
	}
	if file == "" {
		file = "???"
	}
	buf.WriteString(file)
	buf.WriteByte(':')
	buf.WriteString(strconv.Itoa(r.Line))

	fn := r.Function
	if fn == "" {
		fn = "?"
	}
	buf.WriteString(" (")
	buf.WriteString(fn)
	buf.WriteString("): ")
}

// writeArgs appends the arguments of a failed call. Values that cannot be
// printed, even by fmt's own recovery, are listed by type instead.
func writeArgs(buf *bytes.Buffer, args []any) {
	start := buf.Len()
	defer func() {
		if p := recover(); p != nil {
			buf.Truncate(start)
			writeArgTypes(buf, args)
		}
	}()
	fmt.Fprintf(buf, " args=%v", args)
}

func writeArgTypes(buf *bytes.Buffer, args []any) {
	buf.WriteString(" args=[")
	for i, a := range args {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%T", a)
	}
	buf.WriteByte(']')
}

// describePanic renders a recovered value, falling back to its type when the
// value itself panics while printing.
func describePanic(p any) (s string) {
	defer func() {
		if recover() != nil {
			s = fmt.Sprintf("%T", p)
		}
	}()
	return fmt.Sprintf("%v", p)
}

func shortFile(file string) string {
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		return file[i+1:]
	}
	return file
}
