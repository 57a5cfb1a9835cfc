package logger

import "strconv"

// Level is the severity tag attached to a line.
type Level int

// Severity levels, lowest first.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelNote
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelNote:  "NOTE",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the tag written between brackets at the start of a line.
func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}
