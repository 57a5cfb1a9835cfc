package logger

import "errors"

var (
	// ErrFormat indicates that a template and its arguments could not be rendered.
	ErrFormat = errors.New("format error")
)
