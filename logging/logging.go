package logging

import (
	"bytes"
	"errors"
	"fmt"

	wapc "github.com/wapc/wapc-guest-tinygo"
	"github.com/xacobeo/xslog"
	"github.com/xacobeo/xslog/logger"
)

const capabilityName = "logging"

// Host logging functions. The host has no NOTE level; notes go to Info.
const (
	fnTrace = "Trace"
	fnDebug = "Debug"
	fnInfo  = "Info"
	fnWarn  = "Warn"
	fnError = "Error"
)

var (
	// ErrHostCall indicates that a waPC host invocation failed.
	ErrHostCall = errors.New("host call failed")
)

// HostCall defines the waPC host function signature used by HostWriter.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how a HostWriter interacts with the host runtime.
type Config struct {
	// Namespace scopes host calls. Defaults to xslog.DefaultNamespace.
	Namespace string

	// HostCall overrides the waPC host function. Defaults to wapc.HostCall.
	HostCall HostCall
}

// HostWriter delivers rendered lines to the Tarmac host logging capability.
// Use it as logger.Config.Output.
type HostWriter struct {
	namespace string
	hostCall  HostCall
}

// Ensure HostWriter satisfies logger.LevelWriter at compile time.
var _ logger.LevelWriter = (*HostWriter)(nil)

// New creates a HostWriter with namespace defaults and optional host-call override.
func New(config Config) (*HostWriter, error) {
	namespace := config.Namespace
	if namespace == "" {
		namespace = xslog.DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &HostWriter{namespace: namespace, hostCall: hostCall}, nil
}

// Write sends p to the host's Info function.
func (w *HostWriter) Write(p []byte) (int, error) {
	return w.send(fnInfo, p)
}

// WriteLevel sends p to the host function matching level.
func (w *HostWriter) WriteLevel(level logger.Level, p []byte) (int, error) {
	return w.send(hostFunction(level), p)
}

func (w *HostWriter) send(fn string, p []byte) (int, error) {
	msg := bytes.TrimSuffix(p, []byte("\n"))
	if _, err := w.hostCall(w.namespace, capabilityName, fn, msg); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrHostCall, err)
	}
	return len(p), nil
}

func hostFunction(level logger.Level) string {
	switch level {
	case logger.LevelTrace:
		return fnTrace
	case logger.LevelDebug:
		return fnDebug
	case logger.LevelWarn:
		return fnWarn
	case logger.LevelError:
		return fnError
	default:
		return fnInfo
	}
}
