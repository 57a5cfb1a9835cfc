package hostmock

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Config describes what the pretend host expects and how it answers. Empty
// Expected* fields match anything.
type Config struct {
	// ExpectedNamespace is the namespace every call must use.
	ExpectedNamespace string

	// ExpectedCapability is the capability every call must target.
	ExpectedCapability string

	// ExpectedFunction is the function every call must invoke.
	ExpectedFunction string

	// PayloadValidator inspects the payload of each call.
	PayloadValidator func([]byte) error

	// Response produces the bytes returned from a successful call.
	Response func() []byte

	// Fail makes every call fail with Error, or ErrOperationFailed.
	Fail bool

	// Error is returned when Fail is set.
	Error error
}

// Call is one recorded host invocation.
type Call struct {
	Namespace  string
	Capability string
	Function   string
	Payload    []byte
}

// Mock is a pretend waPC host. It is safe for concurrent use.
type Mock struct {
	cfg Config

	mu    sync.Mutex
	calls []Call
}

// New creates a Mock from config.
func New(config Config) (*Mock, error) {
	return &Mock{cfg: config}, nil
}

// HostCall has the signature of wapc.HostCall. It records the call, then
// fails, validates, or answers according to the Config.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.record(Call{
		Namespace:  namespace,
		Capability: capability,
		Function:   function,
		Payload:    append([]byte(nil), payload...),
	})

	if m.cfg.Fail {
		if m.cfg.Error != nil {
			return nil, m.cfg.Error
		}
		return nil, ErrOperationFailed
	}

	if m.cfg.ExpectedNamespace != "" && m.cfg.ExpectedNamespace != namespace {
		return nil, fmt.Errorf("%w: expected namespace %s, got %s", ErrUnexpectedNamespace, m.cfg.ExpectedNamespace, namespace)
	}

	if m.cfg.ExpectedCapability != "" && m.cfg.ExpectedCapability != capability {
		return nil, fmt.Errorf("%w: expected capability %s, got %s", ErrUnexpectedCapability, m.cfg.ExpectedCapability, capability)
	}

	if m.cfg.ExpectedFunction != "" && m.cfg.ExpectedFunction != function {
		return nil, fmt.Errorf("%w: expected function %s, got %s", ErrUnexpectedFunction, m.cfg.ExpectedFunction, function)
	}

	if m.cfg.PayloadValidator != nil {
		if err := m.cfg.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	if m.cfg.Response != nil {
		return m.cfg.Response(), nil
	}
	return nil, nil
}

// Calls returns a copy of every call received so far, oldest first.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

func (m *Mock) record(c Call) {
	m.mu.Lock()
	m.calls = append(m.calls, c)
	m.mu.Unlock()
}
