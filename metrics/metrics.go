package metrics

import (
	"errors"
	"regexp"

	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
	wapc "github.com/wapc/wapc-guest-tinygo"
	"github.com/xacobeo/xslog"
	"github.com/xacobeo/xslog/logger"
)

const (
	capabilityName = "metrics"
	fnCounter      = "counter"
)

var (
	// ErrInvalidMetricName indicates a metric name that does not match the supported format.
	ErrInvalidMetricName = errors.New("metric name is invalid")

	// isMetricNameValid validates metric names using the same pattern as tarmac callback validation.
	isMetricNameValid = regexp.MustCompile(`^[a-zA-Z0-9_:][a-zA-Z0-9_:]*$`)
)

// HostCall defines the waPC host function signature used by metrics operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how a HostMetrics instance interacts with the host runtime.
type Config struct {
	// Namespace scopes host calls. Defaults to xslog.DefaultNamespace.
	Namespace string

	// HostCall overrides the waPC host function used for metrics operations.
	HostCall HostCall
}

// HostMetrics creates counters backed by the host metrics capability.
type HostMetrics struct {
	namespace string
	hostCall  HostCall
}

// Counter is a named counter metric handle.
type Counter struct {
	name      string
	namespace string
	hostCall  HostCall
}

// Ensure Counter can be handed to logger.Config.
var _ logger.Counter = (*Counter)(nil)

// New creates a metrics client with namespace defaults and optional host-call override.
func New(config Config) (*HostMetrics, error) {
	namespace := config.Namespace
	if namespace == "" {
		namespace = xslog.DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &HostMetrics{namespace: namespace, hostCall: hostCall}, nil
}

// NewCounter creates a named counter metric handle.
func (c *HostMetrics) NewCounter(name string) (*Counter, error) {
	if !isMetricNameValid.MatchString(name) {
		return nil, ErrInvalidMetricName
	}

	return &Counter{name: name, namespace: c.namespace, hostCall: c.hostCall}, nil
}

// Inc increments the counter by one.
func (c *Counter) Inc() {
	payload, err := (&proto.MetricsCounter{Name: c.name}).MarshalVT()
	if err != nil {
		return
	}
	_, _ = c.hostCall(c.namespace, capabilityName, fnCounter, payload)
}
