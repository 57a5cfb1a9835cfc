package hostmock

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

var errMock = errors.New("mock error")

func TestHostCall(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name       string
		cfg        Config
		namespace  string
		capability string
		function   string
		payload    []byte
		want       []byte
		wantErr    error
	}{
		{
			name: "matching call",
			cfg: Config{
				ExpectedNamespace:  "tarmac",
				ExpectedCapability: "logging",
				ExpectedFunction:   "Info",
				Response:           func() []byte { return []byte("ok") },
			},
			namespace:  "tarmac",
			capability: "logging",
			function:   "Info",
			payload:    []byte("[INFO] a.go:1 (f): hi"),
			want:       []byte("ok"),
		},
		{
			name:       "blank expectations match anything",
			cfg:        Config{},
			namespace:  "other",
			capability: "metrics",
			function:   "counter",
			payload:    []byte("x"),
		},
		{
			name: "custom failure",
			cfg: Config{
				Fail:     true,
				Error:    errMock,
				Response: func() []byte { return []byte("ignored") },
			},
			namespace:  "tarmac",
			capability: "logging",
			function:   "Info",
			wantErr:    errMock,
		},
		{
			name:       "default failure",
			cfg:        Config{Fail: true},
			namespace:  "tarmac",
			capability: "logging",
			function:   "Info",
			wantErr:    ErrOperationFailed,
		},
		{
			name:       "unexpected namespace",
			cfg:        Config{ExpectedNamespace: "tarmac"},
			namespace:  "custom",
			capability: "logging",
			function:   "Info",
			wantErr:    ErrUnexpectedNamespace,
		},
		{
			name:       "unexpected capability",
			cfg:        Config{ExpectedCapability: "logging"},
			namespace:  "tarmac",
			capability: "metrics",
			function:   "Info",
			wantErr:    ErrUnexpectedCapability,
		},
		{
			name:       "unexpected function",
			cfg:        Config{ExpectedFunction: "Warn"},
			namespace:  "tarmac",
			capability: "logging",
			function:   "Info",
			wantErr:    ErrUnexpectedFunction,
		},
		{
			name: "payload rejected",
			cfg: Config{
				PayloadValidator: func(p []byte) error {
					if len(p) == 0 {
						return errMock
					}
					return nil
				},
			},
			namespace:  "tarmac",
			capability: "logging",
			function:   "Info",
			payload:    nil,
			wantErr:    errMock,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			got, err := mock.HostCall(tc.namespace, tc.capability, tc.function, tc.payload)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("unexpected error: want %v got %v", tc.wantErr, err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("response mismatch: want %q got %q", tc.want, got)
			}

			calls := mock.Calls()
			if len(calls) != 1 {
				t.Fatalf("expected 1 recorded call, got %d", len(calls))
			}
			if calls[0].Function != tc.function || !bytes.Equal(calls[0].Payload, tc.payload) {
				t.Fatalf("recorded call mismatch: %+v", calls[0])
			}
		})
	}
}

func TestCallsAreCopied(t *testing.T) {
	t.Parallel()

	mock, _ := New(Config{})
	payload := []byte("original")
	_, _ = mock.HostCall("tarmac", "logging", "Info", payload)
	payload[0] = 'X'

	calls := mock.Calls()
	calls[0].Function = "mutated"

	again := mock.Calls()
	if string(again[0].Payload) != "original" {
		t.Fatalf("expected payload to be copied, got %q", again[0].Payload)
	}
	if again[0].Function != "Info" {
		t.Fatalf("expected recorded calls to be isolated from callers, got %q", again[0].Function)
	}
}

func TestConcurrentCalls(t *testing.T) {
	t.Parallel()

	mock, _ := New(Config{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = mock.HostCall("tarmac", "logging", "Debug", []byte("x"))
		}()
	}
	wg.Wait()

	if got := len(mock.Calls()); got != 20 {
		t.Fatalf("expected 20 recorded calls, got %d", got)
	}
}
