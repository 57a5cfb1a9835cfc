/*
Package hostmock provides a pretend waPC host for tests.

Sinks and counters in this module talk to the Tarmac host through a
HostCall function with the signature of wapc.HostCall. A Mock stands in for
the host so tests can check what would have been sent without running one.

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "tarmac",
	  ExpectedCapability: "logging",
	  ExpectedFunction:   "Warn",
	})

	w, _ := logging.New(logging.Config{HostCall: m.HostCall})

Behavior

  - Every call is recorded first; Calls returns them in order.
  - If Fail is true, HostCall returns Error, or ErrOperationFailed when Error is nil.
  - Otherwise the Expected* values that are set must match, then
    PayloadValidator runs when provided, then Response (when set) supplies
    the returned bytes.
*/
package hostmock
