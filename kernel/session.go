// Package kernel defines the data model and session contract that the
// conformance suite drives kernels through. A Session hides whatever
// transport actually reaches the kernel; this repository only ships an
// in-process implementation over a Backend, which is what the example
// kernels plug into.
package kernel

import (
	"errors"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ErrTimeout is returned when the kernel does not respond to a request
// within the configured window.
var ErrTimeout = errors.New("timed out waiting for a reply from the kernel")

// KernelInfo is the information a kernel reports in a kernel_info_reply.
type KernelInfo struct {
	ProtocolVersion       string
	Implementation        string
	ImplementationVersion string
	LanguageName          string
	LanguageVersion       string
	MIMEType              string
	FileExtension         string
	Banner                string
}

// ExecuteResult is the outcome of one execute request: the execute_reply
// plus the output messages the kernel emitted for it, in emission order.
type ExecuteResult struct {
	Reply   Message
	Outputs []Message
}

// Session is a live connection to one kernel. A session owns its message
// channels for its lifetime and is used by a single test case at a time;
// the transport behind it is opaque to callers.
type Session interface {
	// KernelInfo asks the kernel to describe itself.
	KernelInfo(timeout time.Duration) (KernelInfo, error)

	// Execute sends an execute request for the given code and blocks until
	// the corresponding reply and associated output messages have arrived,
	// or the timeout elapses, in which case it returns ErrTimeout and the
	// session is considered failed.
	Execute(code string, timeout time.Duration) (ExecuteResult, error)

	// Flush discards any pending unread output messages, isolating the next
	// request from whatever came before it.
	Flush()

	// State reports where the session is in its lifecycle.
	State() SessionState

	// Close tears the session down. It is safe to call more than once.
	Close() error
}

// Publisher is how a backend emits output messages while executing a cell.
type Publisher interface {
	Publish(msgType string, content ldvalue.Value, metadata ldvalue.Value)
}

// Backend is the execution engine behind an in-process session. It consumes
// one code cell at a time; intermediate outputs (streams, display data) go
// through the Publisher, and the returned text, if any, becomes the cell's
// execute_result. A non-nil error marks the cell as failed.
type Backend interface {
	Info() KernelInfo
	Execute(code string, pub Publisher) (result string, hasResult bool, err error)
}
