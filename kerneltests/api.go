package kerneltests

import (
	"time"

	"github.com/alessio/shellescape"
	"github.com/stretchr/testify/require"

	"github.com/jupyterkit/kernel-contract-tests/framework"
	"github.com/jupyterkit/kernel-contract-tests/kernel"
)

type environment struct {
	registry *kernel.Registry
	config   Config
	timeout  time.Duration
}

// T represents a test or subtest in the kernel conformance suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with extra features such
// as captured debug logging provided by the lower-level framework package.
//
// Every T instance lazily opens its own session to the kernel under test, and
// the session is torn down when the subtest finishes, so that no state leaks
// between test cases. To make test assertions, use the assert and require
// packages, passing the *T as if it were a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
	session kernel.Session
}

func newTestScope(context *framework.Context, env *environment) *T {
	return &T{context: context, env: env}
}

func (t *T) close() {
	if t.session != nil {
		_ = t.session.Close()
		t.session = nil
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. The subtest receives a new T with its own kernel
// session, which is closed when the subtest returns.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		t1 := newTestScope(c, t.env)
		defer t1.close()
		action(t1)
	})
}

// SkipWithReason marks the test as skipped and immediately exits it.
func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// Debug logs some debug output for the test. The output is passed to the
// test logger when the test finishes.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}

// Config returns the conformance configuration for the kernel under test.
func (t *T) Config() Config {
	return t.env.config
}

// RequireSession returns this test's session to the kernel under test,
// opening it on first use. Failure to open the session fails the test
// immediately.
func (t *T) RequireSession() kernel.Session {
	if t.session == nil {
		session, err := t.env.registry.Open(t.env.config.KernelName,
			framework.LoggerWithPrefix(t.context.DebugLogger(), "[session] "))
		require.NoError(t, err, "could not open a session to kernel %q", t.env.config.KernelName)
		t.session = session
	}
	return t.session
}

// RequireKernelInfo asks the kernel under test to describe itself.
func (t *T) RequireKernelInfo() kernel.KernelInfo {
	info, err := t.RequireSession().KernelInfo(t.env.timeout)
	require.NoError(t, err, "kernel_info request failed")
	return info
}

// Execute flushes any unread messages from the session and then runs the
// given code, failing the test immediately on a transport error or timeout.
func (t *T) Execute(code string) kernel.ExecuteResult {
	session := t.RequireSession()
	session.Flush()
	t.Debug("executing %s", shellescape.Quote(code))
	result, err := session.Execute(code, t.env.timeout)
	require.NoError(t, err, "execute request for %s failed", shellescape.Quote(code))
	return result
}

// RequireReplyOK asserts that a reply is an execute_reply with status "ok".
func (t *T) RequireReplyOK(reply kernel.Message) {
	require.Equal(t, kernel.ExecuteReplyMsg, reply.Header.MsgType, "unexpected reply message type")
	require.Equal(t, "ok", reply.Content.GetByKey("status").StringValue(),
		"kernel reported an error: %s", reply.Content.JSONString())
}

// RequireResultText executes code and asserts that the output contains an
// execute_result whose text equals expected exactly, with no normalization.
func (t *T) RequireResultText(code string, expected string) {
	result := t.Execute(code)
	t.RequireReplyOK(result.Reply)
	text, ok := firstResultText(result.Outputs)
	require.True(t, ok, "no execute_result with a text/plain representation for code %s", shellescape.Quote(code))
	require.Equal(t, expected, text, "result text mismatch for code %s", shellescape.Quote(code))
}

func firstResultText(outputs []kernel.Message) (string, bool) {
	for _, m := range outputs {
		if m.Header.MsgType == kernel.ExecuteResultMsg {
			return m.ResultText()
		}
	}
	return "", false
}

func executionCount(m kernel.Message) int {
	return m.Content.GetByKey("execution_count").IntValue()
}
