package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	started  []string
	finished []string
	failed   []string
	skipped  map[string]string
}

func newRecordingTestLogger() *recordingTestLogger {
	return &recordingTestLogger{skipped: make(map[string]string)}
}

func (l *recordingTestLogger) TestStarted(id TestID) { l.started = append(l.started, id.String()) }

func (l *recordingTestLogger) TestError(id TestID, err error) {}

func (l *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	l.finished = append(l.finished, id.String())
	if failed {
		l.failed = append(l.failed, id.String())
	}
}

func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.skipped[id.String()] = reason
}

func TestRunCollectsResultsFromSubtests(t *testing.T) {
	logger := newRecordingTestLogger()
	results := Run(nil, logger, func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("passes", func(c *Context) {})
			c.Run("fails", func(c *Context) {
				c.Errorf("something went wrong: %d", 42)
			})
		})
	})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "group/fails", results.Failures[0].TestID.String())
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "something went wrong: 42")
	assert.Contains(t, logger.failed, "group/fails")
	assert.Contains(t, logger.finished, "group/passes")
}

func TestGroupWithoutFailingSubtestsIsNotAFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("passes", func(c *Context) {})
		})
	})
	assert.True(t, results.OK())
	assert.Len(t, results.Tests, 2) // group and leaf
}

func TestFailNowStopsTheTestImmediately(t *testing.T) {
	reached := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("aborts", func(c *Context) {
			c.Errorf("fatal problem")
			c.FailNow()
			reached = true
		})
	})
	assert.False(t, reached)
	assert.False(t, results.OK())
}

func TestFailNowWithoutMessageStillFails(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("aborts silently", func(c *Context) {
			c.FailNow()
		})
	})
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "no failure message")
}

func TestSkipRecordsReasonAndDoesNotFail(t *testing.T) {
	logger := newRecordingTestLogger()
	results := Run(nil, logger, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not applicable here")
		})
	})
	assert.True(t, results.OK())
	assert.Equal(t, 1, results.SkipCount())
	assert.Equal(t, "not applicable here", logger.skipped["skipped"])
}

func TestUnexpectedPanicBecomesFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic("boom")
		})
	})
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "boom")
}

func TestFilterExcludesTests(t *testing.T) {
	logger := newRecordingTestLogger()
	ran := []string{}
	filter := func(id TestID) bool { return id.String() != "excluded" }
	results := Run(filter, logger, func(c *Context) {
		c.Run("included", func(c *Context) { ran = append(ran, "included") })
		c.Run("excluded", func(c *Context) { ran = append(ran, "excluded") })
	})
	assert.Equal(t, []string{"included"}, ran)
	assert.NotContains(t, logger.started, "excluded")
	assert.Len(t, results.Tests, 1)
}

func TestDeferRunsWhenTestFinishes(t *testing.T) {
	var order []string
	Run(nil, nil, func(c *Context) {
		c.Run("with cleanup", func(c *Context) {
			c.Defer(func() { order = append(order, "first registered") })
			c.Defer(func() { order = append(order, "second registered") })
			order = append(order, "body")
		})
	})
	assert.Equal(t, []string{"body", "second registered", "first registered"}, order)
}

func TestDeferRunsEvenAfterFailNow(t *testing.T) {
	cleaned := false
	Run(nil, nil, func(c *Context) {
		c.Run("aborts", func(c *Context) {
			c.Defer(func() { cleaned = true })
			c.Errorf("fatal problem")
			c.FailNow()
		})
	})
	assert.True(t, cleaned)
}
