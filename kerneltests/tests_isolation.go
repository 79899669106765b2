package kerneltests

import (
	"github.com/stretchr/testify/assert"
)

func DoIsolationTests(t *T) {
	pairs := t.Config().CodeExecuteResult
	if len(pairs) == 0 {
		t.SkipWithReason("no code_execute_result configured for this kernel")
	}

	t.Run("same code on a flushed session yields the same result", func(t *T) {
		// Execute flushes the session's channels before each request, so a
		// second run must see exactly the same result text.
		t.RequireResultText(pairs[0].Code, pairs[0].Result)
		t.RequireResultText(pairs[0].Code, pairs[0].Result)
	})

	t.Run("outputs belong to the request that caused them", func(t *T) {
		result := t.Execute(pairs[0].Code)
		t.RequireReplyOK(result.Reply)
		for _, output := range result.Outputs {
			assert.Equal(t, result.Reply.ParentHeader.MsgID, output.ParentHeader.MsgID,
				"output message %s is parented to a different request", output.Header.MsgType)
		}
	})
}
