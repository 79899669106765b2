package kerneltests

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

func DoExecuteTests(t *T) {
	t.Run("hello world", func(t *T) {
		code := t.Config().CodeHelloWorld
		if code == "" {
			t.SkipWithReason("no code_hello_world configured for this kernel")
		}
		result := t.Execute(code)
		t.RequireReplyOK(result.Reply)
	})

	for i, pair := range t.Config().CodeExecuteResult {
		pair := pair
		t.Run(fmt.Sprintf("result value %d", i+1), func(t *T) {
			t.RequireResultText(pair.Code, pair.Result)
		})
	}

	t.Run("execution count increases", func(t *T) {
		pairs := t.Config().CodeExecuteResult
		if len(pairs) == 0 {
			t.SkipWithReason("no code_execute_result configured for this kernel")
		}
		first := t.Execute(pairs[0].Code)
		second := t.Execute(pairs[0].Code)
		t.RequireReplyOK(first.Reply)
		t.RequireReplyOK(second.Reply)
		assert.Greater(t, executionCount(second.Reply), executionCount(first.Reply),
			"execution_count should increase with every request")
	})
}
