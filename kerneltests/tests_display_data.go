package kerneltests

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupyterkit/kernel-contract-tests/kernel"
)

func DoDisplayDataTests(t *T) {
	entries := t.Config().CodeDisplayData
	if len(entries) == 0 {
		t.SkipWithReason("no code_display_data configured for this kernel")
	}

	for i, code := range entries {
		code := code
		t.Run(fmt.Sprintf("case %d", i+1), func(t *T) {
			result := t.Execute(code)
			t.RequireReplyOK(result.Reply)
			require.NotEmpty(t, result.Outputs, "expected at least one output message")

			first := result.Outputs[0]
			require.Equal(t, kernel.DisplayDataMsg, first.Header.MsgType,
				"first output message should be display_data")

			mimeMetadata, err := first.MetadataMIMEMap()
			require.NoError(t, err)
			for mimeType, metadata := range mimeMetadata {
				assert.Equal(t, 0, metadata.Count(),
					"expected empty metadata for MIME type %q, got %s", mimeType, metadata.JSONString())
			}
		})
	}
}
