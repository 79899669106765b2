package echo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoResultIsVerbatim(t *testing.T) {
	b := New()
	for _, code := range []string{"foo", "", "print('hello')", "line one\nline two"} {
		result, hasResult, err := b.Execute(code, nil)
		require.NoError(t, err)
		require.True(t, hasResult)
		assert.Equal(t, code, result)
	}
}

func TestEchoInfo(t *testing.T) {
	info := New().Info()
	assert.Equal(t, "Echo", info.LanguageName)
	assert.Equal(t, "iecho", info.Implementation)
	assert.NotEmpty(t, info.Banner)
}
