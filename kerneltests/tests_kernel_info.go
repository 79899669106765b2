package kerneltests

import (
	"strings"

	"github.com/stretchr/testify/assert"
)

func DoKernelInfoTests(t *T) {
	t.Run("reports the configured language", func(t *T) {
		info := t.RequireKernelInfo()
		assert.Equal(t, t.Config().LanguageName, info.LanguageName,
			"language_info.name does not match the configured language_name")
	})

	t.Run("reports a 5.x protocol version", func(t *T) {
		info := t.RequireKernelInfo()
		assert.True(t, strings.HasPrefix(info.ProtocolVersion, "5."),
			"expected a 5.x protocol version, got %q", info.ProtocolVersion)
	})

	t.Run("has an implementation and banner", func(t *T) {
		info := t.RequireKernelInfo()
		assert.NotEmpty(t, info.Implementation)
		assert.NotEmpty(t, info.Banner)
	})
}
