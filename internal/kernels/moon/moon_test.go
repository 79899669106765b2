package moon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/jupyterkit/kernel-contract-tests/kernel"
)

type published struct {
	msgType  string
	content  ldvalue.Value
	metadata ldvalue.Value
}

type collectPublisher struct {
	messages []published
}

func (p *collectPublisher) Publish(msgType string, content ldvalue.Value, metadata ldvalue.Value) {
	p.messages = append(p.messages, published{msgType: msgType, content: content, metadata: metadata})
}

func TestMoonArithmetic(t *testing.T) {
	b := New()
	result, hasResult, err := b.Execute("return 1 + 3", &collectPublisher{})
	require.NoError(t, err)
	require.True(t, hasResult)
	assert.Equal(t, "4", result)
}

func TestMoonNonIntegralNumber(t *testing.T) {
	b := New()
	result, hasResult, err := b.Execute("return 1 / 2", &collectPublisher{})
	require.NoError(t, err)
	require.True(t, hasResult)
	assert.Equal(t, "0.5", result)
}

func TestMoonMultipleReturnValues(t *testing.T) {
	b := New()
	result, hasResult, err := b.Execute("return 1, 'two', true, nil", &collectPublisher{})
	require.NoError(t, err)
	require.True(t, hasResult)
	assert.Equal(t, "1\ttwo\ttrue\tnil", result)
}

func TestMoonStatementHasNoResult(t *testing.T) {
	b := New()
	_, hasResult, err := b.Execute("x = 2", &collectPublisher{})
	require.NoError(t, err)
	assert.False(t, hasResult)
}

func TestMoonStatePersistsAcrossCells(t *testing.T) {
	b := New()
	_, _, err := b.Execute("x = 2", &collectPublisher{})
	require.NoError(t, err)

	result, hasResult, err := b.Execute("return x * 3", &collectPublisher{})
	require.NoError(t, err)
	require.True(t, hasResult)
	assert.Equal(t, "6", result)
}

func TestMoonPrintEmitsStdoutStream(t *testing.T) {
	b := New()
	pub := &collectPublisher{}
	_, hasResult, err := b.Execute("print('hello, world')", pub)
	require.NoError(t, err)
	assert.False(t, hasResult)

	require.Len(t, pub.messages, 1)
	msg := pub.messages[0]
	assert.Equal(t, kernel.StreamMsg, msg.msgType)
	assert.Equal(t, "stdout", msg.content.GetByKey("name").StringValue())
	assert.Equal(t, "hello, world\n", msg.content.GetByKey("text").StringValue())
}

func TestMoonVersionMagicEmitsDisplayData(t *testing.T) {
	b := New()
	pub := &collectPublisher{}
	_, hasResult, err := b.Execute("%version", pub)
	require.NoError(t, err)
	assert.False(t, hasResult)

	require.Len(t, pub.messages, 1)
	msg := pub.messages[0]
	require.Equal(t, kernel.DisplayDataMsg, msg.msgType)

	text := msg.content.GetByKey("data").GetByKey("text/plain")
	assert.Contains(t, text.StringValue(), "Lua")

	// metadata must map each MIME type to an empty mapping
	require.Equal(t, ldvalue.ObjectType, msg.metadata.Type())
	require.Equal(t, []string{"text/plain"}, msg.metadata.Keys())
	perMIME := msg.metadata.GetByKey("text/plain")
	require.Equal(t, ldvalue.ObjectType, perMIME.Type())
	assert.Equal(t, 0, perMIME.Count())
}

func TestMoonRuntimeErrorIsReported(t *testing.T) {
	b := New()
	_, _, err := b.Execute("error('boom')", &collectPublisher{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestMoonSyntaxErrorIsReported(t *testing.T) {
	b := New()
	_, _, err := b.Execute("return +", &collectPublisher{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax")
}

func TestMoonErrorDoesNotPoisonLaterCells(t *testing.T) {
	b := New()
	pub := &collectPublisher{}
	_, _, err := b.Execute("error('boom')", pub)
	require.Error(t, err)

	result, hasResult, err := b.Execute("return 1 + 3", pub)
	require.NoError(t, err)
	require.True(t, hasResult)
	assert.Equal(t, "4", result)
}

func TestMoonInfo(t *testing.T) {
	info := New().Info()
	assert.Equal(t, "Lua", info.LanguageName)
	assert.Equal(t, "imoon", info.Implementation)
	assert.NotEmpty(t, info.Banner)
}
