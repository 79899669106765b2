package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestNewHeaderFillsIdentityFields(t *testing.T) {
	h := NewHeader("session-1", ExecuteRequestMsg)
	assert.NotEmpty(t, h.MsgID)
	assert.Equal(t, "session-1", h.Session)
	assert.Equal(t, ExecuteRequestMsg, h.MsgType)
	assert.Equal(t, ProtocolVersion, h.Version)
	assert.False(t, h.Date.IsZero())

	h2 := NewHeader("session-1", ExecuteRequestMsg)
	assert.NotEqual(t, h.MsgID, h2.MsgID)
}

func TestResultText(t *testing.T) {
	m := Message{
		Header: Header{MsgType: ExecuteResultMsg},
		Content: ldvalue.ObjectBuild().
			Set("data", ldvalue.ObjectBuild().Set("text/plain", ldvalue.String("4")).Build()).
			Build(),
	}
	text, ok := m.ResultText()
	require.True(t, ok)
	assert.Equal(t, "4", text)
}

func TestResultTextMissing(t *testing.T) {
	m := Message{Content: ldvalue.ObjectBuild().Build()}
	_, ok := m.ResultText()
	assert.False(t, ok)

	m = Message{Content: ldvalue.ObjectBuild().
		Set("data", ldvalue.ObjectBuild().Set("text/plain", ldvalue.Int(4)).Build()).
		Build()}
	_, ok = m.ResultText()
	assert.False(t, ok, "a non-string text/plain value is not a result text")
}

func TestMetadataMIMEMapAbsentMetadata(t *testing.T) {
	m := Message{Metadata: ldvalue.Null()}
	mimeMap, err := m.MetadataMIMEMap()
	require.NoError(t, err)
	assert.Nil(t, mimeMap)
}

func TestMetadataMIMEMapWellFormed(t *testing.T) {
	m := Message{Metadata: ldvalue.ObjectBuild().
		Set("text/plain", ldvalue.ObjectBuild().Build()).
		Set("image/png", ldvalue.ObjectBuild().Set("width", ldvalue.Int(640)).Build()).
		Build()}
	mimeMap, err := m.MetadataMIMEMap()
	require.NoError(t, err)
	require.Len(t, mimeMap, 2)
	assert.Equal(t, 0, mimeMap["text/plain"].Count())
	assert.Equal(t, 640, mimeMap["image/png"].GetByKey("width").IntValue())
}

func TestMetadataMIMEMapRejectsScalarAtTopLevel(t *testing.T) {
	m := Message{Metadata: ldvalue.String("oops")}
	_, err := m.MetadataMIMEMap()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "should be a JSON object")
}

func TestMetadataMIMEMapRejectsSequenceAtTopLevel(t *testing.T) {
	m := Message{Metadata: ldvalue.ArrayOf(ldvalue.String("text/plain"))}
	_, err := m.MetadataMIMEMap()
	require.Error(t, err)
}

func TestMetadataMIMEMapRejectsScalarPerMIMEValue(t *testing.T) {
	m := Message{Metadata: ldvalue.ObjectBuild().
		Set("text/plain", ldvalue.String("not a mapping")).
		Build()}
	_, err := m.MetadataMIMEMap()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `metadata for MIME type "text/plain"`)
}
