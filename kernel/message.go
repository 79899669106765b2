package kernel

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Message type tags from the Jupyter messaging protocol, as they appear in
// the msg_type field of a message header.
const (
	ExecuteRequestMsg    = "execute_request"
	ExecuteReplyMsg      = "execute_reply"
	ExecuteResultMsg     = "execute_result"
	DisplayDataMsg       = "display_data"
	StreamMsg            = "stream"
	StatusMsg            = "status"
	ErrorMsg             = "error"
	KernelInfoRequestMsg = "kernel_info_request"
	KernelInfoReplyMsg   = "kernel_info_reply"
)

// ProtocolVersion is the version of the Jupyter messaging protocol whose
// message shapes this package models.
const ProtocolVersion = "5.3"

// Header identifies a single message and the session it belongs to.
type Header struct {
	MsgID    string
	Session  string
	Username string
	MsgType  string
	Version  string
	Date     time.Time
}

// NewHeader creates a header with a fresh message ID for the given session
// and message type.
func NewHeader(session, msgType string) Header {
	return Header{
		MsgID:    uuid.NewString(),
		Session:  session,
		Username: "kernel-contract-tests",
		MsgType:  msgType,
		Version:  ProtocolVersion,
		Date:     time.Now().UTC(),
	}
}

// Message is one reply or output record produced by a kernel: its own header,
// the header of the request that caused it, and free-form JSON content and
// metadata.
type Message struct {
	Header       Header
	ParentHeader Header
	Content      ldvalue.Value
	Metadata     ldvalue.Value
}

// ResultText returns the text/plain representation carried by an
// execute_result or display_data message, if there is one.
func (m Message) ResultText() (string, bool) {
	text := m.Content.GetByKey("data").GetByKey("text/plain")
	if text.Type() != ldvalue.StringType {
		return "", false
	}
	return text.StringValue(), true
}

// MetadataMIMEMap validates the structural requirement on output message
// metadata: when present, it must be a mapping from MIME-type string to a
// mapping of arbitrary key/value pairs - never a scalar, and never an array
// at the top level. It returns the per-MIME-type mappings, or an error
// describing the shape violation.
func (m Message) MetadataMIMEMap() (map[string]ldvalue.Value, error) {
	if m.Metadata.IsNull() {
		return nil, nil
	}
	if m.Metadata.Type() != ldvalue.ObjectType {
		return nil, fmt.Errorf("message metadata should be a JSON object, got %s (%s)",
			m.Metadata.Type(), m.Metadata.JSONString())
	}
	ret := make(map[string]ldvalue.Value, m.Metadata.Count())
	for _, mimeType := range m.Metadata.Keys() {
		value := m.Metadata.GetByKey(mimeType)
		if value.Type() != ldvalue.ObjectType {
			return nil, fmt.Errorf("metadata for MIME type %q should be a JSON object, got %s (%s)",
				mimeType, value.Type(), value.JSONString())
		}
		ret[mimeType] = value
	}
	return ret, nil
}
