package kernel

import "fmt"

// SessionState tracks where a session is in its lifecycle. The normal path
// is NotConnected -> Connected -> (RequestSent -> ReplyReceived)* ->
// Disconnected; a request that times out moves the session to Failed
// instead, which only Close can leave.
type SessionState int

const (
	StateNotConnected SessionState = iota
	StateConnected
	StateRequestSent
	StateReplyReceived
	StateFailed
	StateDisconnected
)

func (s SessionState) String() string {
	switch s {
	case StateNotConnected:
		return "not-connected"
	case StateConnected:
		return "connected"
	case StateRequestSent:
		return "request-sent"
	case StateReplyReceived:
		return "reply-received"
	case StateFailed:
		return "failed"
	case StateDisconnected:
		return "disconnected"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

var validTransitions = map[SessionState][]SessionState{
	StateNotConnected:  {StateConnected},
	StateConnected:     {StateRequestSent, StateDisconnected},
	StateRequestSent:   {StateReplyReceived, StateFailed, StateDisconnected},
	StateReplyReceived: {StateRequestSent, StateDisconnected},
	StateFailed:        {StateDisconnected},
	StateDisconnected:  {},
}

func (s SessionState) canTransitionTo(next SessionState) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
