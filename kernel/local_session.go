package kernel

import (
	"fmt"
	"sync"
	"time"

	"github.com/alessio/shellescape"
	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/jupyterkit/kernel-contract-tests/framework"
)

const outputQueueSize = 256

// LocalSession is an in-process Session over a Backend. A single worker
// goroutine executes cells one at a time; output messages flow through an
// OutputQueue and are collected when the reply for a request arrives.
type LocalSession struct {
	name      string
	id        string
	backend   Backend
	logger    framework.Logger
	queue     *OutputQueue
	requests  chan executeRequest
	state     SessionState
	execCount int
	seq       int
	stateLock sync.Mutex
	closeOnce sync.Once
}

type executeRequest struct {
	code  string
	reply chan<- Message
}

// NewLocalSession opens a session backed by the given execution engine.
func NewLocalSession(name string, backend Backend, logger framework.Logger) *LocalSession {
	if logger == nil {
		logger = framework.NullLogger()
	}
	s := &LocalSession{
		name:     name,
		id:       uuid.NewString(),
		backend:  backend,
		logger:   logger,
		queue:    NewOutputQueue(outputQueueSize),
		requests: make(chan executeRequest),
		state:    StateNotConnected,
	}
	go s.worker()
	_ = s.transition(StateConnected)
	s.logger.Printf("opened session %s to kernel %q", s.id, name)
	return s
}

func (s *LocalSession) State() SessionState {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()
	return s.state
}

func (s *LocalSession) transition(next SessionState) error {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()
	if !s.state.canTransitionTo(next) {
		return fmt.Errorf("session to kernel %q: invalid state transition %s -> %s", s.name, s.state, next)
	}
	s.state = next
	return nil
}

func (s *LocalSession) forceState(next SessionState) {
	s.stateLock.Lock()
	s.state = next
	s.stateLock.Unlock()
}

func (s *LocalSession) KernelInfo(timeout time.Duration) (KernelInfo, error) {
	switch s.State() {
	case StateNotConnected, StateFailed, StateDisconnected:
		return KernelInfo{}, fmt.Errorf("cannot send kernel_info_request in session state %s", s.State())
	}
	s.logger.Printf("sending kernel_info_request to %q", s.name)
	return s.backend.Info(), nil
}

func (s *LocalSession) Execute(code string, timeout time.Duration) (ExecuteResult, error) {
	if err := s.transition(StateRequestSent); err != nil {
		return ExecuteResult{}, err
	}
	s.logger.Printf("sending execute_request to %q with code %s", s.name, shellescape.Quote(code))

	outcome := make(chan Message, 1)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case s.requests <- executeRequest{code: code, reply: outcome}:
	case <-timer.C:
		s.forceState(StateFailed)
		s.logger.Printf("kernel %q did not accept the request within %s", s.name, timeout)
		return ExecuteResult{}, ErrTimeout
	}

	select {
	case reply := <-outcome:
		if err := s.transition(StateReplyReceived); err != nil {
			return ExecuteResult{}, err
		}
		outputs := dropStatusMessages(s.queue.Drain())
		s.logger.Printf("received %s with %d output message(s)", reply.Header.MsgType, len(outputs))
		return ExecuteResult{Reply: reply, Outputs: outputs}, nil
	case <-timer.C:
		s.forceState(StateFailed)
		s.logger.Printf("no reply from kernel %q within %s", s.name, timeout)
		return ExecuteResult{}, ErrTimeout
	}
}

func (s *LocalSession) Flush() {
	discarded := s.queue.Drain()
	if len(discarded) > 0 {
		s.logger.Printf("flushed %d unread message(s) from the session to %q", len(discarded), s.name)
	}
}

func (s *LocalSession) Close() error {
	s.closeOnce.Do(func() {
		s.forceState(StateDisconnected)
		close(s.requests)
		s.logger.Printf("closed session %s to kernel %q", s.id, s.name)
	})
	return nil
}

func (s *LocalSession) worker() {
	defer s.queue.Close()
	for req := range s.requests {
		s.execCount++
		parent := NewHeader(s.id, ExecuteRequestMsg)
		pub := &sessionPublisher{session: s, parent: parent}
		pub.publishStatus("busy")

		result, hasResult, err := s.backend.Execute(req.code, pub)
		var reply Message
		if err != nil {
			pub.Publish(ErrorMsg, ldvalue.ObjectBuild().
				Set("ename", ldvalue.String("ExecuteError")).
				Set("evalue", ldvalue.String(err.Error())).
				Set("traceback", ldvalue.ArrayOf()).
				Build(), ldvalue.ObjectBuild().Build())
			reply = s.newReply(parent, ldvalue.ObjectBuild().
				Set("status", ldvalue.String("error")).
				Set("execution_count", ldvalue.Int(s.execCount)).
				Set("ename", ldvalue.String("ExecuteError")).
				Set("evalue", ldvalue.String(err.Error())).
				Build())
		} else {
			if hasResult {
				pub.Publish(ExecuteResultMsg, ldvalue.ObjectBuild().
					Set("execution_count", ldvalue.Int(s.execCount)).
					Set("data", ldvalue.ObjectBuild().Set("text/plain", ldvalue.String(result)).Build()).
					Build(), ldvalue.ObjectBuild().Build())
			}
			reply = s.newReply(parent, ldvalue.ObjectBuild().
				Set("status", ldvalue.String("ok")).
				Set("execution_count", ldvalue.Int(s.execCount)).
				Build())
		}

		pub.publishStatus("idle")
		req.reply <- reply
	}
}

func (s *LocalSession) newReply(parent Header, content ldvalue.Value) Message {
	return Message{
		Header:       NewHeader(s.id, ExecuteReplyMsg),
		ParentHeader: parent,
		Content:      content,
		Metadata:     ldvalue.ObjectBuild().Build(),
	}
}

type sessionPublisher struct {
	session *LocalSession
	parent  Header
}

func (p *sessionPublisher) Publish(msgType string, content ldvalue.Value, metadata ldvalue.Value) {
	s := p.session
	s.seq++
	s.queue.Accept(s.seq, Message{
		Header:       NewHeader(s.id, msgType),
		ParentHeader: p.parent,
		Content:      content,
		Metadata:     metadata,
	})
}

func (p *sessionPublisher) publishStatus(executionState string) {
	p.Publish(StatusMsg,
		ldvalue.ObjectBuild().Set("execution_state", ldvalue.String(executionState)).Build(),
		ldvalue.ObjectBuild().Build())
}

// Status messages bracket every execution but are not outputs in the sense
// the conformance assertions care about.
func dropStatusMessages(all []Message) []Message {
	ret := make([]Message, 0, len(all))
	for _, m := range all {
		if m.Header.MsgType == StatusMsg {
			continue
		}
		ret = append(ret, m)
	}
	return ret
}
