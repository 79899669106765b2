package kernel

import (
	"sort"
	"sync"
)

// OutputQueue delivers kernel output messages in emission order, even when a
// backend publishes them from more than one goroutine. Every message carries
// a sequence counter assigned at emission time; a message that arrives ahead
// of its turn is held back until the gap before it has been filled.
type OutputQueue struct {
	C           chan Message
	lastCounter int
	deferred    []deferredOutput
	lock        sync.Mutex
	closeOnce   sync.Once
}

type deferredOutput struct {
	counter int
	message Message
}

func NewOutputQueue(channelSize int) *OutputQueue {
	return &OutputQueue{C: make(chan Message, channelSize)}
}

// Accept queues the message with the given sequence counter. Counters start
// at 1 and each counter must be used exactly once.
func (q *OutputQueue) Accept(counter int, message Message) {
	q.lock.Lock()
	if counter > q.lastCounter+1 {
		q.deferred = append(q.deferred, deferredOutput{counter: counter, message: message})
		sort.Slice(q.deferred, func(i, j int) bool { return q.deferred[i].counter < q.deferred[j].counter })
		q.lock.Unlock()
		return
	}
	q.lastCounter = counter
	q.C <- message
	for len(q.deferred) > 0 {
		next := q.deferred[0]
		if next.counter != q.lastCounter+1 {
			break
		}
		q.deferred = q.deferred[1:]
		q.lastCounter++
		q.C <- next.message
	}
	q.lock.Unlock()
}

// Deferred returns the messages that are being held back because of a gap in
// the counter sequence.
func (q *OutputQueue) Deferred() []Message {
	q.lock.Lock()
	ret := make([]Message, 0, len(q.deferred))
	for _, d := range q.deferred {
		ret = append(ret, d.message)
	}
	q.lock.Unlock()
	return ret
}

// Drain removes and returns every message that is ready to be read, without
// blocking. Held-back messages stay in the queue.
func (q *OutputQueue) Drain() []Message {
	var ret []Message
	for {
		select {
		case m, ok := <-q.C:
			if !ok {
				return ret
			}
			ret = append(ret, m)
		default:
			return ret
		}
	}
}

func (q *OutputQueue) Close() {
	q.closeOnce.Do(func() {
		close(q.C)
	})
}
