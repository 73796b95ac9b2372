package fireworks

import "sync"

// FrameHandle identifies a pending frame request.
type FrameHandle uint64

// FrameScheduler is the display-refresh port: a callback requested now runs on
// the next frame unless cancelled first.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameHandle
	Cancel(h FrameHandle)
}

// FrameQueue is a FrameScheduler stepped by its host, one Step per display
// frame. Callbacks requested during a Step run on the following Step.
type FrameQueue struct {
	mu      sync.Mutex
	next    FrameHandle
	order   []FrameHandle
	pending map[FrameHandle]func()
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameHandle]func())}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameHandle {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

func (q *FrameQueue) Cancel(h FrameHandle) {
	q.mu.Lock()
	delete(q.pending, h)
	q.mu.Unlock()
}

// Step runs the callbacks pending when it was called and reports how many ran.
func (q *FrameQueue) Step() int {
	q.mu.Lock()
	batch := q.order
	q.order = nil
	q.mu.Unlock()

	ran := 0
	for _, h := range batch {
		q.mu.Lock()
		fn, ok := q.pending[h]
		delete(q.pending, h)
		q.mu.Unlock()
		if !ok {
			continue
		}
		fn()
		ran++
	}
	return ran
}

// Pending reports the number of live requests.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
