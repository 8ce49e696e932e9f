package input

// DefaultQueueSize is used when NewQueue is given a non-positive size.
const DefaultQueueSize = 16

// Queue is a bounded FIFO of events between the adapter's input callbacks and
// its frame loop.
type Queue struct {
	ch chan Event
}

func NewQueue(size int) *Queue {
	if size < 1 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan Event, size)}
}

// Enqueue adds ev and reports whether it was accepted. Events are dropped when
// the queue is full.
func (q *Queue) Enqueue(ev Event) bool {
	if q == nil {
		return false
	}
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Dequeue returns the oldest event without blocking.
func (q *Queue) Dequeue() (Event, bool) {
	if q == nil {
		return Event{}, false
	}
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return Event{}, false
	}
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.ch)
}
