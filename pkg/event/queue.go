package event

import "sync"

// Queue is a FIFO of input events. Producers may push from any goroutine;
// the UI thread alone pops. It is the only cross-thread-safe surface of the
// toolkit.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Push appends an event at the tail of the queue.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

// PushFront inserts an event at the head of the queue, ahead of everything
// already queued. Used for priority re-injection during dispatch.
func (q *Queue) PushFront(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append([]Event{ev}, q.events...)
}

// Pop removes and returns the event at the head of the queue.
func (q *Queue) Pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Clear discards every queued event.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = nil
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
