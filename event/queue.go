package event

import (
	"github.com/lixenwraith/sim2d/parameter"
)

// Queue is a fixed-size ring for tick events
// Single producer, single consumer: the physics step pushes during its
// callbacks and the game loop drains once per tick, both on the tick
// goroutine. Oldest events are overwritten when full.
type Queue struct {
	events [parameter.EventQueueSize]Event
	head   uint64 // read index
	tail   uint64 // write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, overwriting the oldest entry on overflow
func (q *Queue) Push(ev Event) {
	q.events[q.tail&parameter.EventQueueMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Drain returns all pending events in FIFO order and advances the head
func (q *Queue) Drain() []Event {
	if q.tail == q.head {
		return nil
	}
	n := q.tail - q.head
	result := make([]Event, 0, n)
	for i := uint64(0); i < n; i++ {
		result = append(result, q.events[(q.head+i)&parameter.EventQueueMask])
	}
	q.head = q.tail
	return result
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Reset discards all pending events
func (q *Queue) Reset() {
	q.head = q.tail
}
