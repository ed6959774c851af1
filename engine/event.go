package engine

import (
	"sync"

	"github.com/lixenwraith/orrery/render"
)

// EventKind classifies backend events the loop reacts to
type EventKind uint8

// Zero is not a valid kind
const (
	EventQuit EventKind = iota + 1
	// EventResize carries the new framebuffer size in pixels
	EventResize
)

// Event is a backend-neutral input or window event
type Event struct {
	Kind   EventKind
	Width  int
	Height int
}

// EventSource yields all events pending since the last call, never blocking
type EventSource interface {
	Poll() []Event
}

// Presenter shows a completed frame
type Presenter interface {
	Present(fb *render.Framebuffer) error
}

// EventQueue is a goroutine-safe EventSource fed by Push
type EventQueue struct {
	mu      sync.Mutex
	pending []Event
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event for the next Poll
func (q *EventQueue) Push(ev Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// Poll drains the queue
func (q *EventQueue) Poll() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
