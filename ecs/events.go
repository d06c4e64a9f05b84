package ecs

import "github.com/okranz/collider/physics"

// Event is one queued world event: a type tag plus a payload struct.
type Event struct {
	Type string
	Data any
}

// Event types pushed by the collision system.
const (
	EventCollision    = "collision"
	EventTriggerEnter = "trigger_enter"
)

// CollisionEvent is the payload for EventCollision. Entity ids inside the
// info are the ecs ids of the two entities.
type CollisionEvent struct {
	Info physics.CollisionInfo
}

// TriggerEnterEvent is the payload for EventTriggerEnter.
type TriggerEnterEvent struct {
	A, B physics.EntityID
}

// EventQueue is a FIFO queue of world events. Events live until drained
// or until the end of the update that pushed them, whichever comes first.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
