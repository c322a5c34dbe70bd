package event

// DefaultQueueSize bounds pending events between dispatches
const DefaultQueueSize = 256

// EventQueue is a bounded FIFO for game events
// Owned by the loop goroutine: systems push during a tick, the driver consumes after it
// Overflow: oldest events are dropped
type EventQueue struct {
	events  []GameEvent
	limit   int
	dropped int
}

func NewEventQueue(limit int) *EventQueue {
	if limit <= 0 {
		limit = DefaultQueueSize
	}
	return &EventQueue{
		events: make([]GameEvent, 0, limit),
		limit:  limit,
	}
}

// Push appends an event, discarding the oldest when full
func (eq *EventQueue) Push(ev GameEvent) {
	if len(eq.events) >= eq.limit {
		copy(eq.events, eq.events[1:])
		eq.events = eq.events[:len(eq.events)-1]
		eq.dropped++
	}
	eq.events = append(eq.events, ev)
}

// Emit is shorthand for Push with a type and payload
func (eq *EventQueue) Emit(t EventType, payload any, frame int64) {
	eq.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	eq.events = eq.events[:0]
	return out
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

// Dropped returns the number of events lost to overflow
func (eq *EventQueue) Dropped() int {
	return eq.dropped
}

// Clear discards pending events
func (eq *EventQueue) Clear() {
	eq.events = eq.events[:0]
}
