// @focus: #event { queue }
package engine

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// BounceEvent is emitted when the ball starts touching a wall
type BounceEvent struct {
	Wall     core.Entity
	Role     component.WallRole
	Collider component.ColliderKind
	Frame    int64
}

// EventQueue collects the current tick's bounce events
// Producers push during the tick, consumers read after, GameContext resets at tick start
type EventQueue struct {
	events []BounceEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]BounceEvent, 0, parameter.EventQueueSize)}
}

// Push appends an event
func (q *EventQueue) Push(ev BounceEvent) {
	q.events = append(q.events, ev)
}

// Events returns the queued events, the slice is only valid until Reset
func (q *EventQueue) Events() []BounceEvent {
	return q.events
}

// Len returns the number of queued events
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Reset empties the queue, keeping capacity
func (q *EventQueue) Reset() {
	q.events = q.events[:0]
}
