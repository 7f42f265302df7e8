package ecs

import "github.com/milk9111/roomscale/ecs/component"

// Event is a named scene notification. Button events carry no payload
// beyond their identity.
type Event struct {
	Type string
}

// The eight controller button notifications.
const (
	EventAButtonDown = "abuttondown"
	EventAButtonUp   = "abuttonup"
	EventBButtonDown = "bbuttondown"
	EventBButtonUp   = "bbuttonup"
	EventXButtonDown = "xbuttondown"
	EventXButtonUp   = "xbuttonup"
	EventYButtonDown = "ybuttondown"
	EventYButtonUp   = "ybuttonup"
)

// ButtonDownEvent returns the press notification name for b.
func ButtonDownEvent(b component.Button) string {
	return string(b) + "buttondown"
}

// ButtonUpEvent returns the release notification name for b.
func ButtonUpEvent(b component.Button) string {
	return string(b) + "buttonup"
}

// ButtonFromEvent parses a button notification name into the button
// identity and the edge direction. ok is false for non-button events.
func ButtonFromEvent(eventType string) (b component.Button, pressed, ok bool) {
	for _, btn := range component.TrackedButtons {
		switch eventType {
		case ButtonDownEvent(btn):
			return btn, true, true
		case ButtonUpEvent(btn):
			return btn, false, true
		}
	}
	return "", false, false
}

// EventQueue is a simple FIFO queue flushed at the end of each world
// update. Systems peek at Pending so every system of a frame sees the same
// events.
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

// PushType adds an event by notification name.
func (q *EventQueue) PushType(eventType string) {
	q.Push(Event{Type: eventType})
}

// Pending returns the queued events without clearing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
