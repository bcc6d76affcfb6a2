package events_test

import (
	"github.com/thenoetrevino/bidboard/internal/events"
)

// MockEventPublisher is a mock implementation of events.EventPublisher for testing.
// It records all published events for verification in tests.
type MockEventPublisher struct {
	SentEvents []events.Event
	handlers   []events.Handler
}

// NewMockEventPublisher creates a new mock event publisher.
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{SentEvents: []events.Event{}}
}

// Publish records the event and forwards it to handlers.
func (m *MockEventPublisher) Publish(event events.Event) events.Event {
	event.SequenceID = int64(len(m.SentEvents) + 1)
	m.SentEvents = append(m.SentEvents, event)
	for _, h := range m.handlers {
		h(event)
	}
	return event
}

// Subscribe records the handler; unsubscribe is a no-op.
func (m *MockEventPublisher) Subscribe(h events.Handler) func() {
	m.handlers = append(m.handlers, h)
	return func() {}
}

// History filters recorded events by card.
func (m *MockEventPublisher) History(cardID string) []events.Event {
	var out []events.Event
	for _, e := range m.SentEvents {
		if e.CardID == cardID {
			out = append(out, e)
		}
	}
	return out
}

var _ events.EventPublisher = (*MockEventPublisher)(nil)
