package events

// Handler receives published events
type Handler func(Event)

// EventPublisher defines the interface for publishing and observing events.
// Services depend on this interface rather than the concrete Bus.
type EventPublisher interface {
	// Publish stamps and delivers an event to every subscriber
	Publish(event Event) Event

	// Subscribe registers a handler and returns a function that removes it
	Subscribe(h Handler) (unsubscribe func())

	// History returns the events recorded for a card, oldest first
	History(cardID string) []Event
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
