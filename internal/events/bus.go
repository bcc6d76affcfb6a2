package events

import (
	"slices"
	"time"

	"github.com/thenoetrevino/bidboard/internal/models"
)

// DefaultHistoryLimit is the number of events kept per card
const DefaultHistoryLimit = 256

type subscription struct {
	id      int
	handler Handler
}

// Bus is a synchronous in-process event bus. Publish runs every handler
// before returning, in subscription order. Like the board it feeds from,
// a Bus is meant for a single goroutine.
type Bus struct {
	subs    []subscription
	nextSub int
	seq     int64
	limit   int
	history map[string][]Event
	columns map[string]models.ColumnID // last known column per card
	actor   string
	now     func() time.Time
}

// NewBus creates a bus that keeps up to limit events per card.
// A limit <= 0 uses DefaultHistoryLimit.
func NewBus(limit int) *Bus {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Bus{
		limit:   limit,
		history: make(map[string][]Event),
		columns: make(map[string]models.ColumnID),
		now:     time.Now,
	}
}

// SetActor names who events without an actor are attributed to
func (b *Bus) SetActor(name string) {
	b.actor = name
}

// Publish assigns the next sequence id, a timestamp and an actor (if unset), records
// card events in history and calls every subscriber.
func (b *Bus) Publish(event Event) Event {
	b.seq++
	event.SequenceID = b.seq
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}
	if event.Actor == "" {
		event.Actor = b.actor
	}

	if event.CardID != "" {
		h := append(b.history[event.CardID], event)
		if len(h) > b.limit {
			h = h[len(h)-b.limit:]
		}
		b.history[event.CardID] = h

		switch {
		case event.Type == EventCardDeleted:
			delete(b.columns, event.CardID)
		case event.To != "":
			b.columns[event.CardID] = event.To
		}
	}

	// Handlers may unsubscribe while we iterate
	for _, s := range slices.Clone(b.subs) {
		s.handler(event)
	}
	return event
}

// Subscribe registers h and returns a function that removes it
func (b *Bus) Subscribe(h Handler) func() {
	b.nextSub++
	id := b.nextSub
	b.subs = append(b.subs, subscription{id: id, handler: h})
	return func() {
		b.subs = slices.DeleteFunc(b.subs, func(s subscription) bool { return s.id == id })
	}
}

// History returns a copy of the events recorded for cardID
func (b *Bus) History(cardID string) []Event {
	return slices.Clone(b.history[cardID])
}

// Track records the current column of existing cards without publishing,
// so the first move of a seeded card still knows where it came from.
func (b *Bus) Track(cards ...models.Card) {
	for _, c := range cards {
		b.columns[c.ID] = c.ColumnID
	}
}

// CardMoved lets the bus observe board commits directly
func (b *Bus) CardMoved(cardID string, to models.ColumnID) {
	b.Publish(Event{Type: EventCardMoved, CardID: cardID, From: b.columns[cardID], To: to})
}
