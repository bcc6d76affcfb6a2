package events

import (
	"time"

	"github.com/thenoetrevino/bidboard/internal/models"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventCardCreated   EventType = "card_created"
	EventCardUpdated   EventType = "card_updated"
	EventCardMoved     EventType = "card_moved"
	EventCardDeleted   EventType = "card_deleted"
	EventClientChanged EventType = "client_changed"
)

// Event represents a change to the pipeline
type Event struct {
	Type       EventType       `json:"type"`
	CardID     string          `json:"card_id,omitempty"`
	ClientID   string          `json:"client_id,omitempty"`
	From       models.ColumnID `json:"from,omitempty"`
	To         models.ColumnID `json:"to,omitempty"`
	Message    string          `json:"message,omitempty"`
	Actor      string          `json:"actor,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`  // When the event occurred
	SequenceID int64           `json:"sequence_id"` // Monotonically increasing sequence number for ordering
}

// Describe returns a one-line human summary used by the history view
func (e Event) Describe() string {
	switch e.Type {
	case EventCardCreated:
		return "RFP created in " + e.To.Title()
	case EventCardMoved:
		if e.From != "" {
			return "Status changed from " + e.From.Title() + " to " + e.To.Title()
		}
		return "Status changed to " + e.To.Title()
	case EventCardUpdated:
		if e.Message != "" {
			return e.Message
		}
		return "RFP details updated"
	case EventCardDeleted:
		return "RFP deleted"
	case EventClientChanged:
		if e.Message != "" {
			return e.Message
		}
		return "Client updated"
	default:
		return string(e.Type)
	}
}
