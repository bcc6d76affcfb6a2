package events

import "log/slog"

// Publish sends an event through pub, skipping silently when pub is nil
// (e.g. in tests or CLI commands that do not track history).
func Publish(pub EventPublisher, event Event) {
	if pub == nil {
		return
	}
	stamped := pub.Publish(event)
	slog.Debug("event published",
		"event_type", stamped.Type,
		"card_id", stamped.CardID,
		"sequence_id", stamped.SequenceID)
}
