package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/bidboard/internal/events"
	"github.com/thenoetrevino/bidboard/internal/models"
)

func TestPublish_NilPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		events.Publish(nil, events.Event{Type: events.EventCardCreated})
	})
}

func TestPublish_ForwardsToPublisher(t *testing.T) {
	mock := NewMockEventPublisher()

	events.Publish(mock, events.Event{Type: events.EventCardMoved, CardID: "rfp-1", To: models.ColumnWon})

	require.Len(t, mock.SentEvents, 1)
	assert.Equal(t, events.EventCardMoved, mock.SentEvents[0].Type)
	assert.Len(t, mock.History("rfp-1"), 1)
}
