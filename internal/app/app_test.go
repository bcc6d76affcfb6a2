package app

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/bidboard/internal/events"
	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/pipeline"
	"github.com/thenoetrevino/bidboard/internal/seed"
)

func TestNew(t *testing.T) {
	a, err := New(seed.Default())
	require.NoError(t, err)

	require.NotNil(t, a.Board)
	require.NotNil(t, a.Bus)
	require.NotNil(t, a.RFPService)
	require.NotNil(t, a.ClientService)

	assert.Equal(t, 5, a.Board.Registry().Len())
	assert.Len(t, a.ClientService.List(), 5)
}

func TestNewRejectsInvalidSeed(t *testing.T) {
	data := seed.Data{Cards: []models.Card{
		{ID: "dup", ColumnID: models.ColumnNew},
		{ID: "dup", ColumnID: models.ColumnWon},
	}}

	_, err := New(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, pipeline.ErrInvalidSeed)
}

func TestDragCommitReachesBus(t *testing.T) {
	a, err := New(seed.Default())
	require.NoError(t, err)

	var got []events.Event
	a.Subscribe(func(e events.Event) { got = append(got, e) })

	require.NoError(t, a.Board.Geometry().Register(models.ColumnWon, models.Rect{Left: 100, Right: 129}))
	require.True(t, a.Board.BeginDrag("rfp-3"))
	res := a.Board.Release(models.Point{X: 110, Y: 4})

	require.True(t, res.Committed())
	require.Len(t, got, 1)
	assert.Equal(t, events.EventCardMoved, got[0].Type)
	assert.Equal(t, models.ColumnInProgress, got[0].From)
	assert.Equal(t, models.ColumnWon, got[0].To)
}

func TestClientCountsFollowCards(t *testing.T) {
	a, err := New(seed.Default())
	require.NoError(t, err)

	assert.Equal(t, 1, a.ClientService.RFPCount("Innovate Corp"))
	require.NoError(t, a.RFPService.DeleteCard("rfp-1"))
	assert.Equal(t, 0, a.ClientService.RFPCount("Innovate Corp"))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a, err := New(seed.Default(), WithLogger(logger), WithHistoryLimit(2))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "app initialized")

	_, err = a.RFPService.MoveCard("rfp-1", "in-progress")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "type=card_moved")
}

func TestClose(t *testing.T) {
	a, err := New(seed.Default())
	require.NoError(t, err)

	calls := 0
	a.Subscribe(func(events.Event) { calls++ })
	require.True(t, a.Board.BeginDrag("rfp-1"))

	require.NoError(t, a.Close())

	_, active := a.Board.ActiveDrag()
	assert.False(t, active)

	a.Board.Commit("rfp-1", models.ColumnWon)
	assert.Equal(t, 0, calls)
}

func TestWithActor(t *testing.T) {
	a, err := New(seed.Default(), WithActor("alice"))
	require.NoError(t, err)

	_, err = a.RFPService.MoveCard("rfp-1", "won")
	require.NoError(t, err)

	h := a.RFPService.History("rfp-1")
	require.NotEmpty(t, h)
	assert.Equal(t, "alice", h[len(h)-1].Actor)
}
