package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/bidboard/internal/models"
)

// scenarioCards returns the five demo cards spread over new, new,
// in-progress, submitted and won.
func scenarioCards() []models.Card {
	return []models.Card{
		{ID: "rfp-1", Title: "Enterprise Software Overhaul", Client: "Innovate Corp", Value: 250000, ColumnID: models.ColumnNew},
		{ID: "rfp-2", Title: "Cloud Migration Strategy", Client: "DataStream LLC", Value: 150000, ColumnID: models.ColumnNew},
		{ID: "rfp-3", Title: "Marketing Analytics Platform", Client: "MarketMinds", Value: 75000, ColumnID: models.ColumnInProgress},
		{ID: "rfp-4", Title: "Security Infrastructure Audit", Client: "SecureNet", Value: 120000, ColumnID: models.ColumnSubmitted},
		{ID: "rfp-5", Title: "Website Redesign", Client: "Creative Solutions", Value: 50000, ColumnID: models.ColumnWon},
	}
}

// laneRect returns a 30-wide lane for the i-th column, with a 2 cell gap
func laneRect(i int) models.Rect {
	left := float64(i * 32)
	return models.Rect{Left: left, Right: left + 29, Top: 2, Bottom: 40}
}

// setupBoard builds a board from the scenario cards with all five lanes
// registered left to right, plus a move counter observer.
func setupBoard(t *testing.T) (*Board, *[]moveCall) {
	t.Helper()
	b, err := NewBoard(scenarioCards())
	require.NoError(t, err)

	for i, col := range models.Columns() {
		require.NoError(t, b.Geometry().Register(col, laneRect(i)))
	}

	calls := &[]moveCall{}
	b.OnCardMove(MoveFunc(func(cardID string, to models.ColumnID) {
		*calls = append(*calls, moveCall{cardID: cardID, to: to})
	}))
	return b, calls
}

type moveCall struct {
	cardID string
	to     models.ColumnID
}

// centerOf returns a point in the middle of the lane registered for col
func centerOf(t *testing.T, b *Board, col models.ColumnID) models.Point {
	t.Helper()
	r, ok := b.Geometry().Rect(col)
	require.True(t, ok, "column %s not registered", col)
	return models.Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}
