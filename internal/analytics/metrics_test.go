package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/seed"
)

func TestComputeDefaultSeed(t *testing.T) {
	m := Compute(seed.DefaultCards())

	assert.Equal(t, 5, m.Total)
	assert.Equal(t, 4, m.ActiveRFPs)
	assert.Equal(t, 595000.0, m.PipelineValue)
	assert.Equal(t, 2, m.Submitted)
	assert.Equal(t, 1, m.Won)
	assert.Equal(t, 0, m.Lost)
	assert.Equal(t, 1.0, m.WinRate)

	require.Len(t, m.Stages, 5)
	assert.Equal(t, StageMetric{Column: models.ColumnNew, Count: 2, Value: 400000}, m.Stages[0])
	assert.Equal(t, StageMetric{Column: models.ColumnLost}, m.Stages[4])

	assert.InDelta(t, 129000.0, m.MeanValue, 0.001)
	assert.Equal(t, 120000.0, m.MedianValue)
	assert.Greater(t, m.StdDevValue, 0.0)
}

func TestComputeEdgeCases(t *testing.T) {
	empty := Compute(nil)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0.0, empty.WinRate)
	assert.Equal(t, 0.0, empty.MeanValue)
	assert.Len(t, empty.Stages, 5)

	single := Compute([]models.Card{{ID: "a", Value: 10, ColumnID: models.ColumnLost}})
	assert.Equal(t, 0.0, single.StdDevValue)
	assert.Equal(t, 10.0, single.MedianValue)
	assert.Equal(t, 0.0, single.WinRate)
	assert.Equal(t, 0, single.ActiveRFPs)
}

func TestWinRate(t *testing.T) {
	cards := []models.Card{
		{ID: "a", ColumnID: models.ColumnWon},
		{ID: "b", ColumnID: models.ColumnLost},
		{ID: "c", ColumnID: models.ColumnLost},
		{ID: "d", ColumnID: models.ColumnWon},
		{ID: "e", ColumnID: models.ColumnNew},
	}
	assert.InDelta(t, 0.5, Compute(cards).WinRate, 1e-9)
}

func TestWinLoss(t *testing.T) {
	cards := []models.Card{
		{ID: "a", Client: "Beta", Value: 10, ColumnID: models.ColumnWon},
		{ID: "b", Client: "Alpha", Value: 50, ColumnID: models.ColumnWon},
		{ID: "c", Client: "Beta", Value: 5, ColumnID: models.ColumnLost},
		{ID: "d", Client: "Gamma", Value: 7, ColumnID: models.ColumnNew},
	}

	got := WinLoss(cards)
	require.Len(t, got, 3)
	assert.Equal(t, ClientRecord{Client: "Alpha", Won: 1, Value: 50}, got[0])
	assert.Equal(t, ClientRecord{Client: "Beta", Won: 1, Lost: 1, Value: 10}, got[1])
	assert.Equal(t, ClientRecord{Client: "Gamma", Open: 1}, got[2])
}

func TestBars(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		width  int
		want   []int
	}{
		{"scaled", []float64{100, 50, 0}, 10, []int{10, 5, 0}},
		{"tiny value still visible", []float64{1000, 1}, 10, []int{10, 1}},
		{"all zero", []float64{0, 0}, 10, []int{0, 0}},
		{"no width", []float64{5}, 0, []int{0}},
		{"empty", nil, 10, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bars(tt.values, tt.width))
		})
	}
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$250,000", Currency(250000))
	assert.Equal(t, "$0", Currency(0))
	assert.Equal(t, "-$1,500", Currency(-1500))
	assert.Equal(t, "$999", CompactCurrency(999))
	assert.Equal(t, "$250K", CompactCurrency(250000))
	assert.Equal(t, "$1.2M", CompactCurrency(1200000))
	assert.Equal(t, "75%", Percent(0.75))
}
