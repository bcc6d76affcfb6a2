package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/bidboard/internal/models"
)

func TestNewRegistry_PreservesOrder(t *testing.T) {
	r, err := NewRegistry(scenarioCards())
	require.NoError(t, err)

	all := r.All()
	require.Len(t, all, 5)
	for i, c := range all {
		assert.Equal(t, scenarioCards()[i].ID, c.ID)
	}
}

func TestNewRegistry_RejectsBadSeed(t *testing.T) {
	tests := []struct {
		name    string
		seed    []models.Card
		wantErr error
	}{
		{
			name: "duplicate id",
			seed: []models.Card{
				{ID: "a", ColumnID: models.ColumnNew},
				{ID: "a", ColumnID: models.ColumnWon},
			},
			wantErr: ErrDuplicateCard,
		},
		{
			name:    "invalid column",
			seed:    []models.Card{{ID: "a", ColumnID: "archived"}},
			wantErr: models.ErrInvalidColumn,
		},
		{
			name:    "negative value",
			seed:    []models.Card{{ID: "a", ColumnID: models.ColumnNew, Value: -5}},
			wantErr: models.ErrNegativeValue,
		},
		{
			name:    "nan value",
			seed:    []models.Card{{ID: "rfp-9", ColumnID: models.ColumnNew, Value: math.NaN()}},
			wantErr: models.ErrNonFiniteValue,
		},
		{
			name:    "missing id",
			seed:    []models.Card{{ColumnID: models.ColumnNew}},
			wantErr: models.ErrEmptyCardID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.seed)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, ErrInvalidSeed)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_EmptySeed(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.ByColumn(models.ColumnNew))
}

func TestRegistry_ByColumn(t *testing.T) {
	r, err := NewRegistry(scenarioCards())
	require.NoError(t, err)

	newCards := r.ByColumn(models.ColumnNew)
	require.Len(t, newCards, 2)
	assert.Equal(t, "rfp-1", newCards[0].ID)
	assert.Equal(t, "rfp-2", newCards[1].ID)

	assert.Empty(t, r.ByColumn(models.ColumnLost))
}

func TestRegistry_GetReturnsCopy(t *testing.T) {
	r, err := NewRegistry(scenarioCards())
	require.NoError(t, err)

	c, ok := r.Get("rfp-1")
	require.True(t, ok)
	c.Title = "changed"

	again, _ := r.Get("rfp-1")
	assert.Equal(t, "Enterprise Software Overhaul", again.Title)
}

func TestRegistry_Update(t *testing.T) {
	r, err := NewRegistry(scenarioCards())
	require.NoError(t, err)

	c, _ := r.Get("rfp-3")
	c.Title = "Analytics Platform v2"
	c.Value = 80000
	require.NoError(t, r.Update(c))

	got, _ := r.Get("rfp-3")
	assert.Equal(t, "Analytics Platform v2", got.Title)
	assert.Equal(t, 80000.0, got.Value)

	c.ColumnID = models.ColumnWon
	assert.ErrorIs(t, r.Update(c), ErrColumnChange)

	assert.ErrorIs(t, r.Update(models.Card{ID: "missing", ColumnID: models.ColumnNew}), ErrCardNotFound)
}

func TestRegistry_Remove(t *testing.T) {
	r, err := NewRegistry(scenarioCards())
	require.NoError(t, err)

	assert.True(t, r.Remove("rfp-2"))
	assert.False(t, r.Remove("rfp-2"))
	assert.Equal(t, 4, r.Len())

	// Index must stay consistent for cards after the removed one
	c, ok := r.Get("rfp-5")
	require.True(t, ok)
	assert.Equal(t, models.ColumnWon, c.ColumnID)

	require.NoError(t, r.Add(models.Card{ID: "rfp-2", ColumnID: models.ColumnLost}))
	assert.Equal(t, "rfp-2", r.All()[4].ID)
}
