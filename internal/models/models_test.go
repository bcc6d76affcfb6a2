package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// ColumnID Tests
// ============================================================================

func TestColumns_DisplayOrder(t *testing.T) {
	want := []ColumnID{ColumnNew, ColumnInProgress, ColumnSubmitted, ColumnWon, ColumnLost}
	assert.Equal(t, want, Columns())
}

func TestColumns_ReturnsCopy(t *testing.T) {
	cols := Columns()
	cols[0] = "mutated"

	assert.Equal(t, ColumnNew, Columns()[0])
}

func TestColumnID_Valid(t *testing.T) {
	tests := []struct {
		col  ColumnID
		want bool
	}{
		{ColumnNew, true},
		{ColumnInProgress, true},
		{ColumnSubmitted, true},
		{ColumnWon, true},
		{ColumnLost, true},
		{"", false},
		{"done", false},
		{"New", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.col), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.col.Valid())
		})
	}
}

func TestColumnID_NextPrev(t *testing.T) {
	next, ok := ColumnNew.Next()
	require.True(t, ok)
	assert.Equal(t, ColumnInProgress, next)

	_, ok = ColumnLost.Next()
	assert.False(t, ok, "last column has no next")

	prev, ok := ColumnWon.Prev()
	require.True(t, ok)
	assert.Equal(t, ColumnSubmitted, prev)

	_, ok = ColumnNew.Prev()
	assert.False(t, ok, "first column has no prev")

	_, ok = ColumnID("bogus").Next()
	assert.False(t, ok)
}

func TestParseColumnID(t *testing.T) {
	tests := []struct {
		in      string
		want    ColumnID
		wantErr bool
	}{
		{"new", ColumnNew, false},
		{"In Progress", ColumnInProgress, false},
		{"in-progress", ColumnInProgress, false},
		{"  WON ", ColumnWon, false},
		{"Lost", ColumnLost, false},
		{"done", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColumnID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColumn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ============================================================================
// Card Tests
// ============================================================================

func TestCard_Validate(t *testing.T) {
	valid := Card{ID: "rfp-1", Title: "t", Client: "c", Value: 10, ColumnID: ColumnNew}
	require.NoError(t, valid.Validate())

	noID := valid
	noID.ID = ""
	assert.ErrorIs(t, noID.Validate(), ErrEmptyCardID)

	badColumn := valid
	badColumn.ColumnID = "archived"
	assert.ErrorIs(t, badColumn.Validate(), ErrInvalidColumn)

	negative := valid
	negative.Value = -1
	err := negative.Validate()
	assert.True(t, errors.Is(err, ErrNegativeValue))

	zero := valid
	zero.Value = 0
	assert.NoError(t, zero.Validate(), "zero value is allowed")
}

func TestCard_ValidateNonFiniteValue(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Card{ID: "rfp-9", ColumnID: ColumnNew, Value: tt.value}
			assert.ErrorIs(t, c.Validate(), ErrNonFiniteValue)
		})
	}
}

func TestRect_ContainsX(t *testing.T) {
	r := Rect{Left: 10, Right: 20, Top: 0, Bottom: 5}

	assert.True(t, r.ContainsX(10), "left edge is inclusive")
	assert.True(t, r.ContainsX(20), "right edge is inclusive")
	assert.True(t, r.ContainsX(15))
	assert.False(t, r.ContainsX(9.99))
	assert.False(t, r.ContainsX(20.01))
	assert.Equal(t, 10.0, r.Width())
}
