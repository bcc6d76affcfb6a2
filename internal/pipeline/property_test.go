package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/bidboard/internal/models"
	"pgregory.net/rapid"
)

func cardIDs() []string {
	var ids []string
	for _, c := range scenarioCards() {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestProperty_CommitChangesOnlyTarget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b, err := NewBoard(scenarioCards())
		require.NoError(t, err)

		id := rapid.SampledFrom(cardIDs()).Draw(t, "card")
		to := rapid.SampledFrom(models.Columns()).Draw(t, "to")
		before := b.Registry().All()

		b.Commit(id, to)

		for i, c := range b.Registry().All() {
			if c.ID == id {
				assert.Equal(t, to, c.ColumnID)
				continue
			}
			assert.Equal(t, before[i], c)
		}
	})
}

func TestProperty_DropOnOwnColumnIsNoOp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b, err := NewBoard(scenarioCards())
		require.NoError(t, err)
		for i, col := range models.Columns() {
			require.NoError(t, b.Geometry().Register(col, laneRect(i)))
		}
		notified := 0
		b.OnCardMove(MoveFunc(func(string, models.ColumnID) { notified++ }))

		id := rapid.SampledFrom(cardIDs()).Draw(t, "card")
		card, _ := b.Registry().Get(id)
		r, _ := b.Geometry().Rect(card.ColumnID)
		x := rapid.Float64Range(r.Left, r.Right).Draw(t, "x")
		y := rapid.Float64Range(-100, 100).Draw(t, "y")
		before := b.Registry().All()

		require.True(t, b.BeginDrag(id))
		res := b.Release(models.Point{X: x, Y: y})

		assert.Equal(t, NoOp, res.Outcome)
		assert.Equal(t, 0, notified)
		assert.Equal(t, before, b.Registry().All())
	})
}

func TestProperty_DropOutsideIsNoOp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b, err := NewBoard(scenarioCards())
		require.NoError(t, err)
		for i, col := range models.Columns() {
			require.NoError(t, b.Geometry().Register(col, laneRect(i)))
		}
		notified := 0
		b.OnCardMove(MoveFunc(func(string, models.ColumnID) { notified++ }))

		// Points right of the last lane or left of the first
		x := rapid.OneOf(
			rapid.Float64Range(-1000, -0.001),
			rapid.Float64Range(laneRect(4).Right+0.001, 5000),
		).Draw(t, "x")
		before := b.Registry().All()

		require.True(t, b.BeginDrag(rapid.SampledFrom(cardIDs()).Draw(t, "card")))
		res := b.Release(models.Point{X: x})

		assert.Equal(t, NoOp, res.Outcome)
		assert.Equal(t, 0, notified)
		assert.Equal(t, before, b.Registry().All())
	})
}

func TestProperty_LookupStrictlyInside(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := NewTracker()
		for i, col := range models.Columns() {
			require.NoError(t, tr.Register(col, laneRect(i)))
		}

		i := rapid.IntRange(0, 4).Draw(t, "lane")
		r := laneRect(i)
		x := rapid.Float64Range(r.Left, r.Right).Draw(t, "x")

		got, ok := tr.Lookup(models.Point{X: x})
		require.True(t, ok)
		assert.Equal(t, models.Columns()[i], got)
	})
}

func TestProperty_CommitIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		once, err := NewBoard(scenarioCards())
		require.NoError(t, err)
		twice, err := NewBoard(scenarioCards())
		require.NoError(t, err)

		id := rapid.SampledFrom(cardIDs()).Draw(t, "card")
		to := rapid.SampledFrom(models.Columns()).Draw(t, "to")

		once.Commit(id, to)
		twice.Commit(id, to)
		twice.Commit(id, to)

		assert.Equal(t, once.Registry().All(), twice.Registry().All())
	})
}
