package pipeline

import (
	"fmt"
	"math"
	"slices"

	"github.com/thenoetrevino/bidboard/internal/models"
)

// Tracker maps each rendered column to its current screen rectangle.
// A column without an entry is not a drop target.
type Tracker struct {
	rects map[models.ColumnID]models.Rect
	order []models.ColumnID // registration order, most recent last
}

// NewTracker returns an empty tracker
func NewTracker() *Tracker {
	return &Tracker{rects: make(map[models.ColumnID]models.Rect)}
}

// Register upserts the rectangle for col and marks it most recently registered
func (t *Tracker) Register(col models.ColumnID, rect models.Rect) error {
	if !col.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	if math.IsNaN(rect.Left) || math.IsNaN(rect.Right) || rect.Left > rect.Right {
		return fmt.Errorf("%w: column %s [%g, %g]", ErrInvalidRect, col, rect.Left, rect.Right)
	}
	t.order = slices.DeleteFunc(t.order, func(c models.ColumnID) bool { return c == col })
	t.order = append(t.order, col)
	t.rects[col] = rect
	return nil
}

// Unregister removes col. Unknown columns are ignored.
func (t *Tracker) Unregister(col models.ColumnID) {
	if _, ok := t.rects[col]; !ok {
		return
	}
	delete(t.rects, col)
	t.order = slices.DeleteFunc(t.order, func(c models.ColumnID) bool { return c == col })
}

// Clear removes every registered column
func (t *Tracker) Clear() {
	clear(t.rects)
	t.order = t.order[:0]
}

// Rect returns the registered rectangle of col
func (t *Tracker) Rect(col models.ColumnID) (models.Rect, bool) {
	r, ok := t.rects[col]
	return r, ok
}

// Columns returns the registered columns in registration order
func (t *Tracker) Columns() []models.ColumnID {
	return slices.Clone(t.order)
}

// Lookup returns the column whose horizontal span contains p.X.
// Only horizontal containment is tested; the board is a single row of lanes.
// When spans overlap, the most recently registered column wins.
func (t *Tracker) Lookup(p models.Point) (models.ColumnID, bool) {
	for i := len(t.order) - 1; i >= 0; i-- {
		col := t.order[i]
		if t.rects[col].ContainsX(p.X) {
			return col, true
		}
	}
	return "", false
}
