package models

import "strings"

// ColumnID identifies a pipeline stage. The set is closed: only the five
// constants below are valid.
type ColumnID string

const (
	ColumnNew        ColumnID = "new"
	ColumnInProgress ColumnID = "in-progress"
	ColumnSubmitted  ColumnID = "submitted"
	ColumnWon        ColumnID = "won"
	ColumnLost       ColumnID = "lost"
)

// columnOrder is the left-to-right display order of the board
var columnOrder = []ColumnID{
	ColumnNew,
	ColumnInProgress,
	ColumnSubmitted,
	ColumnWon,
	ColumnLost,
}

var columnTitles = map[ColumnID]string{
	ColumnNew:        "New",
	ColumnInProgress: "In Progress",
	ColumnSubmitted:  "Submitted",
	ColumnWon:        "Won",
	ColumnLost:       "Lost",
}

// Columns returns all column ids in display order.
// The returned slice is a copy and may be modified by the caller.
func Columns() []ColumnID {
	out := make([]ColumnID, len(columnOrder))
	copy(out, columnOrder)
	return out
}

// Valid reports whether c is one of the five pipeline stages
func (c ColumnID) Valid() bool {
	_, ok := columnTitles[c]
	return ok
}

// Title returns the display title, or the raw id for invalid columns
func (c ColumnID) Title() string {
	if title, ok := columnTitles[c]; ok {
		return title
	}
	return string(c)
}

// Index returns the display position of c, or -1 if c is not valid
func (c ColumnID) Index() int {
	for i, col := range columnOrder {
		if col == c {
			return i
		}
	}
	return -1
}

// Next returns the column to the right of c
func (c ColumnID) Next() (ColumnID, bool) {
	idx := c.Index()
	if idx < 0 || idx == len(columnOrder)-1 {
		return "", false
	}
	return columnOrder[idx+1], true
}

// Prev returns the column to the left of c
func (c ColumnID) Prev() (ColumnID, bool) {
	idx := c.Index()
	if idx <= 0 {
		return "", false
	}
	return columnOrder[idx-1], true
}

// IsActive reports whether a card in c is still open (not won or lost)
func (c ColumnID) IsActive() bool {
	return c == ColumnNew || c == ColumnInProgress || c == ColumnSubmitted
}

// ParseColumnID maps a column id or display title to a ColumnID.
// Matching is case-insensitive, so "In Progress", "in-progress" and
// "IN-PROGRESS" all resolve to ColumnInProgress.
func ParseColumnID(s string) (ColumnID, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, col := range columnOrder {
		if needle == string(col) || needle == strings.ToLower(columnTitles[col]) {
			return col, nil
		}
	}
	return "", ErrInvalidColumn
}
