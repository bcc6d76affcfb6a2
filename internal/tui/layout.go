package tui

import (
	"log/slog"

	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/tui/components"
	"github.com/thenoetrevino/bidboard/internal/tui/state"
)

// columnSlot is where a kanban column is drawn, in terminal cells
type columnSlot struct {
	Column models.ColumnID
	X, Y   int
	Width  int
	Height int
}

// Rect converts the slot to the inclusive cell rectangle the tracker stores
func (s columnSlot) Rect() models.Rect {
	return models.Rect{
		Left:   float64(s.X),
		Right:  float64(s.X + s.Width - 1),
		Top:    float64(s.Y),
		Bottom: float64(s.Y + s.Height - 1),
	}
}

func (s columnSlot) contains(x, y int) bool {
	return x >= s.X && x < s.X+s.Width && y >= s.Y && y < s.Y+s.Height
}

// kanbanVisible reports whether kanban columns are on screen
func (m Model) kanbanVisible() bool {
	return m.UiState.Width() > 0 &&
		m.UiState.Page() == state.PipelinePage &&
		m.UiState.BoardView() == state.KanbanView
}

// columnSlots lays out the columns inside the viewport, left to right from
// the edge of the sidebar. Rendering and hit testing both use this.
func (m Model) columnSlots() []columnSlot {
	if !m.kanbanVisible() {
		return nil
	}

	cols := models.Columns()
	first, last := m.UiState.VisibleColumns()
	step := m.UiState.ColumnWidth() + state.ColumnGap

	slots := make([]columnSlot, 0, last-first+1)
	for i := first; i <= last; i++ {
		slots = append(slots, columnSlot{
			Column: cols[i],
			X:      m.UiState.MainLeft() + (i-first)*step,
			Y:      m.UiState.ContentTop(),
			Width:  m.UiState.ColumnWidth(),
			Height: m.UiState.ContentHeight(),
		})
	}
	return slots
}

// syncGeometry registers the rectangle of every on-screen column with the
// board's tracker and unregisters the rest. It must run after anything that
// changes the layout: resize, sidebar toggle, horizontal scroll, page or
// view switch.
func (m Model) syncGeometry() {
	tracker := m.App.Board.Geometry()

	visible := make(map[models.ColumnID]bool)
	for _, slot := range m.columnSlots() {
		if err := tracker.Register(slot.Column, slot.Rect()); err != nil {
			slog.Error("failed to register column geometry", "column", slot.Column, "error", err)
			continue
		}
		visible[slot.Column] = true
	}

	for _, col := range models.Columns() {
		if !visible[col] {
			tracker.Unregister(col)
		}
	}
}

// cardAt returns the card drawn under the cell (x, y), if any
func (m Model) cardAt(x, y int) (models.Card, bool) {
	for _, slot := range m.columnSlots() {
		if !slot.contains(x, y) {
			continue
		}

		rel := y - slot.Y - components.ColumnHeaderRows
		if rel < 0 {
			return models.Card{}, false
		}
		visibleIdx := rel / components.CardHeight
		if visibleIdx >= components.MaxVisibleCards(slot.Height) {
			return models.Card{}, false
		}

		cards := m.App.RFPService.ListByColumn(slot.Column)
		idx := m.UiState.CardScrollOffset(slot.Column) + visibleIdx
		if idx >= len(cards) {
			return models.Card{}, false
		}
		return cards[idx], true
	}
	return models.Card{}, false
}

// sidebarPageAt returns the page whose sidebar entry is drawn at (x, y)
func (m Model) sidebarPageAt(x, y int) (state.Page, bool) {
	if x < 0 || x >= m.UiState.SidebarWidth() {
		return 0, false
	}
	// title line and a gap line precede the entries
	idx := y - 2
	pages := state.Pages()
	if idx < 0 || idx >= len(pages) {
		return 0, false
	}
	return pages[idx], true
}
