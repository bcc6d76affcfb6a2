package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/tui/components"
)

// ============================================================================
// MOUSE DRAG AND DROP
// ============================================================================

func pointOf(mouse tea.Mouse) models.Point {
	return models.Point{X: float64(mouse.X), Y: float64(mouse.Y)}
}

// handleMouseClick starts a drag when the left button goes down on a card.
// Clicking a sidebar entry switches page.
func (m Model) handleMouseClick(mouse tea.Mouse) tea.Cmd {
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	m.NotificationState.Clear()

	if page, ok := m.sidebarPageAt(mouse.X, mouse.Y); ok {
		return m.handleSwitchPage(page)
	}

	card, ok := m.cardAt(mouse.X, mouse.Y)
	if !ok {
		return nil
	}
	if !m.App.Board.BeginDrag(card.ID) {
		return nil
	}

	m.selectCard(card.ID)
	hover, _ := m.App.Board.Geometry().Lookup(pointOf(mouse))
	m.DragState.Start(card.ID, mouse.X, mouse.Y)
	m.DragState.Move(mouse.X, mouse.Y, hover)
	slog.Debug("drag started", "card_id", card.ID, "x", mouse.X, "y", mouse.Y)
	return nil
}

// handleMouseMotion moves the drag ghost and tracks the column under it
func (m Model) handleMouseMotion(mouse tea.Mouse) tea.Cmd {
	if !m.DragState.Active() {
		return nil
	}
	hover, _ := m.App.Board.Geometry().Lookup(pointOf(mouse))
	m.DragState.Move(mouse.X, mouse.Y, hover)
	return nil
}

// handleMouseRelease drops the dragged card at the pointer. A drop outside
// every column, or onto the card's own column, changes nothing.
func (m Model) handleMouseRelease(mouse tea.Mouse) tea.Cmd {
	if !m.DragState.Active() {
		return nil
	}
	cardID := m.DragState.CardID()
	m.DragState.Stop()

	res := m.App.Board.Release(pointOf(mouse))
	if !res.Committed() {
		return nil
	}

	title := cardID
	if card, err := m.App.RFPService.GetCard(cardID); err == nil {
		title = card.Title
	}
	m.notifyMoved(title, res)
	m.selectCard(cardID)
	m.syncGeometry()
	return nil
}

// handleMouseWheel scrolls the column under the pointer
func (m Model) handleMouseWheel(mouse tea.Mouse) tea.Cmd {
	for _, slot := range m.columnSlots() {
		if !slot.contains(mouse.X, mouse.Y) {
			continue
		}
		n := len(m.App.RFPService.ListByColumn(slot.Column))
		maxOffset := max(n-components.MaxVisibleCards(slot.Height), 0)
		offset := m.UiState.CardScrollOffset(slot.Column)
		switch mouse.Button {
		case tea.MouseWheelDown:
			offset = min(offset+1, maxOffset)
		case tea.MouseWheelUp:
			offset = max(offset-1, 0)
		}
		m.UiState.SetCardScrollOffset(slot.Column, offset)
	}
	return nil
}

// cancelDrag abandons a drag in progress, leaving the card where it was
func (m Model) cancelDrag() {
	if !m.DragState.Active() {
		return
	}
	m.App.Board.EndDrag()
	m.DragState.Stop()
}
