package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/pipeline"
	"github.com/thenoetrevino/bidboard/internal/services/rfp"
	"github.com/thenoetrevino/bidboard/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
// Any key dismisses the current toasts.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) tea.Cmd {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	// Global keys
	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.ShowHelp:
		m.cancelDrag()
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.PageDashboard:
		return m.handleSwitchPage(state.DashboardPage)
	case km.PagePipeline:
		return m.handleSwitchPage(state.PipelinePage)
	case km.PageAnalytics:
		return m.handleSwitchPage(state.AnalyticsPage)
	case km.PageClients:
		return m.handleSwitchPage(state.ClientsPage)
	case km.ToggleSidebar:
		m.UiState.ToggleSidebar()
		m.resizeWidgets()
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
		m.syncGeometry()
		return nil
	case km.NewRFP:
		return m.handleNewRFP()
	case "esc":
		m.cancelDrag()
		return nil
	}

	switch m.UiState.Page() {
	case state.PipelinePage:
		return m.handlePipelineKey(key)
	case state.ClientsPage:
		return m.handleClientsKey(key)
	}
	return nil
}

func (m Model) handlePipelineKey(key string) tea.Cmd {
	km := m.Config.KeyMappings

	switch key {
	case km.ToggleView:
		m.UiState.ToggleBoardView()
		m.syncGeometry()
		return nil
	case km.ViewRFP:
		return m.handleViewRFP()
	case km.EditRFP:
		return m.handleEditRFP()
	case km.DeleteRFP:
		return m.handleDeleteRFP()
	case km.MoveRFPLeft:
		return m.handleMoveRFP(m.App.RFPService.MoveCardPrev)
	case km.MoveRFPRight:
		return m.handleMoveRFP(m.App.RFPService.MoveCardNext)
	}

	if m.UiState.BoardView() == state.TableView {
		switch key {
		case km.NextRFP, "down":
			m.widgets.cards.MoveDown(1)
		case km.PrevRFP, "up":
			m.widgets.cards.MoveUp(1)
		}
		return nil
	}

	switch key {
	case km.PrevColumn, "left":
		m.handleNavigateColumn(-1)
	case km.NextColumn, "right":
		m.handleNavigateColumn(1)
	case km.NextRFP, "down":
		m.handleNavigateCard(1)
	case km.PrevRFP, "up":
		m.handleNavigateCard(-1)
	case km.ScrollViewportLeft:
		if m.UiState.ScrollViewportLeft() {
			m.syncGeometry()
		}
	case km.ScrollViewportRight:
		if m.UiState.ScrollViewportRight() {
			m.syncGeometry()
		}
	}
	return nil
}

func (m Model) handleClientsKey(key string) tea.Cmd {
	km := m.Config.KeyMappings

	switch key {
	case km.NextRFP, "down":
		m.widgets.clients.MoveDown(1)
	case km.PrevRFP, "up":
		m.widgets.clients.MoveUp(1)
	case km.AddClient:
		return m.handleAddClient()
	case km.EditRFP:
		return m.handleEditClient()
	case km.DeleteRFP:
		return m.handleDeleteClient()
	}
	return nil
}

// handleSwitchPage shows p and re-registers column geometry, which drops
// every column when the kanban leaves the screen.
func (m Model) handleSwitchPage(p state.Page) tea.Cmd {
	m.cancelDrag()
	m.UiState.SetPage(p)
	m.syncGeometry()
	return nil
}

func (m Model) handleNavigateColumn(delta int) {
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= len(models.Columns()) {
		return
	}
	m.UiState.SetSelectedColumn(next)
	m.clampSelection()
	m.ensureCardVisible()

	before := m.UiState.ViewportOffset()
	m.UiState.EnsureSelectionVisible(next)
	if m.UiState.ViewportOffset() != before {
		m.syncGeometry()
	}
}

func (m Model) handleNavigateCard(delta int) {
	next := m.UiState.SelectedCard() + delta
	if next < 0 || next >= len(m.getCurrentCards()) {
		return
	}
	m.UiState.SetSelectedCard(next)
	m.ensureCardVisible()
}

// handleMoveRFP moves the selected card one stage through the rfp service,
// so the move reaches the board's observers exactly like a drop.
func (m Model) handleMoveRFP(move func(id string) (pipeline.Result, error)) tea.Cmd {
	card, ok := m.getCurrentCard()
	if !ok {
		return nil
	}

	res, err := move(card.ID)
	switch {
	case errors.Is(err, rfp.ErrAlreadyFirstColumn), errors.Is(err, rfp.ErrAlreadyLastColumn):
		m.NotificationState.Add(state.LevelWarning, fmt.Sprintf("%s is already in %s", card.Title, card.ColumnID.Title()))
		return nil
	case err != nil:
		slog.Error("failed to move rfp", "card_id", card.ID, "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return nil
	}

	m.notifyMoved(card.Title, res)
	if m.UiState.BoardView() == state.KanbanView {
		m.selectCard(card.ID)
		m.syncGeometry()
	}
	return nil
}

// notifyMoved shows the toast for a committed move
func (m Model) notifyMoved(title string, res pipeline.Result) {
	if !res.Committed() {
		return
	}
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Moved %s to %s", title, res.To.Title()))
}

func (m Model) handleViewRFP() tea.Cmd {
	card, ok := m.getCurrentCard()
	if !ok {
		return nil
	}
	m.openDetail(card.ID)
	return nil
}
