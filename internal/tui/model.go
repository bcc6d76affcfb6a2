package tui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/table"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/bidboard/internal/app"
	"github.com/thenoetrevino/bidboard/internal/config"
	"github.com/thenoetrevino/bidboard/internal/events"
	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/tui/components"
	"github.com/thenoetrevino/bidboard/internal/tui/state"
)

// widgets holds the bubbles components. They are kept behind a pointer so the
// value-receiver Update can mutate them like the state structs.
type widgets struct {
	detail       viewport.Model
	detailCardID string

	cards   table.Model
	clients table.Model

	help help.Model

	// dirty is set by the event bus whenever cards or clients change and
	// cleared once the tables have been rebuilt
	dirty bool
}

// Model represents the application state for the TUI
type Model struct {
	App    *app.App
	Config *config.Config
	Keys   KeyMap

	UiState           *state.UIState
	NotificationState *state.NotificationState
	DragState         *state.DragState
	FormState         *state.FormState

	widgets *widgets
}

// InitialModel creates the TUI model on top of a, subscribing to its event bus
// so that tables refresh after every change, including drag commits.
func InitialModel(a *app.App, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	w := &widgets{
		detail: viewport.New(),
		cards: table.New(
			table.WithColumns(cardTableColumns()),
			table.WithFocused(true),
			table.WithStyles(components.TableStyles()),
		),
		clients: table.New(
			table.WithColumns(clientTableColumns()),
			table.WithFocused(true),
			table.WithStyles(components.TableStyles()),
		),
		help:  help.New(),
		dirty: true,
	}
	a.Subscribe(func(events.Event) { w.dirty = true })

	m := Model{
		App:    a,
		Config: cfg,
		Keys:   NewKeyMap(cfg.KeyMappings),
		UiState: state.NewUIState(state.LayoutConfig{
			ColumnWidth:           cfg.Board.ColumnWidth,
			SidebarWidth:          cfg.Board.SidebarWidth,
			CollapsedSidebarWidth: cfg.Board.CollapsedSidebarWidth,
		}),
		NotificationState: state.NewNotificationState(),
		DragState:         state.NewDragState(),
		FormState:         state.NewFormState(),
		widgets:           w,
	}
	m.refreshTables()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// currentColumn returns the selected kanban column
func (m Model) currentColumn() models.ColumnID {
	cols := models.Columns()
	idx := min(max(m.UiState.SelectedColumn(), 0), len(cols)-1)
	return cols[idx]
}

// getCurrentCards returns the cards of the selected kanban column
func (m Model) getCurrentCards() []models.Card {
	return m.App.RFPService.ListByColumn(m.currentColumn())
}

// getCurrentCard returns the selected card in whichever pipeline view is active
func (m Model) getCurrentCard() (models.Card, bool) {
	if m.UiState.BoardView() == state.TableView {
		cards := m.App.RFPService.ListCards()
		idx := m.widgets.cards.Cursor()
		if idx < 0 || idx >= len(cards) {
			return models.Card{}, false
		}
		return cards[idx], true
	}

	cards := m.getCurrentCards()
	idx := m.UiState.SelectedCard()
	if idx < 0 || idx >= len(cards) {
		return models.Card{}, false
	}
	return cards[idx], true
}

// getCurrentClient returns the client selected on the clients page
func (m Model) getCurrentClient() (models.Client, bool) {
	clients := m.App.ClientService.List()
	idx := m.widgets.clients.Cursor()
	if idx < 0 || idx >= len(clients) {
		return models.Client{}, false
	}
	return clients[idx], true
}

// selectCard points the kanban selection at the card with the given id
func (m Model) selectCard(id string) {
	card, err := m.App.RFPService.GetCard(id)
	if err != nil {
		return
	}
	m.UiState.SetSelectedColumn(card.ColumnID.Index())
	for i, c := range m.App.RFPService.ListByColumn(card.ColumnID) {
		if c.ID == id {
			m.UiState.SetSelectedCard(i)
			break
		}
	}
	m.UiState.EnsureSelectionVisible(card.ColumnID.Index())
	m.ensureCardVisible()
}

// clampSelection keeps the kanban selection inside the selected column
func (m Model) clampSelection() {
	n := len(m.getCurrentCards())
	if m.UiState.SelectedCard() >= n {
		m.UiState.SetSelectedCard(max(n-1, 0))
	}
	if m.UiState.SelectedCard() < 0 {
		m.UiState.SetSelectedCard(0)
	}
}

// ensureCardVisible scrolls the selected column so the selected card is shown
func (m Model) ensureCardVisible() {
	m.UiState.EnsureCardVisible(
		m.currentColumn(),
		m.UiState.SelectedCard(),
		components.MaxVisibleCards(m.UiState.ContentHeight()),
	)
}

// clientNames lists the client names offered by the RFP forms
func (m Model) clientNames() []string {
	clients := m.App.ClientService.List()
	names := make([]string, 0, len(clients))
	for _, c := range clients {
		names = append(names, c.Name)
	}
	return names
}
