package tui

import (
	"strconv"

	"charm.land/bubbles/v2/table"
	"github.com/thenoetrevino/bidboard/internal/analytics"
	"github.com/thenoetrevino/bidboard/internal/tui/components"
)

// column widths act as weights; FitColumns scales them to the screen
func cardTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Title", Width: 32},
		{Title: "Client", Width: 20},
		{Title: "Value", Width: 12},
		{Title: "Due", Width: 13},
		{Title: "Status", Width: 12},
	}
}

func clientTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Name", Width: 24},
		{Title: "Contact", Width: 20},
		{Title: "Email", Width: 28},
		{Title: "RFPs", Width: 6},
	}
}

// refreshTables rebuilds the table rows from the services
func (m Model) refreshTables() {
	cards := m.App.RFPService.ListCards()
	rows := make([]table.Row, 0, len(cards))
	for _, c := range cards {
		due := ""
		if !c.DueDate.IsZero() {
			due = c.DueDate.Format(components.DueDateFormat)
		}
		rows = append(rows, table.Row{
			c.ID,
			c.Title,
			c.Client,
			analytics.Currency(c.Value),
			due,
			c.ColumnID.Title(),
		})
	}
	m.widgets.cards.SetRows(rows)
	if m.widgets.cards.Cursor() >= len(rows) {
		m.widgets.cards.SetCursor(max(len(rows)-1, 0))
	}

	clients := m.App.ClientService.List()
	clientRows := make([]table.Row, 0, len(clients))
	for _, c := range clients {
		clientRows = append(clientRows, table.Row{
			c.ID,
			c.Name,
			c.ContactPerson,
			c.Email,
			strconv.Itoa(m.App.ClientService.RFPCount(c.Name)),
		})
	}
	m.widgets.clients.SetRows(clientRows)
	if m.widgets.clients.Cursor() >= len(clientRows) {
		m.widgets.clients.SetCursor(max(len(clientRows)-1, 0))
	}

	m.widgets.dirty = false
}

// resizeWidgets fits the tables to the main area
func (m Model) resizeWidgets() {
	width := max(m.UiState.MainWidth()-2, 20)
	height := max(m.UiState.ContentHeight()-1, 3)

	m.widgets.cards.SetColumns(components.FitColumns(cardTableColumns(), width))
	m.widgets.cards.SetWidth(width)
	m.widgets.cards.SetHeight(height)

	m.widgets.clients.SetColumns(components.FitColumns(clientTableColumns(), width))
	m.widgets.clients.SetWidth(width)
	m.widgets.clients.SetHeight(height)

	m.widgets.help.SetWidth(m.UiState.Width())
}
