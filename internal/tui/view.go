package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/bidboard/internal/analytics"
	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/tui/components"
	"github.com/thenoetrevino/bidboard/internal/tui/layers"
	"github.com/thenoetrevino/bidboard/internal/tui/notifications"
	"github.com/thenoetrevino/bidboard/internal/tui/state"
	"github.com/thenoetrevino/bidboard/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		return m.newView("Loading...")
	}

	out := []*lipgloss.Layer{lipgloss.NewLayer(m.renderBase())}

	if m.DragState.Active() {
		if ghost := m.renderDragGhostLayer(); ghost != nil {
			out = append(out, ghost)
		}
	}

	out = append(out, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.WizardMode, state.EditFormMode, state.ClientFormMode, state.DeleteConfirmMode:
		modal = m.renderFormLayer()
	case state.DetailMode:
		modal = m.renderDetailLayer()
	case state.HelpMode:
		modal = m.renderHelpLayer()
	}
	if modal != nil {
		out = append(out, modal)
	}

	return m.newView(lipgloss.NewCanvas(out...).Render())
}

// newView wraps content with the terminal settings every frame uses
func (m Model) newView(content string) tea.View {
	view := tea.NewView(content)
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = lipgloss.Color(theme.Background)
	return view
}

// renderBase draws the sidebar, the page and the status bar
func (m Model) renderBase() string {
	bodyHeight := m.UiState.Height() - state.StatusBarHeight

	items := make([]components.SidebarItem, 0, len(state.Pages()))
	km := m.Config.KeyMappings
	pageKeys := []string{km.PageDashboard, km.PagePipeline, km.PageAnalytics, km.PageClients}
	active := 0
	for i, p := range state.Pages() {
		items = append(items, components.SidebarItem{Key: pageKeys[i], Title: p.Title(), Icon: p.Icon()})
		if p == m.UiState.Page() {
			active = i
		}
	}
	sidebar := components.RenderSidebar(components.SidebarProps{
		Items:     items,
		Active:    active,
		Width:     m.UiState.SidebarWidth(),
		Height:    bodyHeight,
		Collapsed: m.UiState.SidebarCollapsed(),
	})

	mainWidth := m.UiState.MainWidth()
	header := components.RenderHeader(m.UiState.Page().Title(), m.pageSubtitle(), mainWidth)

	var body string
	switch m.UiState.Page() {
	case state.DashboardPage:
		body = m.renderDashboard(mainWidth)
	case state.PipelinePage:
		body = m.renderPipeline()
	case state.AnalyticsPage:
		body = m.renderAnalytics(mainWidth)
	case state.ClientsPage:
		body = m.widgets.clients.View()
	}

	main := lipgloss.NewStyle().
		Width(mainWidth).
		Height(bodyHeight).
		MaxWidth(mainWidth).
		MaxHeight(bodyHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main),
		m.renderStatusBar(),
	)
}

func (m Model) pageSubtitle() string {
	switch m.UiState.Page() {
	case state.PipelinePage:
		if m.UiState.BoardView() == state.TableView {
			return fmt.Sprintf("%d rfps", len(m.widgets.cards.Rows()))
		}
		first, last := m.UiState.VisibleColumns()
		return fmt.Sprintf("columns %d-%d of %d", first+1, last+1, len(models.Columns()))
	case state.ClientsPage:
		return fmt.Sprintf("%d clients", len(m.widgets.clients.Rows()))
	}
	return ""
}

// renderPipeline draws the kanban columns at their slots, or the card table
func (m Model) renderPipeline() string {
	if m.UiState.BoardView() == state.TableView {
		return m.widgets.cards.View()
	}

	slots := m.columnSlots()
	parts := make([]string, 0, len(slots)*2)
	for i, slot := range slots {
		if i > 0 {
			gap := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", state.ColumnGap)+"\n", slot.Height), "\n")
			parts = append(parts, gap)
		}
		selected := slot.Column.Index() == m.UiState.SelectedColumn()
		dropTarget := m.DragState.Active() && m.DragState.Hover() == slot.Column
		parts = append(parts, components.RenderColumn(components.ColumnProps{
			Column:       slot.Column,
			Cards:        m.App.RFPService.ListByColumn(slot.Column),
			Width:        slot.Width,
			Height:       slot.Height,
			Selected:     selected,
			SelectedCard: m.UiState.SelectedCard(),
			ScrollOffset: m.UiState.CardScrollOffset(slot.Column),
			DropTarget:   dropTarget,
			DraggingID:   m.DragState.CardID(),
		}))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderDashboard shows the headline figures and cards per stage
func (m Model) renderDashboard(width int) string {
	metrics := analytics.Compute(m.App.RFPService.ListCards())

	cardWidth := max((width-3)/4, 16)
	figures := lipgloss.JoinHorizontal(lipgloss.Top,
		components.RenderMetricCard("Active RFPs", fmt.Sprintf("%d", metrics.ActiveRFPs), cardWidth),
		components.RenderMetricCard("Pipeline Value", analytics.CompactCurrency(metrics.PipelineValue), cardWidth),
		components.RenderMetricCard("Win Rate", analytics.Percent(metrics.WinRate), cardWidth),
		components.RenderMetricCard("Submitted", fmt.Sprintf("%d", metrics.Submitted), cardWidth),
	)

	counts := make([]float64, len(metrics.Stages))
	for i, s := range metrics.Stages {
		counts[i] = float64(s.Count)
	}
	lengths := analytics.Bars(counts, max(width-30, 10))

	rows := make([]components.BarRow, 0, len(metrics.Stages))
	for i, s := range metrics.Stages {
		rows = append(rows, components.BarRow{
			Label:  s.Column.Title(),
			Length: lengths[i],
			Value:  fmt.Sprintf("%d", s.Count),
			Color:  components.StageColor(s.Column),
		})
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		figures,
		"",
		components.TitleStyle.Render("RFPs by stage"),
		components.RenderBarChart(rows),
	)
}

// renderAnalytics shows value per stage, outcomes per client and the spread
// of RFP values
func (m Model) renderAnalytics(width int) string {
	cards := m.App.RFPService.ListCards()
	metrics := analytics.Compute(cards)

	values := make([]float64, len(metrics.Stages))
	for i, s := range metrics.Stages {
		values[i] = s.Value
	}
	lengths := analytics.Bars(values, max(width-30, 10))

	stageRows := make([]components.BarRow, 0, len(metrics.Stages))
	for i, s := range metrics.Stages {
		stageRows = append(stageRows, components.BarRow{
			Label:  s.Column.Title(),
			Length: lengths[i],
			Value:  analytics.CompactCurrency(s.Value),
			Color:  components.StageColor(s.Column),
		})
	}

	var winLoss strings.Builder
	records := analytics.WinLoss(cards)
	if len(records) == 0 {
		winLoss.WriteString(components.IndicatorStyle.Render("No RFPs yet"))
	}
	for i, r := range records {
		if i > 0 {
			winLoss.WriteString("\n")
		}
		fmt.Fprintf(&winLoss, "%-24.24s %s %s %s  %s",
			r.Client,
			lipgloss.NewStyle().Foreground(lipgloss.Color(theme.StageWon)).Render(fmt.Sprintf("%dW", r.Won)),
			lipgloss.NewStyle().Foreground(lipgloss.Color(theme.StageLost)).Render(fmt.Sprintf("%dL", r.Lost)),
			components.SubtleStyle.Render(fmt.Sprintf("%d open", r.Open)),
			analytics.CompactCurrency(r.Value),
		)
	}

	spread := fmt.Sprintf("mean %s  •  std dev %s  •  median %s",
		analytics.CompactCurrency(metrics.MeanValue),
		analytics.CompactCurrency(metrics.StdDevValue),
		analytics.CompactCurrency(metrics.MedianValue),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Value by stage"),
		components.RenderBarChart(stageRows),
		"",
		components.TitleStyle.Render("Win / loss by client"),
		winLoss.String(),
		"",
		components.TitleStyle.Render("RFP value"),
		components.SubtleStyle.Render(spread),
	)
}

// renderStatusBar shows the mode, or the card being dragged, and key hints
func (m Model) renderStatusBar() string {
	left := modeLabel(m.UiState.Mode())
	if m.DragState.Active() {
		title := m.DragState.CardID()
		if card, err := m.App.RFPService.GetCard(title); err == nil {
			title = card.Title
		}
		left = "DRAGGING " + title
		if hover := m.DragState.Hover(); hover != "" {
			left += " → " + hover.Title()
		}
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  left,
		Right: m.widgets.help.ShortHelpView(m.Keys.ShortHelp()),
	})
}

func modeLabel(mode state.Mode) string {
	switch mode {
	case state.WizardMode:
		return "NEW RFP"
	case state.EditFormMode:
		return "EDIT RFP"
	case state.ClientFormMode:
		return "CLIENT"
	case state.DeleteConfirmMode:
		return "DELETE"
	case state.DetailMode:
		return "DETAIL"
	case state.HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// renderDragGhostLayer draws the dragged card next to the pointer
func (m Model) renderDragGhostLayer() *lipgloss.Layer {
	card, err := m.App.RFPService.GetCard(m.DragState.CardID())
	if err != nil {
		return nil
	}
	x, y := m.DragState.Cursor()
	ghost := components.RenderDragGhost(card, components.CardWidth(m.UiState.ColumnWidth()))
	return layers.CreateCursorLayer(ghost, x, y, m.UiState.Width(), m.UiState.Height())
}

// renderFormLayer frames the open huh form as a centered modal
func (m Model) renderFormLayer() *lipgloss.Layer {
	if m.FormState.Form == nil {
		return nil
	}

	var title string
	box := components.FormBoxStyle
	switch m.UiState.Mode() {
	case state.WizardMode:
		title = "New RFP"
		box = components.CreateInputBoxStyle
	case state.EditFormMode:
		title = "Edit RFP"
		box = components.EditInputBoxStyle
	case state.ClientFormMode:
		title = "New Client"
		if m.FormState.EditingClientID != "" {
			title = "Edit Client"
		}
	case state.DeleteConfirmMode:
		title = "Delete"
		box = components.DeleteConfirmBoxStyle
	}

	width := layers.ModalWidth(m.UiState.Width(), 50, 80)
	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(title),
		"",
		m.FormState.Form.View(),
	)
	return layers.CreateCenteredLayer(box.Width(width).Render(content), m.UiState.Width(), m.UiState.Height())
}

// renderHelpLayer renders the keyboard shortcuts help screen as a layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("bidboard - Keyboard Shortcuts"),
		"",
		m.widgets.help.FullHelpView(m.Keys.FullHelp()),
		"",
		components.SubtleStyle.Render("Press any key to close"),
	)
	return layers.CreateCenteredLayer(components.HelpBoxStyle.Render(content), m.UiState.Width(), m.UiState.Height())
}
