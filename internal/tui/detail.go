package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/bidboard/internal/analytics"
	"github.com/thenoetrevino/bidboard/internal/markdown"
	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/tui/components"
	"github.com/thenoetrevino/bidboard/internal/tui/layers"
	"github.com/thenoetrevino/bidboard/internal/tui/state"
)

const (
	detailMinWidth = 50
	detailMaxWidth = 90
)

// detailSize returns the viewport size inside the detail box
func (m Model) detailSize() (width, height int) {
	outer := layers.ModalWidth(m.UiState.Width(), detailMinWidth, detailMaxWidth)
	// border and padding
	width = max(outer-4, 10)
	// box border, title line and footer line
	height = max(m.UiState.Height()-8, 3)
	return width, height
}

// openDetail shows the detail viewport for cardID
func (m Model) openDetail(cardID string) {
	card, err := m.App.RFPService.GetCard(cardID)
	if err != nil {
		return
	}

	m.cancelDrag()
	w, h := m.detailSize()
	m.widgets.detail.SetWidth(w)
	m.widgets.detail.SetHeight(h)
	m.widgets.detail.SetContent(m.renderDetailContent(card, w))
	m.widgets.detail.GotoTop()
	m.widgets.detailCardID = card.ID
	m.UiState.SetMode(state.DetailMode)
}

// updateDetail scrolls the viewport; esc, q or enter close it
func (m Model) updateDetail(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter", m.Config.KeyMappings.Quit:
			m.UiState.SetMode(state.NormalMode)
			m.widgets.detailCardID = ""
			return nil
		}
	}

	vp, cmd := m.widgets.detail.Update(msg)
	m.widgets.detail = vp
	return cmd
}

// renderDetailContent lays out the card fields, the markdown requirements and
// the move history
func (m Model) renderDetailContent(card models.Card, width int) string {
	var b strings.Builder

	due := "not set"
	if !card.DueDate.IsZero() {
		due = card.DueDate.Format(components.DueDateFormat)
	}

	fields := [][2]string{
		{"Client", card.Client},
		{"Value", analytics.Currency(card.Value)},
		{"Due", due},
		{"Status", components.RenderStageBadge(card.ColumnID)},
	}
	for _, f := range fields {
		b.WriteString(components.SubtleStyle.Render(fmt.Sprintf("%-8s", f[0])))
		b.WriteString(f[1])
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.TitleStyle.Render("Requirements"))
	b.WriteString("\n")
	if strings.TrimSpace(card.Requirements) == "" {
		b.WriteString(components.IndicatorStyle.Render("No requirements recorded"))
		b.WriteString("\n")
	} else {
		b.WriteString(markdown.Render(card.Requirements, width))
	}

	b.WriteString("\n")
	b.WriteString(components.TitleStyle.Render("History"))
	b.WriteString("\n")
	history := m.App.RFPService.History(card.ID)
	if len(history) == 0 {
		b.WriteString(components.IndicatorStyle.Render("No activity yet"))
	}
	for i := len(history) - 1; i >= 0; i-- {
		e := history[i]
		b.WriteString(components.SubtleStyle.Render(e.Timestamp.Format("Jan 2 15:04")))
		b.WriteString("  ")
		b.WriteString(e.Describe())
		if e.Actor != "" {
			b.WriteString(components.SubtleStyle.Render(" by " + e.Actor))
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(strings.TrimRight(b.String(), "\n"))
}

// renderDetailLayer frames the viewport as a centered modal
func (m Model) renderDetailLayer() *lipgloss.Layer {
	card, err := m.App.RFPService.GetCard(m.widgets.detailCardID)
	if err != nil {
		return nil
	}

	w, _ := m.detailSize()
	title := components.TitleStyle.Render(card.Title) + components.SubtleStyle.Render("  "+card.ID)
	footer := components.SubtleStyle.Render("↑/↓ scroll • esc close")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.widgets.detail.View(), footer)

	box := components.DetailBoxStyle.Width(w + 4).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
