package components

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/bidboard/internal/analytics"
	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/tui/theme"
)

// DueDateFormat is how due dates are shown on cards and in tables
const DueDateFormat = "Jan 2, 2006"

// CardProps controls how a card is drawn
type CardProps struct {
	Card     models.Card
	Width    int  // outer width
	Selected bool // keyboard selection
	Dragging bool // the card is following the pointer; its slot is dimmed
}

// RenderCard renders one RFP card: title, client, then value and due date.
// The result is always CardHeight rows tall.
func RenderCard(props CardProps) string {
	bg := theme.CardBg
	border := theme.CardBorder
	if props.Selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}

	inner := max(props.Width-2, 1)
	lineStyle := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Width(inner)

	titleStyle := lineStyle.Bold(true).Foreground(lipgloss.Color(theme.Normal))
	metaStyle := lineStyle.Foreground(lipgloss.Color(theme.Subtle))
	if props.Dragging {
		titleStyle = titleStyle.Faint(true).Bold(false)
		metaStyle = metaStyle.Faint(true)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(ansi.Truncate(props.Card.Title, inner, "…")),
		metaStyle.Render(ansi.Truncate(props.Card.Client, inner, "…")),
		metaStyle.Render(ansi.Truncate(cardFooter(props.Card), inner, "…")),
	)

	style := CardStyle.
		Width(props.Width).
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if props.Dragging {
		style = style.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(theme.Subtle))
	}
	return style.Render(content)
}

// RenderDragGhost renders the compact card that follows the pointer
func RenderDragGhost(card models.Card, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.DropTarget)).
		Foreground(lipgloss.Color(theme.Normal)).
		Bold(true).
		Padding(0, 1).
		Render(ansi.Truncate(card.Title, max(width-4, 1), "…"))
}

func cardFooter(c models.Card) string {
	footer := analytics.CompactCurrency(c.Value)
	if !c.DueDate.IsZero() {
		footer += " · " + c.DueDate.Format(DueDateFormat)
	}
	return footer
}
