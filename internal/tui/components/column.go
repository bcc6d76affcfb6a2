package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/bidboard/internal/analytics"
	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/tui/theme"
)

// ColumnProps describes one kanban column
type ColumnProps struct {
	Column       models.ColumnID
	Cards        []models.Card
	Width        int // outer width
	Height       int // outer height
	Selected     bool
	SelectedCard int // index into Cards, meaningful when Selected
	ScrollOffset int
	DropTarget   bool   // a dragged card hovers over this column
	DraggingID   string // card being dragged, drawn dimmed in place
}

// RenderColumn renders a kanban column of exactly Width x Height cells.
// Cards start ColumnHeaderRows below the top edge and are CardHeight rows
// apart, which is what mouse hit testing relies on.
func RenderColumn(props ColumnProps) string {
	innerWidth := max(props.Width-columnChromeWidth, 1)
	innerHeight := max(props.Height-2, 1)

	var total float64
	for _, c := range props.Cards {
		total += c.Value
	}
	header := fmt.Sprintf("%s (%d)", props.Column.Title(), len(props.Cards))
	value := analytics.CompactCurrency(total)
	gap := max(innerWidth-lipgloss.Width(header)-lipgloss.Width(value), 1)
	headerLine := TitleStyle.
		Foreground(lipgloss.Color(StageColor(props.Column))).
		Render(ansi.Truncate(header+strings.Repeat(" ", gap)+value, innerWidth, "…"))

	lines := []string{headerLine}

	if len(props.Cards) == 0 {
		lines = append(lines, "", IndicatorStyle.Render("No RFPs"))
	} else {
		maxVisible := MaxVisibleCards(props.Height)
		offset := min(max(props.ScrollOffset, 0), max(len(props.Cards)-1, 0))
		end := min(offset+maxVisible, len(props.Cards))

		if offset > 0 {
			lines = append(lines, IndicatorStyle.Render("▲ more above"))
		} else {
			lines = append(lines, "")
		}

		for i := offset; i < end; i++ {
			card := props.Cards[i]
			rendered := RenderCard(CardProps{
				Card:     card,
				Width:    CardWidth(props.Width),
				Selected: props.Selected && i == props.SelectedCard,
				Dragging: card.ID == props.DraggingID,
			})
			lines = append(lines, strings.Split(rendered, "\n")...)
		}

		if end < len(props.Cards) {
			lines = padLines(lines, innerHeight-1)
			lines = append(lines, IndicatorStyle.Render("▼ more below"))
		}
	}

	lines = padLines(lines, innerHeight)

	style := ColumnStyle.Width(props.Width)
	switch {
	case props.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget)).BorderStyle(lipgloss.ThickBorder())
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// padLines pads or truncates lines to exactly n entries
func padLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
