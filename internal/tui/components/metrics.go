package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/bidboard/internal/tui/theme"
)

// RenderMetricCard renders a bordered figure with its label underneath
func RenderMetricCard(label, value string, width int) string {
	inner := max(width-4, 1)
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight)).Render(ansi.Truncate(value, inner, "…")),
		SubtleStyle.Render(ansi.Truncate(label, inner, "…")),
	)
	return MetricCardStyle.Width(width).Render(content)
}

// BarRow is one labelled bar of a horizontal bar chart
type BarRow struct {
	Label  string
	Length int // cells, from analytics.Bars
	Value  string
	Color  string
}

// RenderBarChart renders labelled horizontal bars, one per line, with the
// labels padded to a common width.
func RenderBarChart(rows []BarRow) string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		color := r.Color
		if color == "" {
			color = theme.Highlight
		}
		label := r.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(r.Label))
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", r.Length))
		b.WriteString(SubtleStyle.Render(label) + " " + bar + " " + r.Value)
	}
	return b.String()
}
