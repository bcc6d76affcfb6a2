package components

import (
	"charm.land/bubbles/v2/table"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/bidboard/internal/tui/theme"
)

// TableStyles returns bubbles table styles matching the theme
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		BorderBottom(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(true)
	return s
}

// FitColumns scales column widths so the whole table fits in width.
// Widths are treated as weights; each column keeps at least 4 cells.
func FitColumns(cols []table.Column, width int) []table.Column {
	total := 0
	for _, c := range cols {
		total += c.Width
	}
	// two cells of cell padding per column
	avail := width - 2*len(cols)
	if total == 0 || avail <= 0 {
		return cols
	}

	out := make([]table.Column, len(cols))
	for i, c := range cols {
		out[i] = table.Column{Title: c.Title, Width: max(c.Width*avail/total, 4)}
	}
	return out
}
