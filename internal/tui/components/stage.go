package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/tui/theme"
)

// StageColor returns the badge color for a column
func StageColor(col models.ColumnID) string {
	switch col {
	case models.ColumnWon:
		return theme.StageWon
	case models.ColumnLost:
		return theme.StageLost
	default:
		return theme.StageOpen
	}
}

// RenderStageBadge renders the column title as a colored chip
func RenderStageBadge(col models.ColumnID) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Background)).
		Background(lipgloss.Color(StageColor(col))).
		Padding(0, 1).
		Render(col.Title())
}
