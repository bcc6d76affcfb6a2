// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/bidboard/internal/config/colors"
	"github.com/thenoetrevino/bidboard/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of an RFP card inside a column
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, page header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for secondary text
	SubtleStyle lipgloss.Style

	// SidebarStyle is the sidebar background block
	SidebarStyle lipgloss.Style

	// SidebarItemStyle is an inactive navigation entry
	SidebarItemStyle lipgloss.Style

	// SidebarActiveStyle is the entry of the page being shown
	SidebarActiveStyle lipgloss.Style

	// FormBoxStyle defines the base style for the RFP wizard (accent border)
	FormBoxStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for creation dialogs (green border)
	CreateInputBoxStyle lipgloss.Style

	// EditInputBoxStyle defines the base style for edit dialogs (blue border)
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// DetailBoxStyle frames the RFP detail viewport
	DetailBoxStyle lipgloss.Style

	// MetricCardStyle frames one dashboard figure
	MetricCardStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		BorderBackground(lipgloss.Color(colors.CardBackground)).
		Background(lipgloss.Color(colors.CardBackground))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	SidebarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.SidebarBg)).
		Foreground(lipgloss.Color(colors.Normal))

	SidebarItemStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.SidebarBg)).
		Foreground(lipgloss.Color(colors.Normal)).
		Padding(0, 1)

	SidebarActiveStyle = SidebarItemStyle.
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true)

	// Dialog box styles
	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	CreateInputBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(colors.Create))

	EditInputBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(colors.Edit))

	DeleteConfirmBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(colors.Delete))

	HelpBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(colors.Edit))

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1)

	MetricCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		Padding(0, 1)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle)).
		Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.StatusBarBg)).
		Foreground(lipgloss.Color(colors.StatusBarText))
}

func init() {
	InitStyles(*colors.Default())
}
