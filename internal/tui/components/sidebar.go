package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// SidebarItem is one navigation entry
type SidebarItem struct {
	Key   string
	Title string
	Icon  string
}

// SidebarProps describes the sidebar
type SidebarProps struct {
	Items     []SidebarItem
	Active    int
	Width     int
	Height    int
	Collapsed bool
}

// RenderSidebar renders the navigation sidebar as a Width x Height block.
// Collapsed, it shows only the icons and the page keys.
func RenderSidebar(props SidebarProps) string {
	inner := max(props.Width-2, 1)

	var lines []string
	if props.Collapsed {
		lines = append(lines, TitleStyle.Render("bb"), "")
	} else {
		lines = append(lines, TitleStyle.Render(ansi.Truncate("bidboard", inner, "")), "")
	}

	for i, item := range props.Items {
		var text string
		if props.Collapsed {
			text = item.Icon + " " + item.Key
		} else {
			text = item.Icon + " " + item.Title
			keyHint := SubtleStyle.Render(item.Key)
			gap := max(inner-lipgloss.Width(text)-lipgloss.Width(keyHint), 1)
			text = ansi.Truncate(text+strings.Repeat(" ", gap)+keyHint, inner, "")
		}

		style := SidebarItemStyle
		if i == props.Active {
			style = SidebarActiveStyle
			text = ansi.Truncate(text, inner, "")
		}
		lines = append(lines, style.Width(props.Width).Render(text))
	}

	if !props.Collapsed {
		lines = append(lines, "", SubtleStyle.Render(ansi.Truncate(" b collapse", inner, "")))
	}

	return SidebarStyle.
		Width(props.Width).
		Height(props.Height).
		Render(strings.Join(padLines(lines, props.Height), "\n"))
}
