package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps contains the text shown at the bottom of the screen
type StatusBarProps struct {
	Width int
	Left  string // mode or drag state
	Right string // key hints
}

// RenderStatusBar renders a single full-width status line
func RenderStatusBar(props StatusBarProps) string {
	left := StatusBarStyle.Padding(0, 1).Render(props.Left)
	right := StatusBarStyle.Padding(0, 1).Render(props.Right)

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}

// RenderHeader renders the page title line
func RenderHeader(title, subtitle string, width int) string {
	left := TitleStyle.Render(title)
	if subtitle == "" {
		return left
	}
	right := SubtleStyle.Render(subtitle)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-1, 1)
	return left + strings.Repeat(" ", gap) + right
}
