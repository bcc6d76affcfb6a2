package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/bidboard/internal/tui/state"
)

// MaxWidth caps the message width of a toast
const MaxWidth = 48

// Render renders a toast: an icon/title header above the message, in a
// rounded border tinted by severity.
func Render(severity Severity, message string) string {
	st := severity.style()

	headerText := st.icon + " " + st.title
	width := min(max(lipgloss.Width(headerText), lipgloss.Width(message)), MaxWidth)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Bold(true).
		Width(width).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Width(width).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.background)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderFromState renders a stored notification
func RenderFromState(n state.Notification) string {
	return Render(FromLevel(n.Level), n.Message)
}

// RenderInline renders a single-line notification for the status bar
func RenderInline(severity Severity, message string) string {
	st := severity.style()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(st.icon + " " + message)
}
