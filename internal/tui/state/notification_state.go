package state

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/bidboard/internal/tui/layers"
)

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo is used for committed moves and successful saves
	LevelInfo NotificationLevel = iota
	// LevelWarning is used for rejected keyboard moves
	LevelWarning
	// LevelError is used for failed service calls
	LevelError
)

// Notification represents a single toast with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages the toasts stacked in the top-right corner.
// Toasts live until the next key press clears them.
type NotificationState struct {
	notifications []Notification
	windowWidth   int
	windowHeight  int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add appends a toast with the specified level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications, stacked
// downwards from the top-right corner. Toasts that would run past the bottom
// of the window are dropped.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	var out []*lipgloss.Layer
	if s.windowWidth == 0 {
		return out
	}

	row := 0
	for _, n := range s.notifications {
		view := renderFunc(n)
		w := lipgloss.Width(view)
		h := lipgloss.Height(view)
		if row+h >= s.windowHeight {
			break
		}

		col := max(s.windowWidth-w-1, 0)
		out = append(out, lipgloss.NewLayer(view).X(col).Y(row).Z(layers.ZToasts))
		row += h + 1
	}
	return out
}
