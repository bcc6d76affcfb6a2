package notifications

import "github.com/thenoetrevino/bidboard/internal/tui/state"

// Severity represents the notification severity level
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// FromLevel maps a stored notification level to its rendering severity
func FromLevel(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}
