// Package layers positions overlay content (modals, toasts, the drag ghost)
// on top of the base view.
package layers

import "charm.land/lipgloss/v2"

// Z order of overlays
const (
	ZBase   = 0
	ZGhost  = 1
	ZToasts = 2
	ZModal  = 3
)

// CreateCenteredLayer creates a layer with the given content centered on screen.
// Returns nil for empty content.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y).Z(ZModal)
}

// CreateCursorLayer places content just below and to the right of the pointer,
// kept inside the screen.
func CreateCursorLayer(content string, x, y, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	x = max(min(x+1, screenWidth-w), 0)
	y = max(min(y+1, screenHeight-h), 0)

	return lipgloss.NewLayer(content).X(x).Y(y).Z(ZGhost)
}

// ModalWidth returns a modal width that is half the screen, within [minWidth, maxWidth]
func ModalWidth(screenWidth, minWidth, maxWidth int) int {
	w := min(max(screenWidth/2, minWidth), maxWidth)
	return min(w, max(screenWidth-4, 1))
}
