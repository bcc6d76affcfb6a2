package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/bidboard/internal/app"
	"github.com/thenoetrevino/bidboard/internal/config"
	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/seed"
	"github.com/thenoetrevino/bidboard/internal/tui/components"
)

const (
	testWidth  = 200
	testHeight = 40
)

// newTestModel builds a model over the demo data, sized testWidth x testHeight
func newTestModel(t *testing.T) Model {
	t.Helper()

	a, err := app.New(seed.Default(), app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	m := InitialModel(a, config.Default())
	m.Update(windowSize(testWidth, testHeight))
	return m
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

func press(m Model, keys ...string) {
	for _, k := range keys {
		m.Update(keyPress(k))
	}
}

func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft})
}

func motion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft})
}

func release(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft})
}

// slotFor returns the on-screen slot of col
func slotFor(t *testing.T, m Model, col models.ColumnID) columnSlot {
	t.Helper()
	for _, s := range m.columnSlots() {
		if s.Column == col {
			return s
		}
	}
	t.Fatalf("column %s is not on screen", col)
	return columnSlot{}
}

// firstCardCell returns a cell inside the first visible card of slot
func firstCardCell(slot columnSlot) (x, y int) {
	return slot.X + 2, slot.Y + components.ColumnHeaderRows + 1
}

func columnOf(t *testing.T, m Model, cardID string) models.ColumnID {
	t.Helper()
	card, err := m.App.RFPService.GetCard(cardID)
	require.NoError(t, err)
	return card.ColumnID
}

func messages(m Model) []string {
	var out []string
	for _, n := range m.NotificationState.All() {
		out = append(out, n.Message)
	}
	return out
}

func windowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

func wheel(x, y int, up bool) tea.MouseWheelMsg {
	button := tea.MouseWheelDown
	if up {
		button = tea.MouseWheelUp
	}
	return tea.MouseWheelMsg(tea.Mouse{X: x, Y: y, Button: button})
}
