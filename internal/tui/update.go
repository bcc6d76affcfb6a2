package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/bidboard/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.handleResize(size)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.UiState.Mode() {
	case state.WizardMode, state.EditFormMode, state.ClientFormMode, state.DeleteConfirmMode:
		// Forms need ALL messages, not just key presses
		cmd = m.updateForm(msg)
	case state.DetailMode:
		cmd = m.updateDetail(msg)
	case state.HelpMode:
		if _, ok := msg.(tea.KeyPressMsg); ok {
			m.UiState.SetMode(state.NormalMode)
		}
	default:
		cmd = m.updateNormal(msg)
	}

	if m.widgets.dirty {
		m.refreshTables()
	}
	return m, cmd
}

func (m Model) updateNormal(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleNormalMode(msg)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg.Mouse())
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg.Mouse())
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg.Mouse())
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg.Mouse())
	}
	return nil
}

// handleResize records the new terminal size and relayouts everything that
// depends on it, including the column rectangles used for drops.
func (m Model) handleResize(msg tea.WindowSizeMsg) {
	m.UiState.SetSize(msg.Width, msg.Height)
	m.NotificationState.SetWindowSize(msg.Width, msg.Height)
	m.resizeWidgets()
	m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	m.syncGeometry()
}
