package tui

import (
	"fmt"
	"log/slog"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/bidboard/internal/services/client"
	"github.com/thenoetrevino/bidboard/internal/services/rfp"
	"github.com/thenoetrevino/bidboard/internal/tui/huhforms"
	"github.com/thenoetrevino/bidboard/internal/tui/state"
)

// ============================================================================
// FORM MODES
// ============================================================================

// openForm themes and shows form in the given mode
func (m Model) openForm(form *huh.Form, mode state.Mode) tea.Cmd {
	m.cancelDrag()
	m.FormState.Form = form.WithTheme(huhforms.CreateTheme(m.Config.ColorScheme))
	m.UiState.SetMode(mode)
	return m.FormState.Form.Init()
}

// closeForm returns to normal mode
func (m Model) closeForm() {
	m.FormState.Close()
	m.UiState.SetMode(state.NormalMode)
}

func (m Model) handleNewRFP() tea.Cmd {
	m.FormState.ResetRFP()
	return m.openForm(huhforms.CreateRFPWizard(&m.FormState.RFP, m.clientNames()), state.WizardMode)
}

func (m Model) handleEditRFP() tea.Cmd {
	card, ok := m.getCurrentCard()
	if !ok {
		return nil
	}

	m.FormState.ResetRFP()
	m.FormState.EditingCardID = card.ID
	m.FormState.RFP = state.RFPFields{
		Title:        card.Title,
		Client:       card.Client,
		Value:        strconv.FormatFloat(card.Value, 'f', -1, 64),
		Requirements: card.Requirements,
	}
	if !card.DueDate.IsZero() {
		m.FormState.RFP.DueDate = card.DueDate.Format(rfp.DueDateLayout)
	}
	return m.openForm(huhforms.CreateRFPEditForm(&m.FormState.RFP, m.clientNames()), state.EditFormMode)
}

func (m Model) handleDeleteRFP() tea.Cmd {
	card, ok := m.getCurrentCard()
	if !ok {
		return nil
	}
	m.FormState.Delete = state.DeleteTarget{Kind: state.DeleteRFP, ID: card.ID, Label: card.Title}
	m.FormState.DeleteConfirm = false
	return m.openForm(huhforms.CreateDeleteConfirmForm(card.Title, &m.FormState.DeleteConfirm), state.DeleteConfirmMode)
}

func (m Model) handleAddClient() tea.Cmd {
	m.FormState.ResetClient()
	return m.openForm(huhforms.CreateClientForm(&m.FormState.Client, false), state.ClientFormMode)
}

func (m Model) handleEditClient() tea.Cmd {
	c, ok := m.getCurrentClient()
	if !ok {
		return nil
	}
	m.FormState.ResetClient()
	m.FormState.EditingClientID = c.ID
	m.FormState.Client = state.ClientFields{Name: c.Name, ContactPerson: c.ContactPerson, Email: c.Email}
	return m.openForm(huhforms.CreateClientForm(&m.FormState.Client, true), state.ClientFormMode)
}

func (m Model) handleDeleteClient() tea.Cmd {
	c, ok := m.getCurrentClient()
	if !ok {
		return nil
	}
	m.FormState.Delete = state.DeleteTarget{Kind: state.DeleteClient, ID: c.ID, Label: c.Name}
	m.FormState.DeleteConfirm = false
	return m.openForm(huhforms.CreateDeleteConfirmForm(c.Name, &m.FormState.DeleteConfirm), state.DeleteConfirmMode)
}

// updateForm forwards msg to the open form and applies it once completed.
// Esc closes the form without saving.
func (m Model) updateForm(msg tea.Msg) tea.Cmd {
	form := m.FormState.Form
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		m.closeForm()
		return nil
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.Form = f
		form = f
	}

	switch form.State {
	case huh.StateCompleted:
		mode := m.UiState.Mode()
		m.closeForm()
		m.completeForm(mode)
		return nil
	case huh.StateAborted:
		m.closeForm()
		return nil
	}
	return cmd
}

// completeForm applies the values of a completed form in mode
func (m Model) completeForm(mode state.Mode) {
	switch mode {
	case state.WizardMode:
		m.submitNewRFP()
	case state.EditFormMode:
		m.submitEditRFP()
	case state.ClientFormMode:
		m.submitClient()
	case state.DeleteConfirmMode:
		m.submitDelete()
	}
}

func (m Model) submitNewRFP() {
	f := m.FormState.RFP
	if !f.Confirm {
		return
	}

	req := rfp.CreateCardRequest{Title: f.Title, Client: f.Client, Requirements: f.Requirements}
	var err error
	if req.DueDate, err = rfp.ParseDueDate(f.DueDate); err == nil {
		req.Value, err = rfp.ParseValue(f.Value)
	}
	if err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}

	card, err := m.App.RFPService.CreateCard(req)
	if err != nil {
		slog.Error("failed to create rfp", "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Created %s", card.Title))
	m.UiState.SetPage(state.PipelinePage)
	m.selectCard(card.ID)
	m.syncGeometry()
}

func (m Model) submitEditRFP() {
	f := m.FormState.RFP
	if !f.Confirm || m.FormState.EditingCardID == "" {
		return
	}

	due, err := rfp.ParseDueDate(f.DueDate)
	if err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}
	value, err := rfp.ParseValue(f.Value)
	if err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}

	card, err := m.App.RFPService.UpdateCard(rfp.UpdateCardRequest{
		ID:           m.FormState.EditingCardID,
		Title:        &f.Title,
		Client:       &f.Client,
		DueDate:      &due,
		Value:        &value,
		Requirements: &f.Requirements,
	})
	if err != nil {
		slog.Error("failed to update rfp", "card_id", m.FormState.EditingCardID, "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Saved %s", card.Title))
}

func (m Model) submitClient() {
	f := m.FormState.Client
	if !f.Confirm {
		return
	}

	var err error
	if m.FormState.EditingClientID == "" {
		_, err = m.App.ClientService.Create(client.CreateClientRequest{
			Name:          f.Name,
			ContactPerson: f.ContactPerson,
			Email:         f.Email,
		})
	} else {
		_, err = m.App.ClientService.Update(client.UpdateClientRequest{
			ID:            m.FormState.EditingClientID,
			Name:          &f.Name,
			ContactPerson: &f.ContactPerson,
			Email:         &f.Email,
		})
	}
	if err != nil {
		slog.Error("failed to save client", "client_id", m.FormState.EditingClientID, "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Saved client %s", f.Name))
}

func (m Model) submitDelete() {
	target := m.FormState.Delete
	if !m.FormState.DeleteConfirm {
		return
	}

	var err error
	switch target.Kind {
	case state.DeleteRFP:
		err = m.App.RFPService.DeleteCard(target.ID)
	case state.DeleteClient:
		err = m.App.ClientService.Delete(target.ID)
	}
	if err != nil {
		slog.Error("failed to delete", "id", target.ID, "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}

	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Deleted %s", target.Label))
	m.clampSelection()
	m.ensureCardVisible()
}
