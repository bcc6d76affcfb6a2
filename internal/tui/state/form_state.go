package state

import "charm.land/huh/v2"

// RFPFields are the values bound to the wizard and the edit form.
// huh writes through the pointers to these fields as the user types.
type RFPFields struct {
	Title        string
	Client       string
	DueDate      string
	Value        string
	Requirements string
	Confirm      bool
}

// ClientFields are the values bound to the client form
type ClientFields struct {
	Name          string
	ContactPerson string
	Email         string
	Confirm       bool
}

// DeleteKind says what a pending deletion targets
type DeleteKind int

const (
	DeleteRFP DeleteKind = iota
	DeleteClient
)

// DeleteTarget identifies the record a confirmation dialog will remove
type DeleteTarget struct {
	Kind  DeleteKind
	ID    string
	Label string
}

// FormState holds the huh form that is open (at most one at a time)
// together with the values bound to it.
type FormState struct {
	Form *huh.Form

	RFP           RFPFields
	EditingCardID string // "" while creating

	Client          ClientFields
	EditingClientID string // "" while creating

	Delete        DeleteTarget
	DeleteConfirm bool
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{}
}

// ResetRFP clears the RFP fields for a new wizard run
func (s *FormState) ResetRFP() {
	s.RFP = RFPFields{}
	s.EditingCardID = ""
}

// ResetClient clears the client fields
func (s *FormState) ResetClient() {
	s.Client = ClientFields{}
	s.EditingClientID = ""
}

// Close drops the open form. Bound values stay readable until the next Reset.
func (s *FormState) Close() {
	s.Form = nil
}
