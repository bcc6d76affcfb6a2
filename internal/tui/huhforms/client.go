package huhforms

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/bidboard/internal/services/client"
	"github.com/thenoetrevino/bidboard/internal/tui/state"
)

// CreateClientForm creates a huh form for adding or editing a client
func CreateClientForm(fields *state.ClientFields, editing bool) *huh.Form {
	confirmTitle := "Add this client?"
	if editing {
		confirmTitle = "Save changes?"
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Client Name").
			Placeholder("e.g. Innovate Corp").
			Validate(required(client.ErrEmptyName)).
			Value(&fields.Name),
		huh.NewInput().
			Key("contact").
			Title("Contact Person").
			Validate(required(client.ErrEmptyContactPerson)).
			Value(&fields.ContactPerson),
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("name@example.com").
			Validate(client.ValidateEmail).
			Value(&fields.Email),
		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(&fields.Confirm),
	))
}

// CreateDeleteConfirmForm asks before a record is removed
func CreateDeleteConfirmForm(label string, confirm *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title("Delete " + label + "?").
			Description("This cannot be undone.").
			Affirmative("Delete").
			Negative("Keep").
			Value(confirm),
	))
}

func required(err error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return err
		}
		return nil
	}
}
