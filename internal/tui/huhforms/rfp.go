package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/bidboard/internal/services/rfp"
	"github.com/thenoetrevino/bidboard/internal/tui/state"
)

// Wizard step titles, in order
const (
	StepBasicInformation  = "Basic Information"
	StepValueRequirements = "Value & Requirements"
	StepReviewSubmit      = "Review & Submit"
)

// CreateRFPWizard creates the three-step new RFP form. huh only moves to the
// next group once every field of the current one validates, using the same
// validators the rfp service applies on create.
func CreateRFPWizard(fields *state.RFPFields, clientNames []string) *huh.Form {
	basic := huh.NewGroup(
		huh.NewInput().
			Key("title").
			Title("RFP Title").
			Placeholder("e.g. Cloud Migration Strategy").
			Validate(rfp.ValidateTitle).
			Value(&fields.Title),
		clientField(&fields.Client, clientNames),
		huh.NewInput().
			Key("due_date").
			Title("Due Date").
			Placeholder(rfp.DueDateLayout).
			Validate(validateDueDate).
			Value(&fields.DueDate),
	).Title(StepBasicInformation)

	details := huh.NewGroup(
		huh.NewInput().
			Key("value").
			Title("Estimated Value ($)").
			Placeholder("50000").
			Validate(validateValue).
			Value(&fields.Value),
		huh.NewText().
			Key("requirements").
			Title("Requirements").
			Description("Markdown is supported").
			CharLimit(2000).
			Lines(6).
			Validate(rfp.ValidateRequirements).
			Value(&fields.Requirements),
	).Title(StepValueRequirements)

	review := huh.NewGroup(
		huh.NewNote().
			Title("Review").
			Description("Go back with shift+tab to change anything."),
		huh.NewConfirm().
			Key("confirm").
			Title("Submit this RFP?").
			Affirmative("Submit").
			Negative("Cancel").
			Value(&fields.Confirm),
	).Title(StepReviewSubmit)

	return huh.NewForm(basic, details, review).
		WithKeyMap(CreateKeyMapWithShiftEnter())
}

// CreateRFPEditForm creates a single-page form for editing an existing RFP
func CreateRFPEditForm(fields *state.RFPFields, clientNames []string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("title").
			Title("RFP Title").
			Validate(rfp.ValidateTitle).
			Value(&fields.Title),
		clientField(&fields.Client, clientNames),
		huh.NewInput().
			Key("due_date").
			Title("Due Date").
			Placeholder(rfp.DueDateLayout).
			Validate(validateDueDate).
			Value(&fields.DueDate),
		huh.NewInput().
			Key("value").
			Title("Estimated Value ($)").
			Validate(validateValue).
			Value(&fields.Value),
		huh.NewText().
			Key("requirements").
			Title("Requirements").
			CharLimit(2000).
			Lines(5).
			Validate(rfp.ValidateRequirements).
			Value(&fields.Requirements),
		huh.NewConfirm().
			Key("confirm").
			Title("Save changes?").
			Affirmative("Save").
			Negative("Cancel").
			Value(&fields.Confirm),
	)).WithKeyMap(CreateKeyMapWithShiftEnter())
}

// clientField is a select over known clients, or a free text input when
// there are none yet
func clientField(value *string, clientNames []string) huh.Field {
	if len(clientNames) == 0 {
		return huh.NewInput().
			Key("client").
			Title("Client").
			Placeholder("Client name").
			Validate(rfp.ValidateClient).
			Value(value)
	}

	options := make([]huh.Option[string], 0, len(clientNames))
	for _, name := range clientNames {
		options = append(options, huh.NewOption(name, name))
	}
	if *value == "" {
		*value = clientNames[0]
	}
	return huh.NewSelect[string]().
		Key("client").
		Title("Client").
		Options(options...).
		Validate(rfp.ValidateClient).
		Value(value)
}

func validateDueDate(s string) error {
	_, err := rfp.ParseDueDate(s)
	return err
}

func validateValue(s string) error {
	_, err := rfp.ParseValue(s)
	return err
}
