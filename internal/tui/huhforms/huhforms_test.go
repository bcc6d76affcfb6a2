package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/bidboard/internal/config/colors"
	"github.com/thenoetrevino/bidboard/internal/services/client"
	"github.com/thenoetrevino/bidboard/internal/services/rfp"
	"github.com/thenoetrevino/bidboard/internal/tui/state"
)

func TestWizardValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		input   string
		wantErr error
	}{
		{"due date ok", validateDueDate, "2024-09-01", nil},
		{"due date empty", validateDueDate, "", rfp.ErrDueDateRequired},
		{"due date malformed", validateDueDate, "Sept 1", rfp.ErrDueDateRequired},
		{"value ok", validateValue, "85,000", nil},
		{"value zero", validateValue, "0", rfp.ErrValueTooLow},
		{"value garbage", validateValue, "lots", rfp.ErrValueTooLow},
		{"value nan", validateValue, "NaN", rfp.ErrValueTooLow},
		{"value infinite", validateValue, "Infinity", rfp.ErrValueTooLow},
		{"name required", required(client.ErrEmptyName), "  ", client.ErrEmptyName},
		{"name given", required(client.ErrEmptyName), "Acme", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateRFPWizardDefaultsClient(t *testing.T) {
	fields := &state.RFPFields{}
	form := CreateRFPWizard(fields, []string{"Innovate Corp", "SecureNet"})
	require.NotNil(t, form)
	assert.Equal(t, "Innovate Corp", fields.Client)

	kept := &state.RFPFields{Client: "SecureNet"}
	CreateRFPWizard(kept, []string{"Innovate Corp", "SecureNet"})
	assert.Equal(t, "SecureNet", kept.Client)
}

func TestCreateFormsWithoutClients(t *testing.T) {
	fields := &state.RFPFields{}
	assert.NotNil(t, CreateRFPWizard(fields, nil))
	assert.Empty(t, fields.Client)
	assert.NotNil(t, CreateRFPEditForm(fields, nil))
	assert.NotNil(t, CreateClientForm(&state.ClientFields{}, false))

	confirm := false
	assert.NotNil(t, CreateDeleteConfirmForm("Website Redesign", &confirm))
}

func TestCreateTheme(t *testing.T) {
	assert.NotNil(t, CreateTheme(*colors.Default()))
}
