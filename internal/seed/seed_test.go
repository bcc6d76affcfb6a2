package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/bidboard/internal/models"
)

func TestDefault_MatchesDemoPipeline(t *testing.T) {
	data := Default()

	require.Len(t, data.Cards, 5)
	want := []models.ColumnID{
		models.ColumnNew, models.ColumnNew, models.ColumnInProgress, models.ColumnSubmitted, models.ColumnWon,
	}
	for i, c := range data.Cards {
		assert.Equal(t, want[i], c.ColumnID, c.ID)
		assert.NoError(t, c.Validate())
	}
	assert.Len(t, data.Clients, 5)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	data, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), data)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
cards:
  - id: a-1
    title: Data Lake
    client: Acme Inc.
    value: 1000
    column: submitted
    due_date: 2024-10-01T00:00:00Z
  - id: a-2
    title: Call Center
    client: Stark Industries
    value: 0
    column: lost
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	data, err := Load(path)
	require.NoError(t, err)
	require.Len(t, data.Cards, 2)
	assert.Equal(t, models.ColumnSubmitted, data.Cards[0].ColumnID)
	assert.Equal(t, 2024, data.Cards[0].DueDate.Year())
	assert.Equal(t, DefaultClients(), data.Clients, "missing clients fall back to demo list")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"no cards", "clients: []", ErrNoCards},
		{"bad column", "cards:\n  - id: x\n    column: archived\n", models.ErrInvalidColumn},
		{"negative value", "cards:\n  - id: x\n    column: new\n    value: -3\n", models.ErrNegativeValue},
		{"nan value", "cards:\n  - id: x\n    column: new\n    value: .nan\n", models.ErrNonFiniteValue},
		{"infinite value", "cards:\n  - id: x\n    column: new\n    value: .inf\n", models.ErrNonFiniteValue},
		{"negative infinite value", "cards:\n  - id: x\n    column: new\n    value: -.inf\n", models.ErrNonFiniteValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("cards: [unterminated"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
