package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clitest "github.com/thenoetrevino/bidboard/internal/testutil/cli"
)

func TestListCmd(t *testing.T) {
	c := clitest.SetupCLITest(t)

	out, _, err := clitest.ExecuteCommand(t, c, ListCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Found 5 clients")
	assert.Contains(t, out, "Innovate Corp")
	assert.Contains(t, out, "john.d@innovate.com")
}

func TestListCmd_Quiet(t *testing.T) {
	c := clitest.SetupCLITest(t)

	out, _, err := clitest.ExecuteCommand(t, c, ListCmd(), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"CLI001", "CLI002", "CLI003", "CLI004", "CLI005"}, strings.Fields(out))
}

func TestListCmd_JSONCounts(t *testing.T) {
	c := clitest.SetupCLITest(t)

	out, _, err := clitest.ExecuteCommand(t, c, ListCmd(), "--json")
	require.NoError(t, err)

	rows := clitest.ParseJSON(t, out)["clients"].([]any)
	require.Len(t, rows, 5)
	first := rows[0].(map[string]any)
	assert.Equal(t, "Innovate Corp", first["name"])
	assert.Equal(t, float64(1), first["rfp_count"])
}
