package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clitest "github.com/thenoetrevino/bidboard/internal/testutil/cli"
)

func TestMetricsCmd(t *testing.T) {
	c := clitest.SetupCLITest(t)

	out, _, err := clitest.ExecuteCommand(t, c, MetricsCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Active RFPs")
	assert.Contains(t, out, "$595,000")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "In Progress")
}

func TestMetricsCmd_JSON(t *testing.T) {
	c := clitest.SetupCLITest(t)
	_, err := c.App.RFPService.MoveCard("rfp-4", "lost")
	require.NoError(t, err)

	out, _, err := clitest.ExecuteCommand(t, c, MetricsCmd(), "--json")
	require.NoError(t, err)

	m := clitest.ParseJSON(t, out)["metrics"].(map[string]any)
	assert.Equal(t, float64(3), m["active_rfps"])
	assert.Equal(t, 0.5, m["win_rate"])
	assert.Len(t, m["stages"], 5)
	assert.NotEmpty(t, m["clients"])
}
