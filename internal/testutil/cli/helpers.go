package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/bidboard/internal/cli"
	"github.com/thenoetrevino/bidboard/internal/config"
)

// SetupCLITest returns a CLI over the built-in demo data
func SetupCLITest(t *testing.T) *cli.CLI {
	t.Helper()
	c, err := cli.NewCLI(config.Default(), "")
	if err != nil {
		t.Fatalf("Failed to create CLI: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// ExecuteCommand runs cmd with args against c and captures stdout and stderr
func ExecuteCommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err = cmd.ExecuteContext(cli.WithCLI(context.Background(), c))
	return out.String(), errOut.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
