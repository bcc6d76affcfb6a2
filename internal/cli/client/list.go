package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/bidboard/internal/cli"
	"github.com/thenoetrevino/bidboard/internal/cli/styles"
	"github.com/thenoetrevino/bidboard/internal/models"
)

// ListCmd returns the clients subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "List clients",
		Long: `List clients with their contact details and RFP counts.

Examples:
  bidboard clients
  bidboard clients --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type clientRow struct {
	models.Client
	RFPCount int `json:"rfp_count"`
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, err)
	}

	svc := cliInstance.App.ClientService
	clients := svc.List()
	rows := make([]clientRow, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, clientRow{Client: c, RFPCount: svc.RFPCount(c.Name)})
	}

	if formatter.Quiet {
		for _, r := range rows {
			fmt.Fprintln(cmd.OutOrStdout(), r.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success("clients", rows)
	}

	if len(rows) == 0 {
		formatter.Println("No clients found")
		return nil
	}
	formatter.Printf("Found %d clients:\n\n", len(rows))
	for _, r := range rows {
		formatter.Printf("  %s %s - %s <%s> - %d RFPs\n",
			styles.SubtitleStyle.Render(r.ID),
			styles.TitleStyle.Render(r.Name),
			r.ContactPerson, r.Email, r.RFPCount)
	}
	return nil
}
