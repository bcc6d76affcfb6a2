package card

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/bidboard/internal/cli"
	"github.com/thenoetrevino/bidboard/internal/cli/styles"
	"github.com/thenoetrevino/bidboard/internal/models"
)

// ListCmd returns the cards subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List RFPs",
		Long: `List every RFP on the board, optionally limited to one column.

Examples:
  bidboard cards
  bidboard cards --column "In Progress"
  bidboard cards --column won --json
  bidboard cards --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only list RFPs in this column (id or title)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, err)
	}

	cards := cliInstance.App.RFPService.ListCards()
	if ref, _ := cmd.Flags().GetString("column"); ref != "" {
		col, err := models.ParseColumnID(ref)
		if err != nil {
			return cli.Fail(formatter, fmt.Errorf("%w: %q", err, ref))
		}
		cards = cliInstance.App.RFPService.ListByColumn(col)
	}

	if formatter.Quiet {
		for _, c := range cards {
			fmt.Fprintln(cmd.OutOrStdout(), c.ID)
		}
		return nil
	}

	if formatter.JSON {
		if cards == nil {
			cards = []models.Card{}
		}
		return formatter.Success("cards", cards)
	}

	if len(cards) == 0 {
		formatter.Println("No RFPs found")
		return nil
	}

	formatter.Printf("Found %d RFPs:\n\n", len(cards))
	for _, c := range cards {
		formatter.Println("  " + styles.RenderCardLine(c))
	}
	return nil
}
