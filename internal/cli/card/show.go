package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/bidboard/internal/cli"
	"github.com/thenoetrevino/bidboard/internal/cli/styles"
	"github.com/thenoetrevino/bidboard/internal/events"
	"github.com/thenoetrevino/bidboard/internal/markdown"
	"github.com/thenoetrevino/bidboard/internal/models"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one RFP",
		Long: `Show every field of an RFP with its requirements rendered as markdown.

Examples:
  bidboard show --id rfp-3
  bidboard show --id rfp-3 --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().String("id", "", "RFP ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cli.AddOutputFlags(cmd)

	return cmd
}

type cardDetail struct {
	models.Card
	History []events.Event `json:"history"`
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, err)
	}

	id, _ := cmd.Flags().GetString("id")
	card, err := cliInstance.App.RFPService.GetCard(id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		history := cliInstance.App.RFPService.History(id)
		if history == nil {
			history = []events.Event{}
		}
		return formatter.Success("card", cardDetail{Card: card, History: history})
	}

	requirements := markdown.Render(card.Requirements, styles.CardWidth-6)
	formatter.Println(styles.RenderCard(styles.RenderCardDetail(card, requirements)))
	return nil
}
