package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/bidboard/internal/cli"
	"github.com/thenoetrevino/bidboard/internal/cli/styles"
	"github.com/thenoetrevino/bidboard/internal/pipeline"
	rfpservice "github.com/thenoetrevino/bidboard/internal/services/rfp"
)

// MoveCmd returns the move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column|next|prev>",
		Short: "Move an RFP to another column",
		Long: `Move an RFP to another column by direction or column name.

The move is applied to the board loaded for this invocation and the
outcome (committed or noop) is reported. Moving a card to the column it
is already in is a no-op, not an error.

Examples:
  # Move to next column
  bidboard move --id rfp-3 next

  # Move to previous column
  bidboard move --id rfp-3 prev

  # Move to specific column by name (case-insensitive)
  bidboard move --id rfp-3 "In Progress"
  bidboard move --id rfp-3 won

  # JSON output for agents
  bidboard move --id rfp-3 won --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "RFP ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, err)
	}

	id, _ := cmd.Flags().GetString("id")
	svc := cliInstance.App.RFPService

	var res pipeline.Result
	switch target := args[0]; strings.ToLower(target) {
	case "next":
		res, err = svc.MoveCardNext(id)
	case "prev":
		res, err = svc.MoveCardPrev(id)
	default:
		res, err = svc.MoveCard(id, target)
	}
	if err != nil && !errors.Is(err, rfpservice.ErrAlreadyInColumn) {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), res.Outcome)
		return nil
	}
	if formatter.JSON {
		return formatter.Success("result", res)
	}

	card, _ := svc.GetCard(id)
	if !res.Committed() {
		formatter.Printf("%s is already in %s (no-op)\n", card.Title, styles.RenderStageChip(card.ColumnID))
		return nil
	}
	formatter.Printf("Moved %s from %s to %s\n",
		styles.TitleStyle.Render(card.Title),
		styles.RenderStageChip(res.From),
		styles.RenderStageChip(res.To))
	return nil
}
