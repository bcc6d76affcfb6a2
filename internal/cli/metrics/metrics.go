package metrics

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/bidboard/internal/analytics"
	"github.com/thenoetrevino/bidboard/internal/cli"
	"github.com/thenoetrevino/bidboard/internal/cli/styles"
)

const barWidth = 30

// MetricsCmd returns the metrics subcommand
func MetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show pipeline metrics",
		Long: `Show the dashboard figures: active RFPs, win rate, pipeline value,
proposals submitted, value per stage and deal value statistics.

Examples:
  bidboard metrics
  bidboard metrics --json
`,
		Args: cobra.NoArgs,
		RunE: runMetrics,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

type report struct {
	analytics.Metrics
	Clients []analytics.ClientRecord `json:"clients"`
}

func runMetrics(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, err)
	}

	cards := cliInstance.App.RFPService.ListCards()
	m := analytics.Compute(cards)

	if formatter.JSON {
		return formatter.Success("metrics", report{Metrics: m, Clients: analytics.WinLoss(cards)})
	}

	formatter.Println(styles.TitleStyle.Render("Pipeline"))
	formatter.Println(styles.RenderField("Active RFPs", strconv.Itoa(m.ActiveRFPs)))
	formatter.Println(styles.RenderField("Pipeline value", analytics.Currency(m.PipelineValue)))
	formatter.Println(styles.RenderField("Proposals submitted", strconv.Itoa(m.Submitted)))
	formatter.Println(styles.RenderField("Win rate", analytics.Percent(m.WinRate)))

	formatter.Println(styles.SectionStyle.Render("Value by stage"))
	values := make([]float64, len(m.Stages))
	for i, s := range m.Stages {
		values[i] = s.Value
	}
	bars := analytics.Bars(values, barWidth)
	for i, s := range m.Stages {
		formatter.Printf("  %-12s %-*s %s (%d)\n",
			s.Column.Title(), barWidth, strings.Repeat("█", bars[i]),
			analytics.CompactCurrency(s.Value), s.Count)
	}

	formatter.Println(styles.SectionStyle.Render("Deal value"))
	formatter.Println(styles.RenderField("Mean", analytics.Currency(m.MeanValue)))
	formatter.Println(styles.RenderField("Median", analytics.Currency(m.MedianValue)))
	formatter.Println(styles.RenderField("Std dev", analytics.Currency(m.StdDevValue)))
	return nil
}
