package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/bidboard/internal/analytics"
	"github.com/thenoetrevino/bidboard/internal/config"
	"github.com/thenoetrevino/bidboard/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Client:", "Value:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Requirements"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	stageColors map[models.ColumnID]string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)

	stageColors = map[models.ColumnID]string{
		models.ColumnNew:        colors.StageOpen,
		models.ColumnInProgress: colors.StageOpen,
		models.ColumnSubmitted:  colors.StageOpen,
		models.ColumnWon:        colors.StageWon,
		models.ColumnLost:       colors.StageLost,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderStageChip renders a column as "[Title]" in its stage color
func RenderStageChip(col models.ColumnID) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(stageColors[col])).
		Bold(true).
		Render("[" + col.Title() + "]")
}

// RenderField renders "Label: value"
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCardLine renders a one-line card summary for listings
// Format: "rfp-3 [In Progress] Marketing Analytics Platform - MarketMinds - $75,000"
func RenderCardLine(c models.Card) string {
	return fmt.Sprintf("%s %s %s - %s - %s",
		SubtitleStyle.Render(c.ID),
		RenderStageChip(c.ColumnID),
		TitleStyle.Render(c.Title),
		c.Client,
		analytics.Currency(c.Value))
}

// RenderCardDetail renders every field of a card with requirements appended
// as already-rendered markdown
func RenderCardDetail(c models.Card, requirements string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(c.Title))
	b.WriteString("  ")
	b.WriteString(RenderStageChip(c.ColumnID))
	b.WriteString("\n\n")
	b.WriteString(RenderField("ID", c.ID) + "\n")
	b.WriteString(RenderField("Client", c.Client) + "\n")
	b.WriteString(RenderField("Value", analytics.Currency(c.Value)) + "\n")
	if !c.DueDate.IsZero() {
		b.WriteString(RenderField("Due", c.DueDate.Format("Jan 2, 2006")) + "\n")
	}
	if strings.TrimSpace(requirements) != "" {
		b.WriteString(SectionStyle.Render("Requirements") + "\n")
		b.WriteString(strings.TrimRight(requirements, "\n"))
	}
	return b.String()
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
