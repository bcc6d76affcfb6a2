package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Backgrounds
	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`
	SidebarBg        string `yaml:"sidebar_bg"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation dialogs
	Edit   string `yaml:"edit"`   // Blue - edit dialogs
	Delete string `yaml:"delete"` // Red - delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	DropTarget     string `yaml:"drop_target"` // Column border while a card hovers over it

	// Pipeline stage badges
	StageOpen string `yaml:"stage_open"` // new, in-progress, submitted
	StageWon  string `yaml:"stage_won"`
	StageLost string `yaml:"stage_lost"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	c.fillMissing(*GetPreset(c.Preset))
}

// MergeFrom applies the non-empty values of other on top of c.
// Naming a different preset in other rebases c on that preset first.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	base := *c
	if other.Preset != "" && other.Preset != c.Preset {
		base = *GetPreset(other.Preset)
	}
	*c = other
	c.fillMissing(base)
}

// fillMissing copies every empty field of c from base
func (c *ColorScheme) fillMissing(base ColorScheme) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Preset, base.Preset)
	fill(&c.Accent, base.Accent)
	fill(&c.Background, base.Background)
	fill(&c.ColumnBackground, base.ColumnBackground)
	fill(&c.SidebarBg, base.SidebarBg)
	fill(&c.Create, base.Create)
	fill(&c.Edit, base.Edit)
	fill(&c.Delete, base.Delete)
	fill(&c.ColumnBorder, base.ColumnBorder)
	fill(&c.CardBorder, base.CardBorder)
	fill(&c.CardBackground, base.CardBackground)
	fill(&c.SelectedBorder, base.SelectedBorder)
	fill(&c.SelectedBg, base.SelectedBg)
	fill(&c.DropTarget, base.DropTarget)
	fill(&c.StageOpen, base.StageOpen)
	fill(&c.StageWon, base.StageWon)
	fill(&c.StageLost, base.StageLost)
	fill(&c.Title, base.Title)
	fill(&c.Subtle, base.Subtle)
	fill(&c.Normal, base.Normal)
	fill(&c.InfoFg, base.InfoFg)
	fill(&c.InfoBg, base.InfoBg)
	fill(&c.WarningFg, base.WarningFg)
	fill(&c.WarningBg, base.WarningBg)
	fill(&c.ErrorFg, base.ErrorFg)
	fill(&c.ErrorBg, base.ErrorBg)
	fill(&c.StatusBarBg, base.StatusBarBg)
	fill(&c.StatusBarText, base.StatusBarText)
}
