package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// RFPs
	NewRFP       string `yaml:"new_rfp"`
	EditRFP      string `yaml:"edit_rfp"`
	DeleteRFP    string `yaml:"delete_rfp"`
	MoveRFPLeft  string `yaml:"move_rfp_left"`
	MoveRFPRight string `yaml:"move_rfp_right"`
	ViewRFP      string `yaml:"view_rfp"`

	// Clients
	AddClient string `yaml:"add_client"`

	// Navigation
	PrevColumn          string `yaml:"prev_column"`
	NextColumn          string `yaml:"next_column"`
	PrevRFP             string `yaml:"prev_rfp"`
	NextRFP             string `yaml:"next_rfp"`
	ScrollViewportLeft  string `yaml:"scroll_viewport_left"`
	ScrollViewportRight string `yaml:"scroll_viewport_right"`

	// Pages
	PageDashboard string `yaml:"page_dashboard"`
	PagePipeline  string `yaml:"page_pipeline"`
	PageAnalytics string `yaml:"page_analytics"`
	PageClients   string `yaml:"page_clients"`

	// Layout
	ToggleView    string `yaml:"toggle_view"`
	ToggleSidebar string `yaml:"toggle_sidebar"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NewRFP:       "n",
		EditRFP:      "e",
		DeleteRFP:    "d",
		MoveRFPLeft:  "H",
		MoveRFPRight: "L",
		ViewRFP:      "enter",

		AddClient: "a",

		PrevColumn:          "h",
		NextColumn:          "l",
		PrevRFP:             "k",
		NextRFP:             "j",
		ScrollViewportLeft:  "[",
		ScrollViewportRight: "]",

		PageDashboard: "1",
		PagePipeline:  "2",
		PageAnalytics: "3",
		PageClients:   "4",

		ToggleView:    "v",
		ToggleSidebar: "b",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.NewRFP, defaults.NewRFP)
	fill(&k.EditRFP, defaults.EditRFP)
	fill(&k.DeleteRFP, defaults.DeleteRFP)
	fill(&k.MoveRFPLeft, defaults.MoveRFPLeft)
	fill(&k.MoveRFPRight, defaults.MoveRFPRight)
	fill(&k.ViewRFP, defaults.ViewRFP)
	fill(&k.AddClient, defaults.AddClient)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevRFP, defaults.PrevRFP)
	fill(&k.NextRFP, defaults.NextRFP)
	fill(&k.ScrollViewportLeft, defaults.ScrollViewportLeft)
	fill(&k.ScrollViewportRight, defaults.ScrollViewportRight)
	fill(&k.PageDashboard, defaults.PageDashboard)
	fill(&k.PagePipeline, defaults.PagePipeline)
	fill(&k.PageAnalytics, defaults.PageAnalytics)
	fill(&k.PageClients, defaults.PageClients)
	fill(&k.ToggleView, defaults.ToggleView)
	fill(&k.ToggleSidebar, defaults.ToggleSidebar)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
