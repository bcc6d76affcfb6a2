package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/bidboard/internal/config"
)

// KeyMap holds the help-facing bindings built from the configured key mappings.
// Dispatch itself switches on the mapping strings; these bindings feed the
// help overlay.
type KeyMap struct {
	Navigate   key.Binding
	Scroll     key.Binding
	Move       key.Binding
	View       key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	AddClient  key.Binding
	Pages      key.Binding
	ToggleView key.Binding
	Sidebar    key.Binding
	Drag       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// NewKeyMap builds the help bindings from km
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Navigate: key.NewBinding(
			key.WithKeys(km.PrevColumn, km.NextColumn, km.PrevRFP, km.NextRFP),
			key.WithHelp(km.PrevColumn+"/"+km.NextColumn+"/"+km.PrevRFP+"/"+km.NextRFP, "navigate"),
		),
		Scroll: key.NewBinding(
			key.WithKeys(km.ScrollViewportLeft, km.ScrollViewportRight),
			key.WithHelp(km.ScrollViewportLeft+"/"+km.ScrollViewportRight, "scroll columns"),
		),
		Move: key.NewBinding(
			key.WithKeys(km.MoveRFPLeft, km.MoveRFPRight),
			key.WithHelp(km.MoveRFPLeft+"/"+km.MoveRFPRight, "move rfp to prev/next stage"),
		),
		View: key.NewBinding(
			key.WithKeys(km.ViewRFP),
			key.WithHelp(km.ViewRFP, "rfp details"),
		),
		New: key.NewBinding(
			key.WithKeys(km.NewRFP),
			key.WithHelp(km.NewRFP, "new rfp"),
		),
		Edit: key.NewBinding(
			key.WithKeys(km.EditRFP),
			key.WithHelp(km.EditRFP, "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys(km.DeleteRFP),
			key.WithHelp(km.DeleteRFP, "delete"),
		),
		AddClient: key.NewBinding(
			key.WithKeys(km.AddClient),
			key.WithHelp(km.AddClient, "add client"),
		),
		Pages: key.NewBinding(
			key.WithKeys(km.PageDashboard, km.PagePipeline, km.PageAnalytics, km.PageClients),
			key.WithHelp(km.PageDashboard+"-"+km.PageClients, "switch page"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys(km.ToggleView),
			key.WithHelp(km.ToggleView, "kanban/table"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys(km.ToggleSidebar),
			key.WithHelp(km.ToggleSidebar, "collapse sidebar"),
		),
		Drag: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("mouse", "drag a card to another column (esc cancels)"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.View, k.New, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Scroll, k.Move, k.View, k.Drag},
		{k.New, k.Edit, k.Delete, k.AddClient},
		{k.Pages, k.ToggleView, k.Sidebar, k.Help, k.Quit},
	}
}
