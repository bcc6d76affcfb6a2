package state

import "github.com/thenoetrevino/bidboard/internal/models"

// Page is one of the sidebar destinations
type Page int

const (
	DashboardPage Page = iota
	PipelinePage
	AnalyticsPage
	ClientsPage
)

// Pages returns every page in sidebar order
func Pages() []Page {
	return []Page{DashboardPage, PipelinePage, AnalyticsPage, ClientsPage}
}

// Title returns the sidebar label of the page
func (p Page) Title() string {
	switch p {
	case DashboardPage:
		return "Dashboard"
	case PipelinePage:
		return "Pipeline"
	case AnalyticsPage:
		return "Analytics"
	case ClientsPage:
		return "Clients"
	default:
		return "Unknown"
	}
}

// Icon returns the glyph shown when the sidebar is collapsed
func (p Page) Icon() string {
	switch p {
	case DashboardPage:
		return "▦"
	case PipelinePage:
		return "▥"
	case AnalyticsPage:
		return "▤"
	case ClientsPage:
		return "☰"
	default:
		return "?"
	}
}

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	WizardMode                    // New RFP wizard (huh, three groups)
	EditFormMode                  // Editing an existing RFP
	ClientFormMode                // Adding or editing a client
	DeleteConfirmMode             // Confirming deletion of an RFP or a client
	DetailMode                    // RFP detail viewport
	HelpMode                      // Displaying help screen
)

// BoardView selects how the pipeline page lays out cards
type BoardView int

const (
	KanbanView BoardView = iota
	TableView
)

// Layout constants shared by rendering and hit testing
const (
	HeaderHeight    = 2 // page title + gap line
	StatusBarHeight = 1
	ColumnGap       = 1 // blank cells between kanban columns
)

// LayoutConfig holds the configurable widths
type LayoutConfig struct {
	ColumnWidth           int
	SidebarWidth          int
	CollapsedSidebarWidth int
}

// UIState manages the user interface state.
// This includes navigation, viewport scrolling, terminal dimensions,
// the sidebar, and the current interaction mode.
type UIState struct {
	page      Page
	mode      Mode
	boardView BoardView

	selectedColumn int
	selectedCard   int
	selectedClient int

	width  int
	height int

	layout           LayoutConfig
	sidebarCollapsed bool

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int
	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// cardScrollOffsets tracks the index of the first visible card per column
	cardScrollOffsets map[models.ColumnID]int
}

// NewUIState creates a new UIState showing the dashboard
func NewUIState(layout LayoutConfig) *UIState {
	s := &UIState{
		page:              DashboardPage,
		mode:              NormalMode,
		layout:            layout,
		viewportSize:      1,
		cardScrollOffsets: make(map[models.ColumnID]int),
	}
	return s
}

// Page returns the page currently shown
func (s *UIState) Page() Page {
	return s.page
}

// SetPage switches page. Out of range values are ignored.
func (s *UIState) SetPage(p Page) {
	if p < DashboardPage || p > ClientsPage {
		return
	}
	s.page = p
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// BoardView returns the pipeline layout (kanban or table)
func (s *UIState) BoardView() BoardView {
	return s.boardView
}

// ToggleBoardView flips between kanban and table
func (s *UIState) ToggleBoardView() {
	if s.boardView == KanbanView {
		s.boardView = TableView
	} else {
		s.boardView = KanbanView
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the index of the selected card within the selected column
// (or within the whole list in table view).
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// SelectedClient returns the row selected on the clients page
func (s *UIState) SelectedClient() int {
	return s.selectedClient
}

// SetSelectedClient updates the selected client row
func (s *UIState) SetSelectedClient(index int) {
	s.selectedClient = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions and recalculates the viewport size.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.calculateViewportSize()
}

// ContentHeight returns the available height for the main content area.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	return max(s.height-HeaderHeight-StatusBarHeight, 5)
}

// ContentTop returns the first row of the main content area
func (s *UIState) ContentTop() int {
	return HeaderHeight
}

// SidebarCollapsed reports whether the sidebar shows icons only
func (s *UIState) SidebarCollapsed() bool {
	return s.sidebarCollapsed
}

// ToggleSidebar collapses or expands the sidebar and relayouts the board
func (s *UIState) ToggleSidebar() {
	s.sidebarCollapsed = !s.sidebarCollapsed
	s.calculateViewportSize()
}

// SidebarWidth returns the current sidebar width in cells
func (s *UIState) SidebarWidth() int {
	if s.sidebarCollapsed {
		return s.layout.CollapsedSidebarWidth
	}
	return s.layout.SidebarWidth
}

// MainLeft returns the first cell of the main area
func (s *UIState) MainLeft() int {
	return s.SidebarWidth()
}

// MainWidth returns the width to the right of the sidebar
func (s *UIState) MainWidth() int {
	return max(s.width-s.SidebarWidth(), 0)
}

// ColumnWidth returns the outer width of one kanban column
func (s *UIState) ColumnWidth() int {
	return s.layout.ColumnWidth
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset, clamped to the valid range.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = min(max(offset, 0), s.maxViewportOffset())
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// VisibleColumns returns the indexes of the columns inside the viewport
func (s *UIState) VisibleColumns() (first, last int) {
	first = s.viewportOffset
	last = min(first+s.viewportSize, len(models.Columns())) - 1
	return first, last
}

// calculateViewportSize calculates how many columns fit in the main area.
// Every column takes ColumnWidth cells plus ColumnGap, except the last.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 || s.layout.ColumnWidth <= 0 {
		s.viewportSize = 1
		return
	}

	fit := (s.MainWidth() + ColumnGap) / (s.layout.ColumnWidth + ColumnGap)
	s.viewportSize = min(max(1, fit), len(models.Columns()))
	s.SetViewportOffset(s.viewportOffset)
}

func (s *UIState) maxViewportOffset() int {
	return max(0, len(models.Columns())-s.viewportSize)
}

// EnsureSelectionVisible adjusts the viewport so the selected column is visible
func (s *UIState) EnsureSelectionVisible(columnIndex int) {
	if columnIndex < s.viewportOffset {
		s.SetViewportOffset(columnIndex)
	}
	if columnIndex >= s.viewportOffset+s.viewportSize {
		s.SetViewportOffset(columnIndex - s.viewportSize + 1)
	}
}

// ScrollViewportLeft shifts the viewport one column left, returning false at the edge
func (s *UIState) ScrollViewportLeft() bool {
	if s.viewportOffset == 0 {
		return false
	}
	s.viewportOffset--
	return true
}

// ScrollViewportRight shifts the viewport one column right, returning false at the edge
func (s *UIState) ScrollViewportRight() bool {
	if s.viewportOffset >= s.maxViewportOffset() {
		return false
	}
	s.viewportOffset++
	return true
}

// CardScrollOffset returns the index of the first visible card in col
func (s *UIState) CardScrollOffset(col models.ColumnID) int {
	return s.cardScrollOffsets[col]
}

// SetCardScrollOffset records the first visible card in col
func (s *UIState) SetCardScrollOffset(col models.ColumnID, offset int) {
	s.cardScrollOffsets[col] = max(offset, 0)
}

// EnsureCardVisible scrolls col so that index is within the first maxVisible cards shown
func (s *UIState) EnsureCardVisible(col models.ColumnID, index, maxVisible int) {
	if maxVisible < 1 {
		maxVisible = 1
	}
	offset := s.cardScrollOffsets[col]
	if index < offset {
		offset = index
	}
	if index >= offset+maxVisible {
		offset = index - maxVisible + 1
	}
	s.SetCardScrollOffset(col, offset)
}
