package state

import (
	"testing"

	"github.com/thenoetrevino/bidboard/internal/models"
)

func testLayout() LayoutConfig {
	return LayoutConfig{ColumnWidth: 30, SidebarWidth: 22, CollapsedSidebarWidth: 6}
}

// TestCalculateViewportSize_ZeroWidth ensures viewport defaults to 1 before the first resize.
func TestCalculateViewportSize_ZeroWidth(t *testing.T) {
	s := NewUIState(testLayout())
	s.SetSize(0, 0)

	if got := s.ViewportSize(); got != 1 {
		t.Errorf("ViewportSize() with width=0 = %d, want 1", got)
	}
}

func TestCalculateViewportSize(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		collapsed bool
		want      int
	}{
		{"narrower than one column", 30, false, 1},
		{"two columns", 22 + 61, false, 2},
		{"one cell short of three", 22 + 92 - 1, false, 2},
		{"exactly three", 22 + 92, false, 3},
		{"capped at column count", 400, false, 5},
		{"collapsed sidebar frees room", 22 + 92 - 1, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState(testLayout())
			if tt.collapsed {
				s.ToggleSidebar()
			}
			s.SetSize(tt.width, 40)
			if got := s.ViewportSize(); got != tt.want {
				t.Errorf("ViewportSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestScrollViewportLeft_AtBoundary ensures scroll left at offset 0 is a no-op.
func TestScrollViewportLeft_AtBoundary(t *testing.T) {
	s := NewUIState(testLayout())
	s.SetSize(100, 40)

	if s.ScrollViewportLeft() {
		t.Error("ScrollViewportLeft() at offset=0 returned true, want false")
	}
	if s.ViewportOffset() != 0 {
		t.Errorf("ViewportOffset after scroll = %d, want 0", s.ViewportOffset())
	}
}

// TestScrollViewportRight_AtBoundary ensures the last column cannot scroll past the edge.
func TestScrollViewportRight_AtBoundary(t *testing.T) {
	s := NewUIState(testLayout())
	s.SetSize(22+61, 40) // two columns visible

	for range 3 {
		if !s.ScrollViewportRight() {
			t.Fatal("ScrollViewportRight() returned false before reaching the edge")
		}
	}
	if s.ScrollViewportRight() {
		t.Error("ScrollViewportRight() at last offset returned true, want false")
	}
	first, last := s.VisibleColumns()
	if first != 3 || last != 4 {
		t.Errorf("VisibleColumns() = (%d, %d), want (3, 4)", first, last)
	}
}

// TestViewportOffsetClampedOnGrow ensures a wider terminal pulls the offset back.
func TestViewportOffsetClampedOnGrow(t *testing.T) {
	s := NewUIState(testLayout())
	s.SetSize(22+61, 40)
	s.SetViewportOffset(3)

	s.SetSize(400, 40)

	if s.ViewportOffset() != 0 {
		t.Errorf("ViewportOffset after grow = %d, want 0", s.ViewportOffset())
	}
}

func TestEnsureSelectionVisible(t *testing.T) {
	s := NewUIState(testLayout())
	s.SetSize(22+61, 40)

	s.EnsureSelectionVisible(4)
	if s.ViewportOffset() != 3 {
		t.Errorf("ViewportOffset after selecting column 4 = %d, want 3", s.ViewportOffset())
	}

	s.EnsureSelectionVisible(1)
	if s.ViewportOffset() != 1 {
		t.Errorf("ViewportOffset after selecting column 1 = %d, want 1", s.ViewportOffset())
	}
}

func TestEnsureCardVisible(t *testing.T) {
	s := NewUIState(testLayout())

	s.EnsureCardVisible(models.ColumnNew, 5, 3)
	if got := s.CardScrollOffset(models.ColumnNew); got != 3 {
		t.Errorf("CardScrollOffset = %d, want 3", got)
	}

	s.EnsureCardVisible(models.ColumnNew, 1, 3)
	if got := s.CardScrollOffset(models.ColumnNew); got != 1 {
		t.Errorf("CardScrollOffset = %d, want 1", got)
	}

	if got := s.CardScrollOffset(models.ColumnWon); got != 0 {
		t.Errorf("untouched column offset = %d, want 0", got)
	}
}

func TestSidebarWidth(t *testing.T) {
	s := NewUIState(testLayout())
	s.SetSize(120, 40)

	if s.MainLeft() != 22 || s.MainWidth() != 98 {
		t.Errorf("expanded main area = (%d, %d), want (22, 98)", s.MainLeft(), s.MainWidth())
	}

	s.ToggleSidebar()
	if !s.SidebarCollapsed() {
		t.Fatal("sidebar should be collapsed")
	}
	if s.MainLeft() != 6 || s.MainWidth() != 114 {
		t.Errorf("collapsed main area = (%d, %d), want (6, 114)", s.MainLeft(), s.MainWidth())
	}
}

func TestSetPageIgnoresUnknown(t *testing.T) {
	s := NewUIState(testLayout())
	s.SetPage(PipelinePage)
	s.SetPage(Page(42))

	if s.Page() != PipelinePage {
		t.Errorf("Page() = %v, want PipelinePage", s.Page())
	}
}

func TestToggleBoardView(t *testing.T) {
	s := NewUIState(testLayout())
	s.ToggleBoardView()
	if s.BoardView() != TableView {
		t.Error("first toggle should switch to table view")
	}
	s.ToggleBoardView()
	if s.BoardView() != KanbanView {
		t.Error("second toggle should switch back to kanban view")
	}
}

func TestDragState(t *testing.T) {
	d := NewDragState()
	if d.Active() {
		t.Fatal("new drag state should be idle")
	}

	d.Start("rfp-1", 10, 5)
	d.Move(40, 7, models.ColumnInProgress)
	x, y := d.Cursor()
	if !d.Active() || d.CardID() != "rfp-1" || x != 40 || y != 7 || d.Hover() != models.ColumnInProgress {
		t.Errorf("unexpected drag state %+v", d)
	}

	d.Stop()
	if d.Active() || d.CardID() != "" || d.Hover() != "" {
		t.Errorf("Stop() left state %+v", d)
	}
}
