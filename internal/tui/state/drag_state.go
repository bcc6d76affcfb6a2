package state

import "github.com/thenoetrevino/bidboard/internal/models"

// DragState is the on-screen side of a mouse drag: which card is following
// the pointer and where the pointer is. The board owns the drag session
// itself; this only drives rendering.
type DragState struct {
	cardID  string
	active  bool
	cursorX int
	cursorY int
	hover   models.ColumnID
}

// NewDragState creates an idle DragState
func NewDragState() *DragState {
	return &DragState{}
}

// Start marks cardID as being dragged from the given cell
func (s *DragState) Start(cardID string, x, y int) {
	s.cardID = cardID
	s.active = true
	s.cursorX = x
	s.cursorY = y
	s.hover = ""
}

// Move records the pointer position and the column under it ("" for none)
func (s *DragState) Move(x, y int, hover models.ColumnID) {
	s.cursorX = x
	s.cursorY = y
	s.hover = hover
}

// Stop returns to idle
func (s *DragState) Stop() {
	*s = DragState{}
}

// Active reports whether a card is being dragged
func (s *DragState) Active() bool {
	return s.active
}

// CardID returns the dragged card, "" when idle
func (s *DragState) CardID() string {
	return s.cardID
}

// Cursor returns the last pointer cell
func (s *DragState) Cursor() (x, y int) {
	return s.cursorX, s.cursorY
}

// Hover returns the column currently under the pointer
func (s *DragState) Hover() models.ColumnID {
	return s.hover
}
