// Package pipeline implements the kanban drag-and-drop core: the card
// registry, the column geometry tracker, the drag session, the drop resolver
// and the reassignment committer.
//
// Everything here is synchronous and meant to be driven from a single
// goroutine (the bubbletea update loop or a CLI command). A Board is not
// safe for concurrent use.
package pipeline

import (
	"log/slog"

	"github.com/thenoetrevino/bidboard/internal/models"
)

// Outcome is the only result taxonomy the drag core exposes
type Outcome int

const (
	// NoOp means nothing changed and no observer was called
	NoOp Outcome = iota
	// Committed means exactly one card changed column and observers were notified
	Committed
)

// String returns a lower-case name for logs and CLI output
func (o Outcome) String() string {
	if o == Committed {
		return "committed"
	}
	return "noop"
}

// MarshalText encodes the outcome by name in JSON output
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result describes what a release or commit did
type Result struct {
	Outcome Outcome         `json:"outcome"`
	CardID  string          `json:"card_id,omitempty"`
	From    models.ColumnID `json:"from,omitempty"`
	To      models.ColumnID `json:"to,omitempty"`
}

// Committed reports whether the result changed the registry
func (r Result) Committed() bool {
	return r.Outcome == Committed
}

// MoveObserver is notified synchronously after every committed move
type MoveObserver interface {
	CardMoved(cardID string, to models.ColumnID)
}

// MoveFunc adapts a plain function to MoveObserver
type MoveFunc func(cardID string, to models.ColumnID)

// CardMoved calls f(cardID, to)
func (f MoveFunc) CardMoved(cardID string, to models.ColumnID) {
	f(cardID, to)
}

// Board owns the registry, the geometry tracker and the drag session.
type Board struct {
	registry  *Registry
	tracker   *Tracker
	session   DragSession
	observers []MoveObserver
}

// NewBoard validates the seed and returns a board with no registered geometry
func NewBoard(seed []models.Card) (*Board, error) {
	registry, err := NewRegistry(seed)
	if err != nil {
		return nil, err
	}
	return &Board{
		registry: registry,
		tracker:  NewTracker(),
	}, nil
}

// Registry returns the card registry
func (b *Board) Registry() *Registry {
	return b.registry
}

// Geometry returns the column geometry tracker
func (b *Board) Geometry() *Tracker {
	return b.tracker
}

// OnCardMove registers an observer for committed moves
func (b *Board) OnCardMove(obs MoveObserver) {
	if obs == nil {
		return
	}
	b.observers = append(b.observers, obs)
}

// BeginDrag starts dragging cardID. It returns false, leaving any current
// drag untouched, when the card does not exist.
func (b *Board) BeginDrag(cardID string) bool {
	if _, ok := b.registry.Get(cardID); !ok {
		return false
	}
	b.session.Begin(cardID)
	return true
}

// EndDrag abandons the active drag without resolving it
func (b *Board) EndDrag() {
	b.session.End()
}

// ActiveDrag returns the id of the card being dragged
func (b *Board) ActiveDrag() (string, bool) {
	return b.session.Active()
}

// Resolve returns the column cardID should move to when dropped at p.
// It reports false when p is outside every registered column, when the
// card is unknown, or when the target is the card's current column.
func (b *Board) Resolve(cardID string, p models.Point) (models.ColumnID, bool) {
	target, ok := b.tracker.Lookup(p)
	if !ok {
		return "", false
	}
	card, ok := b.registry.Get(cardID)
	if !ok || card.ColumnID == target {
		return "", false
	}
	return target, true
}

// Release completes the active drag at p. The drag session always ends.
func (b *Board) Release(p models.Point) Result {
	cardID, active := b.session.Active()
	if !active {
		return Result{Outcome: NoOp}
	}
	defer b.session.End()

	target, ok := b.Resolve(cardID, p)
	if !ok {
		slog.Debug("drop resolved to no-op", "card_id", cardID, "x", p.X, "y", p.Y)
		return Result{Outcome: NoOp, CardID: cardID}
	}
	return b.Commit(cardID, target)
}

// Commit moves cardID to col and notifies observers. Unknown cards,
// invalid columns and moves onto the current column are no-ops.
func (b *Board) Commit(cardID string, col models.ColumnID) Result {
	if !col.Valid() {
		return Result{Outcome: NoOp, CardID: cardID}
	}
	card, ok := b.registry.Get(cardID)
	if !ok {
		return Result{Outcome: NoOp, CardID: cardID}
	}
	if card.ColumnID == col {
		return Result{Outcome: NoOp, CardID: cardID, From: col, To: col}
	}

	from, _ := b.registry.setColumn(cardID, col)
	slog.Info("card moved", "card_id", cardID, "from", from, "to", col)

	for _, obs := range b.observers {
		obs.CardMoved(cardID, col)
	}
	return Result{Outcome: Committed, CardID: cardID, From: from, To: col}
}
