package rfp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/bidboard/internal/events"
	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/pipeline"
)

// Service defines all rfp-related business operations
type Service interface {
	// Read operations
	ListCards() []models.Card
	ListByColumn(col models.ColumnID) []models.Card
	GetCard(id string) (models.Card, error)
	History(id string) []events.Event

	// Write operations
	CreateCard(req CreateCardRequest) (models.Card, error)
	UpdateCard(req UpdateCardRequest) (models.Card, error)
	DeleteCard(id string) error

	// Card movements
	MoveCard(id, columnRef string) (pipeline.Result, error)
	MoveCardNext(id string) (pipeline.Result, error)
	MoveCardPrev(id string) (pipeline.Result, error)
}

// CreateCardRequest encapsulates all data needed to create an rfp.
// New cards always start in the New column.
type CreateCardRequest struct {
	Title        string
	Client       string
	DueDate      time.Time
	Value        float64
	Requirements string
}

// UpdateCardRequest encapsulates all data needed to update an rfp
// Fields with pointers are optional - nil means don't update
type UpdateCardRequest struct {
	ID           string
	Title        *string
	Client       *string
	DueDate      *time.Time
	Value        *float64
	Requirements *string
}

// service implements Service interface
type service struct {
	board       *pipeline.Board
	eventClient events.EventPublisher

	// lastID is the highest rfp-N suffix ever issued or seeded. Ids of
	// deleted cards are never handed out again.
	lastID int
}

// NewService creates a new rfp service. Moves are committed through board so
// its observers see keyboard and CLI moves exactly like drag drops.
func NewService(board *pipeline.Board, eventClient events.EventPublisher) Service {
	s := &service{
		board:       board,
		eventClient: eventClient,
	}
	s.lastID = s.highestSuffix()
	return s
}

func (s *service) ListCards() []models.Card {
	return s.board.Registry().All()
}

func (s *service) ListByColumn(col models.ColumnID) []models.Card {
	return s.board.Registry().ByColumn(col)
}

func (s *service) GetCard(id string) (models.Card, error) {
	card, ok := s.board.Registry().Get(id)
	if !ok {
		return models.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	return card, nil
}

// History returns the recorded events for a card, oldest first
func (s *service) History(id string) []events.Event {
	if s.eventClient == nil {
		return nil
	}
	return s.eventClient.History(id)
}

// CreateCard handles rfp creation with the wizard's validation rules
func (s *service) CreateCard(req CreateCardRequest) (models.Card, error) {
	if err := s.validateCreateCard(req); err != nil {
		return models.Card{}, err
	}

	card := models.Card{
		ID:           s.nextID(),
		Title:        strings.TrimSpace(req.Title),
		Client:       strings.TrimSpace(req.Client),
		Value:        req.Value,
		ColumnID:     models.ColumnNew,
		DueDate:      req.DueDate,
		Requirements: req.Requirements,
	}
	if err := s.board.Registry().Add(card); err != nil {
		return models.Card{}, fmt.Errorf("failed to create rfp: %w", err)
	}

	events.Publish(s.eventClient, events.Event{
		Type:   events.EventCardCreated,
		CardID: card.ID,
		To:     card.ColumnID,
	})
	return card, nil
}

// UpdateCard applies the non-nil fields of req
func (s *service) UpdateCard(req UpdateCardRequest) (models.Card, error) {
	if err := s.validateUpdateCard(req); err != nil {
		return models.Card{}, err
	}

	card, err := s.GetCard(req.ID)
	if err != nil {
		return models.Card{}, err
	}

	if req.Title != nil {
		card.Title = strings.TrimSpace(*req.Title)
	}
	if req.Client != nil {
		card.Client = strings.TrimSpace(*req.Client)
	}
	if req.DueDate != nil {
		card.DueDate = *req.DueDate
	}
	if req.Value != nil {
		card.Value = *req.Value
	}
	if req.Requirements != nil {
		card.Requirements = *req.Requirements
	}

	if err := s.board.Registry().Update(card); err != nil {
		return models.Card{}, fmt.Errorf("failed to update rfp: %w", err)
	}

	events.Publish(s.eventClient, events.Event{
		Type:   events.EventCardUpdated,
		CardID: card.ID,
	})
	return card, nil
}

func (s *service) DeleteCard(id string) error {
	if id == "" {
		return ErrEmptyCardID
	}
	if active, ok := s.board.ActiveDrag(); ok && active == id {
		s.board.EndDrag()
	}
	if !s.board.Registry().Remove(id) {
		return fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}

	events.Publish(s.eventClient, events.Event{
		Type:   events.EventCardDeleted,
		CardID: id,
	})
	return nil
}

// MoveCard moves a card to the column named by columnRef (id or title)
func (s *service) MoveCard(id, columnRef string) (pipeline.Result, error) {
	col, err := models.ParseColumnID(columnRef)
	if err != nil {
		return pipeline.Result{}, err
	}
	return s.moveTo(id, col)
}

func (s *service) MoveCardNext(id string) (pipeline.Result, error) {
	card, err := s.GetCard(id)
	if err != nil {
		return pipeline.Result{}, err
	}
	next, ok := card.ColumnID.Next()
	if !ok {
		return pipeline.Result{}, ErrAlreadyLastColumn
	}
	return s.moveTo(id, next)
}

func (s *service) MoveCardPrev(id string) (pipeline.Result, error) {
	card, err := s.GetCard(id)
	if err != nil {
		return pipeline.Result{}, err
	}
	prev, ok := card.ColumnID.Prev()
	if !ok {
		return pipeline.Result{}, ErrAlreadyFirstColumn
	}
	return s.moveTo(id, prev)
}

func (s *service) moveTo(id string, col models.ColumnID) (pipeline.Result, error) {
	card, err := s.GetCard(id)
	if err != nil {
		return pipeline.Result{}, err
	}
	if card.ColumnID == col {
		return pipeline.Result{Outcome: pipeline.NoOp, CardID: id, From: col, To: col},
			fmt.Errorf("%w: %s", ErrAlreadyInColumn, col.Title())
	}
	return s.board.Commit(id, col), nil
}

// nextID returns rfp-N with N one above the highest suffix seen so far
func (s *service) nextID() string {
	s.lastID = max(s.lastID, s.highestSuffix()) + 1
	return "rfp-" + strconv.Itoa(s.lastID)
}

// highestSuffix returns the highest numeric rfp-N suffix on the board
func (s *service) highestSuffix() int {
	highest := 0
	for _, c := range s.board.Registry().All() {
		suffix, ok := strings.CutPrefix(c.ID, "rfp-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}
