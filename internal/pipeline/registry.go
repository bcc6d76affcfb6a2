package pipeline

import (
	"fmt"

	"github.com/thenoetrevino/bidboard/internal/models"
)

// Registry is the ordered in-memory collection of cards on the board.
// Insertion order is preserved but carries no meaning beyond display order.
type Registry struct {
	cards []models.Card
	index map[string]int // card id -> position in cards
}

// NewRegistry builds a registry from seed cards. Every card must pass
// models.Card.Validate and ids must be unique; a bad seed is a programming
// or data error and is rejected as a whole.
func NewRegistry(seed []models.Card) (*Registry, error) {
	r := &Registry{
		cards: make([]models.Card, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for _, card := range seed {
		if err := r.Add(card); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
		}
	}
	return r, nil
}

// Len returns the number of cards
func (r *Registry) Len() int {
	return len(r.cards)
}

// Get returns a copy of the card with the given id
func (r *Registry) Get(id string) (models.Card, bool) {
	i, ok := r.index[id]
	if !ok {
		return models.Card{}, false
	}
	return r.cards[i], true
}

// All returns a copy of every card in insertion order
func (r *Registry) All() []models.Card {
	out := make([]models.Card, len(r.cards))
	copy(out, r.cards)
	return out
}

// ByColumn returns the cards in col, in insertion order
func (r *Registry) ByColumn(col models.ColumnID) []models.Card {
	var out []models.Card
	for _, c := range r.cards {
		if c.ColumnID == col {
			out = append(out, c)
		}
	}
	return out
}

// Add appends a new card
func (r *Registry) Add(card models.Card) error {
	if err := card.Validate(); err != nil {
		return err
	}
	if _, exists := r.index[card.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, card.ID)
	}
	r.index[card.ID] = len(r.cards)
	r.cards = append(r.cards, card)
	return nil
}

// Update replaces the non-column fields of an existing card
func (r *Registry) Update(card models.Card) error {
	i, ok := r.index[card.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotFound, card.ID)
	}
	if card.ColumnID != r.cards[i].ColumnID {
		return ErrColumnChange
	}
	if err := card.Validate(); err != nil {
		return err
	}
	r.cards[i] = card
	return nil
}

// Remove deletes a card and reports whether it existed
func (r *Registry) Remove(id string) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.cards = append(r.cards[:i], r.cards[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.cards); j++ {
		r.index[r.cards[j].ID] = j
	}
	return true
}

// setColumn changes the column of one card. Only the committer calls this.
func (r *Registry) setColumn(id string, col models.ColumnID) (from models.ColumnID, ok bool) {
	i, found := r.index[id]
	if !found {
		return "", false
	}
	from = r.cards[i].ColumnID
	r.cards[i].ColumnID = col
	return from, true
}
