package models

import (
	"fmt"
	"math"
	"time"
)

// Card is a single RFP tracked on the pipeline board
type Card struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Client       string    `json:"client" yaml:"client"`
	Value        float64   `json:"value" yaml:"value"`
	ColumnID     ColumnID  `json:"column_id" yaml:"column"`
	DueDate      time.Time `json:"due_date" yaml:"due_date,omitempty"`
	Requirements string    `json:"requirements,omitempty" yaml:"requirements,omitempty"`
}

// Validate checks the invariants every card must hold while it is on the board
func (c Card) Validate() error {
	if c.ID == "" {
		return ErrEmptyCardID
	}
	if !c.ColumnID.Valid() {
		return fmt.Errorf("card %s: %w: %q", c.ID, ErrInvalidColumn, c.ColumnID)
	}
	if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
		return fmt.Errorf("card %s: %w: %g", c.ID, ErrNonFiniteValue, c.Value)
	}
	if c.Value < 0 {
		return fmt.Errorf("card %s: %w", c.ID, ErrNegativeValue)
	}
	return nil
}

// GetID returns the card id, used by the CLI quiet output mode
func (c Card) GetID() string {
	return c.ID
}
