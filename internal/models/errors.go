package models

import "errors"

// Domain-level validation errors shared by the registry, services and seed loader
var (
	// ErrInvalidColumn indicates a column id outside the fixed pipeline stages
	ErrInvalidColumn = errors.New("invalid column")

	// ErrEmptyCardID indicates a card without an id
	ErrEmptyCardID = errors.New("card id cannot be empty")

	// ErrNegativeValue indicates a card whose value is below zero
	ErrNegativeValue = errors.New("card value cannot be negative")

	// ErrNonFiniteValue indicates a card whose value is NaN or infinite
	ErrNonFiniteValue = errors.New("card value must be a finite number")
)
