package pipeline

import "errors"

// Registry and geometry errors
var (
	// ErrInvalidSeed wraps any problem found while validating seed cards
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrDuplicateCard indicates two cards share an id
	ErrDuplicateCard = errors.New("duplicate card id")

	// ErrCardNotFound indicates the registry has no card with the given id
	ErrCardNotFound = errors.New("card not found")

	// ErrColumnChange indicates an update tried to move a card; moves go through Board.Commit
	ErrColumnChange = errors.New("column changes must go through a commit")

	// ErrUnknownColumn indicates a geometry registration for a column outside the pipeline
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidRect indicates a bounding box whose left edge is right of its right edge
	ErrInvalidRect = errors.New("invalid rect: left > right")
)
