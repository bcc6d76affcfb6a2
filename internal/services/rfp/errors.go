package rfp

import (
	"errors"

	"github.com/thenoetrevino/bidboard/internal/models"
)

// Validation errors
var (
	ErrTitleTooShort        = errors.New("title must be at least 5 characters")
	ErrClientRequired       = errors.New("please select a client")
	ErrDueDateRequired      = errors.New("a due date is required")
	ErrValueTooLow          = errors.New("value must be a positive number")
	ErrRequirementsTooShort = errors.New("requirements must be at least 10 characters long")
	ErrEmptyCardID          = errors.New("card id cannot be empty")

	// ErrInvalidColumn is the models sentinel so callers can match either
	ErrInvalidColumn = models.ErrInvalidColumn
)

// Business logic errors
var (
	ErrCardNotFound    = errors.New("rfp not found")
	ErrAlreadyInColumn = errors.New("rfp is already in target column")
)

// Movement-related errors
var (
	// ErrAlreadyFirstColumn indicates that the rfp is already in the first column
	ErrAlreadyFirstColumn = errors.New("rfp is already in the first column")

	// ErrAlreadyLastColumn indicates that the rfp is already in the last column
	ErrAlreadyLastColumn = errors.New("rfp is already in the last column")
)
