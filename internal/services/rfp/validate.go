package rfp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minTitleLength        = 5
	minRequirementsLength = 10
	minValue              = 1
)

// ValidateTitle checks the wizard's title rule
func ValidateTitle(title string) error {
	if utf8.RuneCountInString(strings.TrimSpace(title)) < minTitleLength {
		return ErrTitleTooShort
	}
	return nil
}

// ValidateClient checks that a client was chosen
func ValidateClient(client string) error {
	if strings.TrimSpace(client) == "" {
		return ErrClientRequired
	}
	return nil
}

// ValidateRequirements checks the wizard's requirements rule
func ValidateRequirements(req string) error {
	if utf8.RuneCountInString(strings.TrimSpace(req)) < minRequirementsLength {
		return ErrRequirementsTooShort
	}
	return nil
}

// ValidateValue checks a proposal value
func ValidateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < minValue {
		return ErrValueTooLow
	}
	return nil
}

// ParseValue parses a user-typed proposal value such as "85000" or "85,000"
func ParseValue(s string) (float64, error) {
	cleaned := strings.NewReplacer(",", "", "$", "", "_", "").Replace(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrValueTooLow
	}
	if err := ValidateValue(v); err != nil {
		return 0, err
	}
	return v, nil
}

// DueDateLayout is the format accepted for typed due dates
const DueDateLayout = "2006-01-02"

// ParseDueDate parses a YYYY-MM-DD due date
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrDueDateRequired
	}
	t, err := time.Parse(DueDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: use %s", ErrDueDateRequired, DueDateLayout)
	}
	return t, nil
}

func (s *service) validateCreateCard(req CreateCardRequest) error {
	if err := ValidateTitle(req.Title); err != nil {
		return err
	}
	if err := ValidateClient(req.Client); err != nil {
		return err
	}
	if req.DueDate.IsZero() {
		return ErrDueDateRequired
	}
	if err := ValidateValue(req.Value); err != nil {
		return err
	}
	return ValidateRequirements(req.Requirements)
}

func (s *service) validateUpdateCard(req UpdateCardRequest) error {
	if req.ID == "" {
		return ErrEmptyCardID
	}
	if req.Title != nil {
		if err := ValidateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Client != nil {
		if err := ValidateClient(*req.Client); err != nil {
			return err
		}
	}
	if req.DueDate != nil && req.DueDate.IsZero() {
		return ErrDueDateRequired
	}
	if req.Value != nil {
		if err := ValidateValue(*req.Value); err != nil {
			return err
		}
	}
	if req.Requirements != nil {
		if err := ValidateRequirements(*req.Requirements); err != nil {
			return err
		}
	}
	return nil
}
