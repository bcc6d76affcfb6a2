package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/bidboard/internal/models"
	"github.com/thenoetrevino/bidboard/internal/pipeline"
	"github.com/thenoetrevino/bidboard/internal/seed"
	clientservice "github.com/thenoetrevino/bidboard/internal/services/client"
	rfpservice "github.com/thenoetrevino/bidboard/internal/services/rfp"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unreadable files, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: RFP not found, client not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a seed file that fails to parse or holds invalid cards.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: invalid column names, moves past the first or last column,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// ExitCodeError carries the exit code a command failure should end the process with
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string { return e.Err.Error() }

func (e *ExitCodeError) Unwrap() error { return e.Err }

// Fail reports err through the formatter and returns it tagged with its exit code
func Fail(f *OutputFormatter, err error) error {
	code, name := classify(err)
	if fmtErr := f.ErrorWithSuggestion(name, err.Error(), suggestionFor(err)); fmtErr != nil {
		return fmt.Errorf("failed to format error: %w", fmtErr)
	}
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *ExitCodeError
	if errors.As(err, &coded) {
		return coded.Code
	}
	code, _ := classify(err)
	return code
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, pipeline.ErrInvalidSeed),
		errors.Is(err, seed.ErrInvalidData):
		return ExitDataErr, "INVALID_SEED"
	case errors.Is(err, rfpservice.ErrCardNotFound):
		return ExitNotFound, "RFP_NOT_FOUND"
	case errors.Is(err, clientservice.ErrClientNotFound):
		return ExitNotFound, "CLIENT_NOT_FOUND"
	case errors.Is(err, models.ErrInvalidColumn):
		return ExitValidation, "INVALID_COLUMN"
	case errors.Is(err, rfpservice.ErrAlreadyInColumn),
		errors.Is(err, rfpservice.ErrAlreadyFirstColumn),
		errors.Is(err, rfpservice.ErrAlreadyLastColumn):
		return ExitValidation, "INVALID_MOVE"
	case errors.Is(err, ErrUsage):
		return ExitUsage, "USAGE"
	default:
		return ExitError, "ERROR"
	}
}

func suggestionFor(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidColumn):
		return "Valid columns: new, in-progress, submitted, won, lost (or next, prev)"
	case errors.Is(err, rfpservice.ErrCardNotFound):
		return "List RFP ids with: bidboard cards --quiet"
	default:
		return ""
	}
}

// ErrUsage marks an error as a usage mistake
var ErrUsage = errors.New("invalid usage")
