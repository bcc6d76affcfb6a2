package client

import "errors"

// Client-related errors
var (
	// Validation errors
	ErrEmptyName          = errors.New("client name cannot be empty")
	ErrEmptyContactPerson = errors.New("contact person cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidClientID    = errors.New("invalid client ID")

	// Business logic errors
	ErrClientNotFound = errors.New("client not found")
	ErrDuplicateName  = errors.New("a client with this name already exists")
)
