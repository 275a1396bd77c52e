package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrUnknownBackend indicates the configured storage backend does not exist
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrStoreClosed indicates a slot store was used after Close
	ErrStoreClosed = errors.New("slot store is closed")

	// ErrValidation indicates user input was rejected before reaching the tracker
	ErrValidation = errors.New("validation failed")
)
