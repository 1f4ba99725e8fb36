package common

import (
	"errors"
)

// Common error constants
var (
	// ErrInvalidConfig is returned when an invalid configuration is provided
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidQuery is returned when a query description cannot be built or encoded
	ErrInvalidQuery = errors.New("invalid query")

	// ErrSearchFailed is returned when the host record search rejects or fails a query
	ErrSearchFailed = errors.New("record search failed")
)
