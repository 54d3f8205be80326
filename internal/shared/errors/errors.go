package errors

import "errors"

// Domain errors
var (
	// Target errors
	ErrEmptyTarget = errors.New("target cannot be empty")

	// Transport errors
	ErrTransport  = errors.New("transport error")
	ErrHTTPStatus = errors.New("unsuccessful HTTP status")

	// CLI errors
	ErrInvalidChoice = errors.New("invalid menu choice")
	ErrUnknownFormat = errors.New("unknown output format")
)
