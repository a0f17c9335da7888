package announcement

import "errors"

// Domain-specific errors for the announcement package.
var (
	ErrMissingID     = errors.New("announcement id is required")
	ErrNotFound      = errors.New("announcement not found")
	ErrEmptyResponse = errors.New("empty response from classifier")

	// Classifier response contract violations. These are fatal to the round
	// and surface to the orchestrator for its retry policy.
	ErrResponseNotJSON = errors.New("classifier response is not valid JSON")
	ErrMissingStatus   = errors.New("classifier response has no 'status' field")
	ErrMissingCalendar = errors.New("approved classification has no 'calendar' data")
	ErrUnknownStatus   = errors.New("unknown classification status")
)
