package pulsetypes

import "errors"

// Domain specific errors for the venue aggregation core.
var (
	// ErrInvalidArgument indicates caller misuse (bad coordinates,
	// non-positive radius). It is the one condition that propagates
	// instead of triggering the mock fallback.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrProviderUnavailable = errors.New("places provider unavailable")
	ErrNotFound            = errors.New("requested item not found")
)
