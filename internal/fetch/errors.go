package fetch

import "errors"

// Fetch errors.
//
// Design decision: We use a package-level sentinel for status failures so
// callers can distinguish "the server answered unhappily" from transport
// errors with errors.Is() while still treating both as a single failure
// signal at the scanning layer.
var (
	// ErrBadStatus is returned when a fetch completes but the response
	// status is outside the 2xx range.
	ErrBadStatus = errors.New("unexpected HTTP status")
)
