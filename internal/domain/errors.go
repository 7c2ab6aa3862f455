package domain

import "errors"

// Error categories. Components wrap these with fmt.Errorf("...: %w")
// so callers can classify failures with errors.Is.
var (
	// ErrInput marks malformed or empty text/query input.
	ErrInput = errors.New("invalid input")
	// ErrConfig marks an invalid parameter or unknown method name.
	ErrConfig = errors.New("invalid configuration")
	// ErrData marks an operation attempted before required
	// initialization, e.g. retrieval before indexing.
	ErrData = errors.New("data not available")
	// ErrDependency marks a required external resource being
	// unavailable at startup.
	ErrDependency = errors.New("dependency unavailable")
)
