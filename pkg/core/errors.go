package core

import "errors"

// Sentinel errors for input validation. Geometric misses are reported
// through (value, bool) returns, never as errors.
var (
	ErrInvalidConfiguration = errors.New("invalid render configuration")
	ErrInvalidGeometry      = errors.New("invalid geometry")
	ErrInvalidRay           = errors.New("invalid ray")
)
