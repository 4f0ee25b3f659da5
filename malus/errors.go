package malus

import "errors"

// Sentinel errors for the two failure classes of the engine.
// Operations wrap these with context; match with errors.Is.
var (
	// ErrInvalidInput marks malformed or physically inconsistent numeric input
	// (negative intensity, target above incident, non-finite value, bad sweep step)
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured marks use of a zero-value Engine before New established
	// its incident intensity. Caller-sequencing bug, fail fast.
	ErrNotConfigured = errors.New("engine not configured")
)
