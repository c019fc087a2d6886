package fizzbuzz

import "errors"

// Sentinel errors for package fizzbuzz.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Range errors
	ErrInvalidLength = errors.New("invalid argument: length must be a non-negative integer")
	ErrInvalidStart  = errors.New("invalid argument: start must be at least 1")

	// Strategy errors
	ErrUnknownStrategy = errors.New("unknown strategy")
)
