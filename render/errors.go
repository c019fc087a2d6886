package render

import "errors"

// Sentinel errors for package render.
var (
	ErrUnknownFormat = errors.New("unknown output format")
)
