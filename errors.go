package marky

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a configuration value failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnsupportedFormat indicates an unknown output or envelope format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNoInput indicates that no input documents matched.
	ErrNoInput = errors.New("no input")
)
