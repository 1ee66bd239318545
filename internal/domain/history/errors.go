package history

import "errors"

var (
	// ErrDisabled indicates history was not configured.
	ErrDisabled = errors.New("fetch history is disabled")
	// ErrInvalidInput indicates an invalid history entry.
	ErrInvalidInput = errors.New("invalid history input")
)
