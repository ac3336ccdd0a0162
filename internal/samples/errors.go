package samples

import "errors"

var (
	// ErrInvalidInput is returned when run_script input is not JSON.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoScript is returned when neither the input nor the config names a script.
	ErrNoScript = errors.New("no script given")

	// ErrUnknownScript is returned when a named script is not configured.
	ErrUnknownScript = errors.New("unknown script")
)
