package memory

import (
	"errors"
	"fmt"
)

// Transfer buffer errors.
var (
	// ErrAllocation is returned when the host refuses a buffer request.
	ErrAllocation = errors.New("host buffer allocation failed")

	// ErrDecode is returned when host bytes are not valid text.
	ErrDecode = errors.New("invalid utf-8 in host buffer")

	// ErrReleased is returned when a buffer is used after Release.
	ErrReleased = errors.New("buffer already released")
)

// AllocationError reports a failed allocation of Size bytes.
type AllocationError struct {
	Size uint64
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocating %d bytes: %v", e.Size, ErrAllocation)
}

// Unwrap returns ErrAllocation.
func (e *AllocationError) Unwrap() error { return ErrAllocation }

// DecodeError reports a buffer whose contents failed to decode.
type DecodeError struct {
	Offset uint64
	Length uint64
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decoding buffer at %#x (%d bytes)", e.Offset, e.Length)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrDecode joined with the underlying cause, if any.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDecode}
	}
	return []error{ErrDecode, e.Err}
}
