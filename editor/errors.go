package editor

import (
	"errors"
	"fmt"

	"github.com/dshills/helixpdk/memory"
)

// Editor errors. ErrAllocation and ErrDecode are the transfer buffer errors
// re-exported so callers can match the whole taxonomy from one package.
var (
	// ErrAllocation is returned when the host refuses a buffer request.
	ErrAllocation = memory.ErrAllocation

	// ErrDecode is returned when host bytes are not valid text.
	ErrDecode = memory.ErrDecode

	// ErrEncoding is returned when a guest string cannot be sent as text.
	ErrEncoding = errors.New("value is not valid utf-8 text")
)

// EncodingError reports an argument of Op that could not be encoded.
type EncodingError struct {
	Op string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrEncoding)
}

// Unwrap returns ErrEncoding.
func (e *EncodingError) Unwrap() error { return ErrEncoding }
