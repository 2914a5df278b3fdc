package readthrough

import (
	"errors"
	"fmt"
)

var (
	ErrNilDriver = errors.New("readthrough: driver is required")
	ErrNilKey    = errors.New("readthrough: key func is required")
	ErrNilLoader = errors.New("readthrough: loader is required")
)

// DecodeError reports a stored entry the codec could not decode.
// The entry is left in place.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("readthrough: decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a value the codec could not encode; nothing was written.
type EncodeError struct {
	Key string
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("readthrough: encode %q: %v", e.Key, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
