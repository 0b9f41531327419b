package arptap

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is matched by every error returned when a buffer is too
	// short, or of the wrong fixed length, for the format being decoded.
	ErrMalformed = errors.New("malformed frame")

	// ErrOutOfRange is returned by ByteView.Slice when the requested range
	// does not lie within the view.
	ErrOutOfRange = errors.New("byte range out of bounds")

	// ErrEmptyRead is returned by Server.Serve when the device reports a
	// zero length read.
	ErrEmptyRead = errors.New("zero length read from device")
)

// A ParseError describes a buffer which could not be decoded as Layer.
// It matches ErrMalformed with errors.Is.
type ParseError struct {
	// Layer names the format being decoded, such as "ethernet".
	Layer string

	// Length is the number of bytes that were available.
	Length int

	// Want is the number of bytes the format requires.
	Want int

	// Exact is set when the format requires exactly Want bytes rather
	// than at least Want bytes.
	Exact bool
}

func (e *ParseError) Error() string {
	if e.Exact {
		return fmt.Sprintf("%s: %d bytes, want exactly %d: %v", e.Layer, e.Length, e.Want, ErrMalformed)
	}

	return fmt.Sprintf("%s: %d bytes, want at least %d: %v", e.Layer, e.Length, e.Want, ErrMalformed)
}

// Unwrap returns ErrMalformed.
func (e *ParseError) Unwrap() error {
	return ErrMalformed
}
