package pixbuf

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensions reports a buffer whose length does not match width*height*4,
	// or whose width/height are negative.
	ErrDimensions = errors.New("malformed buffer dimensions")

	// ErrOutOfBounds reports a pixel access outside the image.
	ErrOutOfBounds = errors.New("pixel out of bounds")

	// ErrSizeMismatch reports two buffers that were expected to have the same size.
	ErrSizeMismatch = errors.New("buffer size mismatch")
)

// BufferError describes a rejected buffer operation.
type BufferError struct {
	Op     string
	Width  int
	Height int
	Len    int
	Err    error
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("pixbuf %s: %dx%d (len %d): %v", e.Op, e.Width, e.Height, e.Len, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *BufferError) Unwrap() error {
	return e.Err
}
