package codec

import "fmt"

// DecodeError wraps a failure to read or decode a source image.
type DecodeError struct {
	err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image: %v", e.err)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}

func NewDecodeError(err error) error {
	return &DecodeError{err: err}
}

// EncodeError wraps a failure to encode a tile.
type EncodeError struct {
	err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode tile: %v", e.err)
}

func (e *EncodeError) Unwrap() error {
	return e.err
}

func NewEncodeError(err error) error {
	return &EncodeError{err: err}
}
