package platform

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by DecodeError.Is
var (
	ErrUnreadable        = errors.New("image file unreadable")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrCorrupt           = errors.New("corrupt image data")
)

// DecodeErrorKind classifies why an image could not be loaded
type DecodeErrorKind int

const (
	// DecodeUnreadable means the file is missing or could not be read
	DecodeUnreadable DecodeErrorKind = iota

	// DecodeUnsupported means no registered decoder recognised the data
	DecodeUnsupported

	// DecodeCorrupt means a decoder recognised the data but could not decode it
	DecodeCorrupt
)

// String returns a short name for the kind
func (k DecodeErrorKind) String() string {
	switch k {
	case DecodeUnreadable:
		return "unreadable"
	case DecodeUnsupported:
		return "unsupported"
	case DecodeCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// DecodeError is returned by Load
type DecodeError struct {
	Path string
	Kind DecodeErrorKind
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the error's kind
func (e *DecodeError) Is(target error) bool {
	switch e.Kind {
	case DecodeUnreadable:
		return target == ErrUnreadable
	case DecodeUnsupported:
		return target == ErrUnsupportedFormat
	case DecodeCorrupt:
		return target == ErrCorrupt
	}
	return false
}
