package document

import (
	"errors"
	"fmt"
)

// Errors returned by document operations.
var (
	// ErrOutOfBounds indicates a position outside the document or not on a
	// rune boundary.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrContentMismatch indicates the text expected at a position differs
	// from the document content.
	ErrContentMismatch = errors.New("content mismatch")
)

// MismatchError describes a failed content verification in Modify.
type MismatchError struct {
	Pos  Position
	Want string
	Got  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("content mismatch at %s: want %q, got %q", e.Pos, e.Want, e.Got)
}

// Unwrap returns ErrContentMismatch so errors.Is works on the sentinel.
func (e *MismatchError) Unwrap() error {
	return ErrContentMismatch
}
