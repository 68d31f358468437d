package rewrite

import (
	"errors"
	"fmt"
)

// ErrPatternNotFound is returned when the input has no `<call>(...));` frame.
var ErrPatternNotFound = errors.New("pattern not found")

// ErrUnexpectedEndOfInput is returned when the body ends with a `.` that has
// no rune after it to uppercase.
var ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

// EndOfInputError reports where the dangling `.` sits in the body.
type EndOfInputError struct {
	Offset int // rune offset of the `.`
}

func (e *EndOfInputError) Error() string {
	return fmt.Sprintf("%s: trailing '.' at offset %d", ErrUnexpectedEndOfInput, e.Offset)
}

// Is makes errors.Is(err, ErrUnexpectedEndOfInput) hold.
func (e *EndOfInputError) Is(target error) bool {
	return target == ErrUnexpectedEndOfInput
}

// IsTransformError reports whether err came from the transform itself rather
// than from reading or writing the text around it.
func IsTransformError(err error) bool {
	return errors.Is(err, ErrPatternNotFound) || errors.Is(err, ErrUnexpectedEndOfInput)
}
