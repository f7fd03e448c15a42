package gradebook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/necbot/gradebook-go/pkg/gradebook/engine"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// AuthError represents an authentication rejection. The Reason is for the
// caller; user-facing output should use GenericMessage so unknown IDs and
// wrong codes are indistinguishable.
type AuthError struct {
	Reason engine.RejectReason
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected (%s)", e.Reason)
}

// GenericMessage returns the user-facing message, identical for every
// rejection reason.
func (e *AuthError) GenericMessage() string {
	return "invalid Student ID, Access Code, or Secret"
}

// AmbiguousCourseError means the student has rows in multiple courses and no
// course filter was supplied. It is a request for a course selection, not a
// failure; Courses carries the choices.
type AmbiguousCourseError struct {
	Courses []string
}

func (e *AmbiguousCourseError) Error() string {
	return fmt.Sprintf("course selection required (one of: %s)", strings.Join(e.Courses, ", "))
}
