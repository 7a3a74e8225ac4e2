package library

import (
	"errors"
	"fmt"

	"youtopia.dev/youtopia/internal/videourl"
)

// ErrInvalidInput means the submitted URL matched no known pattern.
var ErrInvalidInput = errors.New("invalid input")

// ErrAlreadyExists means the insert hit an existing upstream ID. It is a
// conflict signal, not a failure.
var ErrAlreadyExists = errors.New("already exists")

// AlreadyExistsError carries the display title of the duplicate item so the
// handler can echo it back. errors.Is(err, ErrAlreadyExists) matches it.
type AlreadyExistsError struct {
	Kind  videourl.Kind
	Title string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Title)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}
