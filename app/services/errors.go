package services

import "errors"

// ErrNotFound is the sentinel matched by errors.Is for every lookup that
// references an id which does not exist.
var ErrNotFound = errors.New("not found")

// InputError marks a user-correctable problem: a blank field, a malformed
// email, a password-policy violation or an unreadable upload. Controllers
// catch it and re-render the originating form with the message inline.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// NewInputError creates an InputError with the given message.
func NewInputError(message string) error {
	return &InputError{Message: message}
}

// IsInputError reports whether err is an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// NotFoundError carries a message while still matching ErrNotFound
// through errors.Is.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a NotFoundError with the given message.
func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}
