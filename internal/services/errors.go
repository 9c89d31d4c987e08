package services

import (
	"errors"
	"fmt"
)

// ErrValidation marks input that was rejected before any network call
var ErrValidation = errors.New("validation failed")

// OperationError is a fatal failure of a call to the tracker
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Warning is a failure of a secondary step that did not stop the command
type Warning struct {
	Op  string
	Err error
}

func (w Warning) Error() string {
	return fmt.Sprintf("could not %s: %v", w.Op, w.Err)
}

func (w Warning) Unwrap() error {
	return w.Err
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
