// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Acquisition errors.
	ErrAcquisitionFailed = errors.New("image acquisition failed")
	ErrNoImage           = errors.New("no image selected")
	ErrCameraUnavailable = errors.New("camera unavailable")
	ErrCameraBusy        = errors.New("camera feed already open")
	ErrCameraClosed      = errors.New("camera feed not open")

	// Classification errors.
	ErrInvalidInput         = errors.New("invalid input")
	ErrClassificationFailed = errors.New("classification failed")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the message to surface for err. Acquisition and
// classification failures get a short prefix so the user knows which step to
// repeat.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Error()
	}

	switch {
	case errors.Is(err, ErrAcquisitionFailed), errors.Is(err, ErrCameraUnavailable), errors.Is(err, ErrCameraBusy):
		return fmt.Sprintf("Could not get a photo: %v", err)
	case errors.Is(err, ErrClassificationFailed), errors.Is(err, ErrInvalidInput):
		return fmt.Sprintf("Analysis failed: %v", err)
	default:
		return err.Error()
	}
}
