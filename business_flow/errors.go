package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Profile-related errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileInactive = errors.New("profile is inactive")

	// Availability errors
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")

	// Engagement errors
	ErrInvalidViewerID = errors.New("viewer id is not a valid UUID")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsProfileNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound)
}

func IsProfileInactive(err error) bool {
	return errors.Is(err, ErrProfileInactive)
}

func IsInvalidDuration(err error) bool {
	return errors.Is(err, ErrInvalidDuration)
}

func IsInvalidViewerID(err error) bool {
	return errors.Is(err, ErrInvalidViewerID)
}
