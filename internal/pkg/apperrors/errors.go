package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Resource errors by entity. All unwrap to ErrResourceNotFound so the
// HTTP layer can map them with a single errors.Is check.
var (
	ErrSubjectNotFound      = &CustomError{Err: ErrResourceNotFound, Message: "Subject not found"}
	ErrAnnouncementNotFound = &CustomError{Err: ErrResourceNotFound, Message: "Announcement not found"}
	ErrMaterialNotFound     = &CustomError{Err: ErrResourceNotFound, Message: "Material not found"}
	ErrAssignmentNotFound   = &CustomError{Err: ErrResourceNotFound, Message: "Assignment not found"}
	ErrReminderNotFound     = &CustomError{Err: ErrResourceNotFound, Message: "Reminder not found"}
)

// CustomError represents application-specific errors with a
// user-facing message on top of a sentinel error.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error carrying a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error carrying a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}
