package core

import "github.com/pkg/errors"

// ErrMaintenanceActive is returned by every mutating service call attempted
// while the maintenance flag is on. No change is made.
var ErrMaintenanceActive = errors.New("application is under maintenance")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// IsValidationError reports whether the cause of err is a ValidationError.
func IsValidationError(err error) bool {
	switch errors.Cause(err).(type) {
	case *ValidationError, ValidationError:
		return true
	}
	return false
}
