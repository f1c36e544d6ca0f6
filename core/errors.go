package core

import "github.com/pkg/errors"

// FieldError names one invalid field of a validated payload.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is the one hard failure the system raises for user
// input: personal-schedule imports and malformed request parameters.
// Catalog data is never validated this way; malformed domain text
// degrades to "unknown" instead.
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

type shutdown struct {
	message string
}

// NewShutdownError marks an integrity error that leaves no safe way to
// keep serving; the HTTP error handler checks for it with IsShutdown and
// signals a graceful stop. Reserved for handlers, not the schedule core.
func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
