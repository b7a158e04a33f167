package core

import "github.com/pkg/errors"

// FieldError pins a validation failure to one form field. Field carries the
// field's JSON name so a view can attach the message to the right input.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries the per-field failures of a local validation pass.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown marks an unrecoverable host state. The web host's error handler
// answers it with a graceful stop instead of serving on.
type shutdown struct {
	message string
}

// NewShutdownError returns an error the HTTP error handler treats as a
// request to shut the host down.
func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s *shutdown) Error() string {
	return s.message
}

// IsShutdown checks whether err, or its cause, is a shutdown request.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
