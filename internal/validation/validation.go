package validation

import (
	"errors"
	"fmt"
)

// Error is a user-facing validation failure. Handlers answer it with 400.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func invalid(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is or wraps a validation Error.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// RequiredValue fails with "<field> is required" when a non-string field was
// left out of the request.
func RequiredValue(field string, set bool) error {
	if !set {
		return invalid("%s is required", field)
	}
	return nil
}

// Required returns an error naming the first empty field, in order.
// fields alternates name and value.
func Required(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i+1] == "" {
			return invalid("%s is required", fields[i])
		}
	}
	return nil
}
