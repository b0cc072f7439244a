package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/keep/internal/storage"
)

// NotFoundError indicates an unknown record kind or field.
type NotFoundError struct {
	Type string // "record" or "field"
	ID   string // the name that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.ID)
}

// ValidationError indicates bad user input.
type ValidationError struct {
	Field   string // the flag or field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output, and adds
// a hint for store failures the user can act on.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := "error: " + err.Error()

	var de *storage.DeserializationError
	var ce *storage.ConfigurationError
	switch {
	case errors.As(err, &de):
		msg += "\nhint: the file may be corrupt or written in the other format; try --binary or `keep reset`"
	case errors.As(err, &ce):
		msg += "\nhint: pass --key or disable strict keys"
	}
	return msg
}
