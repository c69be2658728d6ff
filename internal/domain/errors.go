package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a single-entity fetch that matched nothing
var ErrNotFound = errors.New("not found")

// TransportError is a network failure or non-success status on a fetch
type TransportError struct {
	Resource string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FormatError is a payload that does not have the expected JSON shape
type FormatError struct {
	Resource string
	Err      error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Resource, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsFormat reports whether err is, or wraps, a FormatError
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// UserMessage converts a failure into the text rendered by a view
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return VacancyNotFound
	}

	var te *TransportError
	if errors.As(err, &te) {
		return te.Error()
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return GenericFailure
}
