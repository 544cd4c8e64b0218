package catalog

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a fetch failed. All kinds surface to the user
// as a single "fetch failed" message.
type ErrorKind string

const (
	KindNetwork ErrorKind = "network"
	KindStatus  ErrorKind = "status"
	KindDecode  ErrorKind = "decode"
)

// FetchError describes a failed catalog fetch
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("invalid response body: %v", e.Err)
	default:
		return fmt.Sprintf("network error: %v", e.Err)
	}
}

// Unwrap returns the underlying cause for errors.Is and errors.As support
func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is a FetchError for a non-success status
func IsStatus(err error) (int, bool) {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Kind == KindStatus {
		return fe.StatusCode, true
	}
	return 0, false
}

// FailureMessage is the text shown to the user for a failed fetch
func FailureMessage(err error) string {
	return fmt.Sprintf("Failed to fetch beers: %v", err)
}
