package error

import (
	"errors"
	"io/fs"
	"strings"
)

// LoadError is a custom error type to propagate which source failed while
// loading secrets.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return "load " + e.Source
	}

	return "load " + e.Source + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsMissingSource checks if an error is caused by a secrets source that does not exist
func IsMissingSource(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, fs.ErrNotExist) {
		return true
	}

	// Try to unwrap and check nested error
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return IsMissingSource(unwrapped)
	}

	return false
}

// IsDecodeError checks if an error is related to a malformed secrets file
func IsDecodeError(err error) bool {
	if err == nil {
		return false
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Err == nil {
		return false
	}

	errStr := strings.ToLower(loadErr.Err.Error())

	// Check for known decoder error messages
	decodeErrors := []string{
		"yaml:",
		"unexpected character",
		"unterminated quoted value",
		"cannot unmarshal",
	}

	for _, msg := range decodeErrors {
		if strings.Contains(errStr, msg) {
			return true
		}
	}

	return false
}
