package constant

import "errors"

// Structured error codes for secrets validation and provisioning
var (
	ErrMissingSSID       = errors.New("SEC-0001")
	ErrInvalidSSID       = errors.New("SEC-0002")
	ErrInvalidPassword   = errors.New("SEC-0003")
	ErrMissingServer     = errors.New("SEC-0004")
	ErrInvalidServer     = errors.New("SEC-0005")
	ErrInvalidRootCA     = errors.New("SEC-0006")
	ErrMissingAPIKey     = errors.New("SEC-0007")
	ErrInvalidAPIKey     = errors.New("SEC-0008")
	ErrPlaceholderValue  = errors.New("SEC-0009")
	ErrMissingAccessKey  = errors.New("SEC-0010")
	ErrInvalidAccessKey  = errors.New("SEC-0011")
	ErrInvalidSecrets    = errors.New("SEC-0012")
	ErrUnsupportedSource = errors.New("SEC-0013")
	ErrInternalServer    = errors.New("SEC-0014")
	ErrSourceNotFound    = errors.New("SEC-0015")
)
