package pkg

import (
	"fmt"
	"strings"

	"github.com/trainboard/lib-secrets-go/constant"
)

// EntityNotFoundError records an error indicating an entity was not found in any case that caused it.
// You can use it to representing a missing secrets file or any other source.
type EntityNotFoundError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e EntityNotFoundError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		if strings.TrimSpace(e.EntityType) != "" {
			return fmt.Sprintf("Entity %s not found", e.EntityType)
		}

		if e.Err != nil {
			return e.Err.Error()
		}

		return "entity not found"
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityNotFoundError) Unwrap() error {
	return e.Err
}

// ValidationError records an error indicating a secret value failed a structural check.
type ValidationError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string
	Message    string
	Code       string
	Err        error `json:"err,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// UnauthorizedError indicates an operation that couldn't be performant because no access key was presented.
type UnauthorizedError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e UnauthorizedError) Error() string {
	return e.Message
}

// ForbiddenError indicates an operation that couldn't be performant because the access key is wrong.
type ForbiddenError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e ForbiddenError) Error() string {
	return e.Message
}

// UnprocessableOperationError indicates an operation that couldn't be performant because the loaded secrets are invalid.
type UnprocessableOperationError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

func (e UnprocessableOperationError) Error() string {
	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e UnprocessableOperationError) Unwrap() error {
	return e.Err
}

// InternalServerError indicates an unexpected failure during an operation.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

// ValidationKnownFieldsError records an error that occurred during a validation of known fields.
type ValidationKnownFieldsError struct {
	EntityType string           `json:"entityType,omitempty"`
	Title      string           `json:"title,omitempty"`
	Code       string           `json:"code,omitempty"`
	Message    string           `json:"message,omitempty"`
	Fields     FieldValidations `json:"fields,omitempty"`
}

// Error returns the error message for a ValidationKnownFieldsError.
func (r ValidationKnownFieldsError) Error() string {
	return r.Message
}

// FieldValidations is a map of known fields and their validation errors.
type FieldValidations map[string]string

// ValidateInternalError validates the error and returns an appropriate InternalServerError.
//
// Parameters:
// - err: The error to be validated.
// - entityType: The type of the entity associated with the error.
//
// Returns:
// - An InternalServerError with the appropriate code, title, message.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       constant.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    "The server encountered an unexpected error. Please try again later or contact support.",
		Err:        err,
	}
}

// ValidateBusinessError validates the error and returns the appropriate business error code, title, and message.
// Messages never include secret values, args carry field names and limits only.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	errorMap := map[error]error{
		constant.ErrMissingSSID: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrMissingSSID.Error(),
			Title:      "Missing SSID",
			Message:    "The Wi-Fi SSID is empty. Set it through the environment or the secrets file.",
			Err:        constant.ErrMissingSSID,
		},
		constant.ErrInvalidSSID: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidSSID.Error(),
			Title:      "Invalid SSID",
			Message:    fmt.Sprintf("The Wi-Fi SSID must be at most %d bytes long.", constant.MaxSSIDLength),
			Err:        constant.ErrInvalidSSID,
		},
		constant.ErrInvalidPassword: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidPassword.Error(),
			Title:      "Invalid Wi-Fi password",
			Message: fmt.Sprintf("The Wi-Fi password must be empty for an open network, %d to %d printable ASCII characters, or %d hex digits.",
				constant.MinPassphraseLength, constant.MaxPassphraseLength, constant.PSKHexLength),
			Err: constant.ErrInvalidPassword,
		},
		constant.ErrMissingServer: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrMissingServer.Error(),
			Title:      "Missing server",
			Message:    "The server hostname is empty.",
			Err:        constant.ErrMissingServer,
		},
		constant.ErrInvalidServer: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidServer.Error(),
			Title:      "Invalid server",
			Message:    fmt.Sprintf("The server '%s' is not a valid DNS name.", args...),
			Err:        constant.ErrInvalidServer,
		},
		constant.ErrInvalidRootCA: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidRootCA.Error(),
			Title:      "Invalid root certificate",
			Message: fmt.Sprintf("The root certificate must be empty or start with %s and end with %s.",
				constant.PEMBeginCertificate, constant.PEMEndCertificate),
			Err: constant.ErrInvalidRootCA,
		},
		constant.ErrMissingAPIKey: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrMissingAPIKey.Error(),
			Title:      "Missing API key",
			Message:    "The API key is empty.",
			Err:        constant.ErrMissingAPIKey,
		},
		constant.ErrInvalidAPIKey: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidAPIKey.Error(),
			Title:      "Invalid API key",
			Message:    "The API key must not contain whitespace.",
			Err:        constant.ErrInvalidAPIKey,
		},
		constant.ErrPlaceholderValue: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrPlaceholderValue.Error(),
			Title:      "Placeholder value",
			Message:    fmt.Sprintf("The field '%s' still holds its committed placeholder. Provide a real value before building release firmware.", args...),
			Err:        constant.ErrPlaceholderValue,
		},
		constant.ErrMissingAccessKey: UnauthorizedError{
			EntityType: entityType,
			Code:       constant.ErrMissingAccessKey.Error(),
			Title:      "Missing access key",
			Message:    fmt.Sprintf("The %s header is missing. Please ensure the header is included in the request.", constant.AccessKeyHeader),
			Err:        constant.ErrMissingAccessKey,
		},
		constant.ErrInvalidAccessKey: ForbiddenError{
			EntityType: entityType,
			Code:       constant.ErrInvalidAccessKey.Error(),
			Title:      "Invalid access key",
			Message:    "The provided access key is not valid for this provisioning server.",
			Err:        constant.ErrInvalidAccessKey,
		},
		constant.ErrInvalidSecrets: UnprocessableOperationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidSecrets.Error(),
			Title:      "Invalid secrets",
			Message:    "The loaded secrets failed validation. Run secretsctl check for details.",
			Err:        constant.ErrInvalidSecrets,
		},
		constant.ErrUnsupportedSource: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrUnsupportedSource.Error(),
			Title:      "Unsupported secrets source",
			Message:    fmt.Sprintf("The secrets file '%s' must be a .env, .yaml or .yml file.", args...),
			Err:        constant.ErrUnsupportedSource,
		},
		constant.ErrSourceNotFound: EntityNotFoundError{
			EntityType: entityType,
			Code:       constant.ErrSourceNotFound.Error(),
			Title:      "Secrets source not found",
			Message:    "The configured secrets file or root certificate file does not exist.",
			Err:        constant.ErrSourceNotFound,
		},
	}

	if mappedError, found := errorMap[err]; found {
		return mappedError
	}

	return err
}
