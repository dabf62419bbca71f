package http

import (
	"errors"

	commonsHttp "github.com/LerianStudio/lib-commons/commons/net/http"
	"github.com/gofiber/fiber/v2"
	"github.com/trainboard/lib-secrets-go/pkg"
)

// WithError returns an error with the given status code and message.
func WithError(c *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case pkg.EntityNotFoundError:
		return commonsHttp.NotFound(c, e.Code, e.Title, e.Message)
	case pkg.ValidationError:
		return commonsHttp.BadRequest(c, pkg.ValidationKnownFieldsError{
			Code:    e.Code,
			Title:   e.Title,
			Message: e.Message,
			Fields:  nil,
		})
	case pkg.UnprocessableOperationError:
		return commonsHttp.UnprocessableEntity(c, e.Code, e.Title, e.Message)
	case pkg.UnauthorizedError:
		return commonsHttp.Unauthorized(c, e.Code, e.Title, e.Message)
	case pkg.ForbiddenError:
		return commonsHttp.Forbidden(c, e.Code, e.Title, e.Message)
	case pkg.ValidationKnownFieldsError:
		return commonsHttp.BadRequest(c, e)
	default:
		var iErr pkg.InternalServerError
		_ = errors.As(pkg.ValidateInternalError(err, ""), &iErr)

		return commonsHttp.InternalServerError(c, iErr.Code, iErr.Title, iErr.Message)
	}
}

// StatusCode returns the HTTP status WithError would answer with for err
func StatusCode(err error) int {
	switch err.(type) {
	case pkg.EntityNotFoundError:
		return fiber.StatusNotFound
	case pkg.ValidationError, pkg.ValidationKnownFieldsError:
		return fiber.StatusBadRequest
	case pkg.UnprocessableOperationError:
		return fiber.StatusUnprocessableEntity
	case pkg.UnauthorizedError:
		return fiber.StatusUnauthorized
	case pkg.ForbiddenError:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
