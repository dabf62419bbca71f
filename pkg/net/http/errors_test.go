package http

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/pkg"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: pkg.ValidateBusinessError(cn.ErrMissingSSID, "Secrets"), status: fiber.StatusBadRequest},
		{name: "known fields", err: pkg.ValidationKnownFieldsError{Code: "SEC-0001"}, status: fiber.StatusBadRequest},
		{name: "not found", err: pkg.EntityNotFoundError{Code: "SEC-0000", Message: "gone"}, status: fiber.StatusNotFound},
		{name: "invalid secrets", err: pkg.ValidateBusinessError(cn.ErrInvalidSecrets, "Secrets"), status: fiber.StatusUnprocessableEntity},
		{name: "missing access key", err: pkg.ValidateBusinessError(cn.ErrMissingAccessKey, ""), status: fiber.StatusUnauthorized},
		{name: "invalid access key", err: pkg.ValidateBusinessError(cn.ErrInvalidAccessKey, ""), status: fiber.StatusForbidden},
		{name: "unknown", err: errors.New("boom"), status: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return WithError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.status, StatusCode(tt.err))
		})
	}
}
