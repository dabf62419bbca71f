package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	cn "github.com/trainboard/lib-secrets-go/constant"
	libErr "github.com/trainboard/lib-secrets-go/error"
	"github.com/trainboard/lib-secrets-go/model"
	"github.com/trainboard/lib-secrets-go/pkg"
	pkgHTTP "github.com/trainboard/lib-secrets-go/pkg/net/http"
	"github.com/trainboard/lib-secrets-go/render"
)

// Middleware creates a Fiber middleware that requires the provisioning access key
func (c *SecretsClient) Middleware() fiber.Handler {
	// Perform startup validation
	c.StartupValidation()

	return func(ctx *fiber.Ctx) error {
		requestID := uuid.NewString()
		ctx.Set(cn.RequestIDHeader, requestID)

		if !c.configured() {
			return pkgHTTP.WithError(ctx, pkg.ValidateInternalError(errNotConfigured, "Secrets"))
		}

		if err := c.checkAccessKey(ctx.Get(cn.AccessKeyHeader)); err != nil {
			mapped := pkg.ValidateBusinessError(err, "")

			c.GetLogger().Errorf("Rejected provisioning request %s with status %d (code %s)",
				requestID, pkgHTTP.StatusCode(mapped), err.Error())

			return pkgHTTP.WithError(ctx, mapped)
		}

		return ctx.Next()
	}
}

// Routes mounts the provisioning endpoints on r. Mount Middleware first.
// A client that failed to build answers every route with 500.
func (c *SecretsClient) Routes(r fiber.Router) {
	if !c.configured() {
		r.Get(cn.ReportPath, notConfigured)
		r.Get(cn.HeaderPath, notConfigured)

		return
	}

	r.Get(cn.ReportPath, c.getReport)
	r.Get(cn.HeaderPath, c.getHeader)
}

func notConfigured(ctx *fiber.Ctx) error {
	return pkgHTTP.WithError(ctx, pkg.ValidateInternalError(errNotConfigured, "Secrets"))
}

// getReport answers with the validation report, which carries a fingerprint
// but never the secrets themselves.
func (c *SecretsClient) getReport(ctx *fiber.Ctx) error {
	report, err := c.validate(ctx)
	if err != nil {
		return pkgHTTP.WithError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(report)
}

// validate maps a vanished secrets source to 404, other load failures
// answer 500.
func (c *SecretsClient) validate(ctx *fiber.Ctx) (model.Report, error) {
	report, err := c.validator.Validate(ctx.UserContext())
	if libErr.IsMissingSource(err) {
		return report, pkg.ValidateBusinessError(cn.ErrSourceNotFound, "Secrets")
	}

	return report, err
}

// getHeader answers with the rendered firmware header.
func (c *SecretsClient) getHeader(ctx *fiber.Ctx) error {
	l := c.GetLogger()

	report, err := c.validate(ctx)
	if err != nil {
		return pkgHTTP.WithError(ctx, err)
	}

	if !report.Valid {
		l.Errorf("Refusing to render header for invalid secrets %s", report.Fingerprint)
		return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(cn.ErrInvalidSecrets, "Secrets"))
	}

	s, err := c.validator.Secrets(ctx.UserContext())
	if err != nil {
		return pkgHTTP.WithError(ctx, err)
	}

	header, err := render.Header(s)
	if err != nil {
		return pkgHTTP.WithError(ctx, err)
	}

	l.Infof("Served firmware header %s", report.Fingerprint)

	ctx.Set(fiber.HeaderContentType, "text/x-c; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="SECRETS.h"`)

	return ctx.Status(fiber.StatusOK).Send(header)
}
