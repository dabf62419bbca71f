package middleware

import (
	"context"
	"strings"

	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/pkg"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor creates a gRPC unary server interceptor that requires the provisioning access key
// It works similarly to the HTTP middleware but adapted for gRPC context
func (c *SecretsClient) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	// Perform startup validation
	c.StartupValidation()

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if err := c.authorizeGRPC(ctx, info.FullMethod); err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

// StreamServerInterceptor creates a gRPC stream server interceptor that requires the provisioning access key
func (c *SecretsClient) StreamServerInterceptor() grpc.StreamServerInterceptor {
	// Perform startup validation
	c.StartupValidation()

	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if err := c.authorizeGRPC(ss.Context(), info.FullMethod); err != nil {
			return err
		}

		return handler(srv, ss)
	}
}

// authorizeGRPC checks the access key carried in the incoming metadata.
// Health checks pass without a key, everything else fails closed when the
// client could not be built.
func (c *SecretsClient) authorizeGRPC(ctx context.Context, method string) error {
	if strings.HasPrefix(method, cn.HealthServicePrefix) {
		return nil
	}

	if !c.configured() {
		return status.Error(codes.Unavailable, errNotConfigured.Error())
	}

	l := c.GetLogger()

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		l.Error("Failed to extract metadata from gRPC context")
		return status.Error(codes.Unauthenticated, "missing metadata")
	}

	var presented string
	if keys := md.Get(cn.AccessKeyMetadata); len(keys) > 0 {
		presented = keys[0]
	}

	err := c.checkAccessKey(presented)
	switch err {
	case nil:
		return nil
	case cn.ErrMissingAccessKey:
		l.Errorf("Missing access key on %s (code %s)", method, err.Error())
		return status.Error(codes.Unauthenticated, pkg.ValidateBusinessError(err, "").Error())
	default:
		l.Errorf("Invalid access key on %s (code %s)", method, err.Error())
		return status.Error(codes.PermissionDenied, pkg.ValidateBusinessError(err, "").Error())
	}
}
