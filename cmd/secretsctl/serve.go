package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/middleware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type serveOptions struct {
	addr      string
	grpcAddr  string
	accessKey string
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	so := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve validation reports and rendered headers to build machines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := middleware.NewSecretsClient(opts.file, so.accessKey, opts.strict, &opts.logger)
			if client == nil {
				return errors.New("failed to create secrets client")
			}
			defer client.Close()

			client.SetTerminationHandler(func(reason string) {
				opts.logger.Fatalf("Secrets validation failed: %s", reason)
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return so.run(ctx, client, opts)
		},
	}

	cmd.Flags().StringVar(&so.addr, "addr", "127.0.0.1:8080", "HTTP listen address")
	cmd.Flags().StringVar(&so.grpcAddr, "grpc-addr", "", "gRPC listen address, disabled when empty")
	cmd.Flags().StringVar(&so.accessKey, "access-key", os.Getenv(cn.EnvProvisionAccessKey), "provisioning access key")

	return cmd
}

func (so *serveOptions) run(ctx context.Context, client *middleware.SecretsClient, opts *rootOptions) error {
	client.StartupValidation()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get(cn.HealthPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})
	app.Use(client.Middleware())
	client.Routes(app)

	errCh := make(chan error, 2)

	go func() {
		opts.logger.Infof("Starting HTTP server on %s", so.addr)
		errCh <- app.Listen(so.addr)
	}()

	var server *grpc.Server

	if so.grpcAddr != "" {
		lis, err := net.Listen("tcp", so.grpcAddr)
		if err != nil {
			_ = app.Shutdown()
			return err
		}

		server = grpc.NewServer(
			grpc.UnaryInterceptor(client.UnaryServerInterceptor()),
			grpc.StreamInterceptor(client.StreamServerInterceptor()),
		)
		healthpb.RegisterHealthServer(server, health.NewServer())

		go func() {
			opts.logger.Infof("Starting gRPC server on %s", so.grpcAddr)
			errCh <- server.Serve(lis)
		}()
	}

	var err error
	select {
	case <-ctx.Done():
		opts.logger.Info("Shutting down provisioning servers")
	case err = <-errCh:
		opts.logger.Errorf("Provisioning server stopped: %v", err)
	}

	if server != nil {
		server.GracefulStop()
	}

	if shutdownErr := app.Shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}

	return err
}
