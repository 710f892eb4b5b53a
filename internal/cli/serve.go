package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/sluice"
	"github.com/aretw0/sluice/internal/config"
	httpAdapter "github.com/aretw0/sluice/pkg/adapters/http"
	"github.com/aretw0/sluice/pkg/adapters/mcp"
	"github.com/aretw0/sluice/pkg/domain"
	"github.com/aretw0/sluice/pkg/observability"
	"github.com/aretw0/sluice/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServeOptions contains the configuration for the serve command.
type ServeOptions struct {
	NetworkPath string
	Config      *config.Config
}

// RunServe exposes the optimizer over HTTP until ctx is cancelled.
func RunServe(ctx context.Context, opts ServeOptions) error {
	logger, err := createLogger(opts.Config.Log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(opts.Config.Metrics.Namespace)
	if err := metrics.Register(reg); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	streams := httpAdapter.NewStreamManager()
	hooks := metrics.Hooks().Merge(streams.Hooks())

	opt, cleanup, err := createOptimizer(opts.Config, opts.NetworkPath, logger, hooks)
	if err != nil {
		return err
	}
	defer cleanup()

	handler := httpAdapter.NewHandler(&httpAdapter.Server{
		Solver:  opt,
		Streams: streams,
		Version: sluice.Version,
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Logger:  logger,
		Factory: func(n *domain.Network) (ports.Solver, error) {
			// Inline networks are not cached: their fingerprint space is unbounded.
			return sluice.New(n,
				sluice.WithLogger(logger),
				sluice.WithDefaults(opt.Defaults()),
				sluice.WithLifecycleHooks(hooks),
			)
		},
	})

	srv := &http.Server{
		Addr:              opts.Config.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting Sluice Server", "address", srv.Addr, "network", opts.NetworkPath)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Start shutdown...")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "error", err)
			return srv.Close()
		}
		logger.Info("Sluice Server stopped gracefully")
		return nil
	}
}

// MCPOptions contains the configuration for the mcp command.
type MCPOptions struct {
	NetworkPath string
	Config      *config.Config
	Transport   string
	Port        int
}

// RunMCP exposes the optimizer as an MCP server.
func RunMCP(ctx context.Context, opts MCPOptions) error {
	logger, err := createLogger(opts.Config.Log)
	if err != nil {
		return err
	}
	// The stdio transport owns Stdout; keep the default logger on Stderr too.
	slog.SetDefault(logger)

	opt, cleanup, err := createOptimizer(opts.Config, opts.NetworkPath, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := mcp.NewServer(opt, sluice.Version)

	switch strings.ToLower(opts.Transport) {
	case "", "stdio":
		logger.Info("Starting Sluice MCP Server (Stdio)...")
		return srv.ServeStdio()
	case "sse":
		logger.Info("Starting Sluice MCP Server (SSE)", "port", opts.Port)
		return srv.ServeSSE(ctx, opts.Port)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or sse)", opts.Transport)
	}
}
