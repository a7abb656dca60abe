package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/trackhist"
	"github.com/aretw0/trackhist/internal/config"
	httpAdapter "github.com/aretw0/trackhist/pkg/adapters/http"
	"github.com/aretw0/trackhist/pkg/adapters/jsonl"
	"github.com/aretw0/trackhist/pkg/adapters/mcp"
	"github.com/aretw0/trackhist/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ShutdownTimeout bounds graceful shutdown of the HTTP server.
const ShutdownTimeout = 5 * time.Second

// ServeOptions configures the serve command.
type ServeOptions struct {
	ConfigPath string
	Overrides  []string
	Addr       string
	Events     []string // NDJSON files processed before serving
	Debug      bool

	Stderr io.Writer
}

// Serve exposes the run store over HTTP until ctx is cancelled.
func Serve(ctx context.Context, opts ServeOptions) error {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	settings, err := config.Load(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}
	logger, err := createLogger(settings.LogLevel, settings.LogFormat, opts.Debug, opts.Stderr)
	if err != nil {
		return err
	}

	persistence, err := OpenPersistence(ctx, settings, logger)
	if err != nil {
		return err
	}
	defer persistence.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	if err := ingest(ctx, settings, persistence, opts.Events, metrics, logger, opts.Debug); err != nil {
		return err
	}

	srv := &http.Server{
		Addr: opts.Addr,
		Handler: httpAdapter.NewHandler(persistence.Store,
			httpAdapter.WithGatherer(reg),
			httpAdapter.WithLogger(logger),
		),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Start shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown did not complete", "timeout", ShutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("could not stop server: %w", err)
			}
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("Server stopped gracefully")
		return nil
	}
}

// MCPOptions configures the mcp command.
type MCPOptions struct {
	ConfigPath string
	Overrides  []string
	Debug      bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ServeMCP exposes the run store as MCP tools on stdin/stdout until the
// input closes or ctx is cancelled.
func ServeMCP(ctx context.Context, opts MCPOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	settings, err := config.Load(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}
	logger, err := createLogger(settings.LogLevel, settings.LogFormat, opts.Debug, opts.Stderr)
	if err != nil {
		return err
	}

	persistence, err := OpenPersistence(ctx, settings, logger)
	if err != nil {
		return err
	}
	defer persistence.Close()

	logger.Info("Starting MCP server (stdio)")
	if err := mcp.NewServer(persistence.Store).Listen(ctx, opts.Stdin, opts.Stdout, opts.Stderr); err != nil {
		return err
	}
	logger.Info("MCP server stopped")
	return nil
}

// ingest runs the analysis over each events file and stores the results.
func ingest(ctx context.Context, settings config.Settings, p *Persistence, paths []string, metrics *observability.Metrics, logger *slog.Logger, debug bool) error {
	hooks := metrics.Hooks()
	if debug {
		hooks = chainHooks(hooks, createDebugHooks(logger))
	}

	for _, path := range paths {
		source, err := jsonl.Open(path)
		if err != nil {
			return err
		}

		analysisOpts := []trackhist.Option{
			trackhist.WithWorkers(settings.Workers),
			trackhist.WithStore(p.Store),
			trackhist.WithLogger(logger.With("input", path)),
			trackhist.WithHooks(hooks),
			trackhist.WithObserver(metrics.ObserveRun),
		}
		if p.Locker != nil {
			analysisOpts = append(analysisOpts, trackhist.WithLocker(p.Locker))
		}

		_, err = trackhist.New(settings.Config, analysisOpts...).Run(ctx, source)
		source.Close()
		if err != nil {
			return fmt.Errorf("ingest %s: %w", path, err)
		}
	}
	return nil
}
