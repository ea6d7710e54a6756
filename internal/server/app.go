// Package server initializes and runs the apibench application: it builds
// the logger, metrics, dataset cache and benchmark runner from Config,
// starts the HTTP and gRPC transports and stops them on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/apibench/internal/bench"
	"github.com/dmitrijs2005/apibench/internal/dataset"
	"github.com/dmitrijs2005/apibench/internal/logging"
	"github.com/dmitrijs2005/apibench/internal/server/config"
	"github.com/dmitrijs2005/apibench/internal/server/httpserver"
	"github.com/dmitrijs2005/apibench/internal/server/metrics"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/apibench/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	users   *dataset.Cache
	runner  *bench.Runner
	metrics *metrics.Metrics
}

func NewApp(c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	logger, err := logging.New(os.Stdout, level, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	m := metrics.New()

	return &App{
		config:  c,
		logger:  logger,
		users:   dataset.NewCache(m.ObserveDatasetBuild),
		runner:  bench.NewRunner(logger, bench.WithObserver(m.ObserveSieve)),
		metrics: m,
	}, nil
}

// signalContext returns a context canceled on SIGINT, SIGTERM or SIGQUIT.
// stop releases the signal registration.
func (app *App) signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

// warmup builds the dataset and every encoding that will be served before
// the listeners open. A failure here is fatal.
func (app *App) warmup(ctx context.Context) error {
	encs := []dataset.Encoding{dataset.Identity}
	if app.config.Compression {
		encs = append(encs, dataset.Compressed...)
	}

	app.logger.Info(ctx, "Building dataset...", "records", dataset.UserCount, "encodings", encs)
	if err := app.users.Warm(encs...); err != nil {
		return fmt.Errorf("dataset warmup: %w", err)
	}
	return nil
}

func (app *App) routerConfig() httpserver.RouterConfig {
	rc := httpserver.RouterConfig{
		Users:       app.users,
		Runner:      app.runner,
		Logger:      app.logger,
		Compression: app.config.Compression,
		Observer:    app.metrics,
	}
	if app.config.Metrics {
		rc.Metrics = app.metrics.Handler()
	}
	return rc
}

// Run serves until ctx is canceled, a termination signal arrives or one of
// the transports fails; a transport failure stops the others.
func (app *App) Run(ctx context.Context) error {

	ctx, stop := app.signalContext(ctx)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	if app.config.Warmup {
		if err := app.warmup(ctx); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := httpserver.NewHTTPServer(app.config.HTTPAddr, app.logger, httpserver.NewRouter(app.routerConfig()),
			app.config.ReadHeaderTimeout, app.config.ShutdownTimeout)
		if err := s.Run(gctx); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if app.config.GRPCAddr != "" {
		g.Go(func() error {
			s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.users, app.runner, app.metrics)
			if err := s.Run(gctx); err != nil {
				return fmt.Errorf("grpc server: %w", err)
			}
			return nil
		})
	}

	err := g.Wait()
	app.logger.Info(ctx, "App stopped")
	return err
}
