// Package httpserver exposes the dataset and the benchmark runner over
// HTTP/1.1 using gorilla/mux.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/apibench/internal/logging"
)

type HTTPServer struct {
	address           string
	handler           http.Handler
	logger            logging.Logger
	readHeaderTimeout time.Duration
	shutdownTimeout   time.Duration
}

func NewHTTPServer(a string, l logging.Logger, h http.Handler, readHeaderTimeout, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		address:           a,
		handler:           h,
		logger:            l.With("module", "http_server"),
		readHeaderTimeout: readHeaderTimeout,
		shutdownTimeout:   shutdownTimeout,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on l until ctx is canceled, then shuts down
// gracefully, waiting at most shutdownTimeout for in-flight requests.
func (s *HTTPServer) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", l.Addr().String())

	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cancel()
		<-stopped
		return err
	}
	return <-stopped
}
