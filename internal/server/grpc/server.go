// Package grpc mirrors the HTTP surface over gRPC for clients that want to
// compare transports against the same workload.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/apibench/internal/bench"
	"github.com/dmitrijs2005/apibench/internal/dataset"
	"github.com/dmitrijs2005/apibench/internal/logging"
	"google.golang.org/grpc"
	_ "google.golang.org/grpc/encoding/gzip"
)

// Benchmarker runs the CPU workload behind RunBenchmark.
type Benchmarker interface {
	Run(ctx context.Context) bench.Result
}

type GRPCServer struct {
	address  string
	users    *dataset.Cache
	runner   Benchmarker
	observer Observer
	logger   logging.Logger
}

// NewGRPCServer returns a server bound to address a. o may be nil.
func NewGRPCServer(a string, l logging.Logger, users *dataset.Cache, runner Benchmarker, o Observer) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		users:    users,
		runner:   runner,
		observer: o,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on l until ctx is canceled.
func (s *GRPCServer) Serve(ctx context.Context, l net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.observeInterceptor))

	RegisterBenchServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", l.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(l); err != nil {
		return err
	}

	return nil
}
