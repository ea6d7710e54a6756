package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/apibench/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Observer receives one call per finished unary RPC.
type Observer interface {
	ObserveGRPC(method, code string)
}

func (s *GRPCServer) observeInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err).String()
	s.logger.Debug(ctx, "call",
		"method", info.FullMethod,
		"code", code,
		"duration", time.Since(start),
		"request_id", requestIDFromContext(ctx),
	)
	if s.observer != nil {
		s.observer.ObserveGRPC(info.FullMethod, code)
	}
	return resp, err
}

func requestIDFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(strings.ToLower(common.RequestIDHeaderName)); len(values) > 0 {
		return values[0]
	}
	return ""
}
