package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// GetUsers returns the same bytes as GET /users.
func (s *GRPCServer) GetUsers(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	body, err := s.users.JSON()
	if err != nil {
		s.logger.Error(ctx, "dataset unavailable", "error", err)
		return nil, status.Error(codes.Internal, "dataset unavailable")
	}
	return wrapperspb.Bytes(body), nil
}

// RunBenchmark runs the sieve and reports the same fields as GET /benchmark.
func (s *GRPCServer) RunBenchmark(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	res := s.runner.Run(ctx)

	out, err := structpb.NewStruct(map[string]any{
		"executionTimeMs": res.ExecutionTimeMs,
		"primesFound":     res.PrimesFound,
		"processId":       res.ProcessID,
		"workingSetMB":    res.WorkingSetMB,
	})
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}
	return out, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("OK"), nil
}
