// Package client talks to a running apibench server over both transports.
// It backs cmd/client, which checks that HTTP and gRPC serve the same
// dataset bytes and that the benchmark answers sensibly.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/apibench/internal/bench"
	"github.com/dmitrijs2005/apibench/internal/common"
	gs "github.com/dmitrijs2005/apibench/internal/server/grpc"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// maxUsersMessage bounds the GetUsers reply; the JSON dataset is well
// above gRPC's 4 MiB default.
const maxUsersMessage = 64 << 20

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
}

// NewGRPCClient connects lazily to endpointURL. Extra options are appended
// after the defaults (insecure transport, raised receive limit).
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxUsersMessage)),
		grpc.WithUnaryInterceptor(c.requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", endpointURL, err)
	}
	c.conn = conn
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func withRequestID(ctx context.Context, id string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(strings.ToLower(common.RequestIDHeaderName), id)

	return metadata.NewOutgoingContext(ctx, md)
}

// requestIDInterceptor tags every call with a fresh request id unless the
// caller already set one.
func (c *GRPCClient) requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if md, ok := metadata.FromOutgoingContext(ctx); !ok || len(md.Get(common.RequestIDHeaderName)) == 0 {
		ctx = withRequestID(ctx, uuid.NewString())
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	out := new(wrapperspb.StringValue)
	if err := c.conn.Invoke(ctx, gs.PingMethod, &emptypb.Empty{}, out); err != nil {
		return err
	}
	if out.GetValue() != "OK" {
		return fmt.Errorf("unexpected ping reply %q", out.GetValue())
	}
	return nil
}

// GetUsers returns the raw JSON dataset.
func (c *GRPCClient) GetUsers(ctx context.Context) ([]byte, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.conn.Invoke(ctx, gs.GetUsersMethod, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return out.GetValue(), nil
}

func (c *GRPCClient) RunBenchmark(ctx context.Context) (bench.Result, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, gs.RunBenchmarkMethod, &emptypb.Empty{}, out); err != nil {
		return bench.Result{}, err
	}

	f := out.GetFields()
	return bench.Result{
		ExecutionTimeMs: int64(f["executionTimeMs"].GetNumberValue()),
		PrimesFound:     int(f["primesFound"].GetNumberValue()),
		ProcessID:       uint32(f["processId"].GetNumberValue()),
		WorkingSetMB:    f["workingSetMB"].GetNumberValue(),
	}, nil
}
