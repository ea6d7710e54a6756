package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "apibench.v1.BenchService"

// Full method names, as seen by interceptors and clients.
const (
	GetUsersMethod     = "/" + ServiceName + "/GetUsers"
	RunBenchmarkMethod = "/" + ServiceName + "/RunBenchmark"
	PingMethod         = "/" + ServiceName + "/Ping"
)

// BenchServiceServer is the server API of apibench.v1.BenchService. Every
// message is a protobuf well-known type, so no generated code is needed:
//
//	service BenchService {
//	  rpc GetUsers(google.protobuf.Empty) returns (google.protobuf.BytesValue);
//	  rpc RunBenchmark(google.protobuf.Empty) returns (google.protobuf.Struct);
//	  rpc Ping(google.protobuf.Empty) returns (google.protobuf.StringValue);
//	}
type BenchServiceServer interface {
	GetUsers(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error)
	RunBenchmark(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

var benchServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BenchServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetUsers", Handler: emptyUnary(GetUsersMethod, BenchServiceServer.GetUsers)},
		{MethodName: "RunBenchmark", Handler: emptyUnary(RunBenchmarkMethod, BenchServiceServer.RunBenchmark)},
		{MethodName: "Ping", Handler: emptyUnary(PingMethod, BenchServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "apibench/v1/bench.proto",
}

// RegisterBenchServiceServer registers impl on s.
func RegisterBenchServiceServer(s grpc.ServiceRegistrar, impl BenchServiceServer) {
	s.RegisterService(&benchServiceDesc, impl)
}

// emptyUnary adapts a BenchServiceServer method taking google.protobuf.Empty
// to a grpc method handler, routing through the interceptor chain.
func emptyUnary[Resp any](fullMethod string, call func(BenchServiceServer, context.Context, *emptypb.Empty) (Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(emptypb.Empty)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BenchServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BenchServiceServer), ctx, req.(*emptypb.Empty))
		}
		return interceptor(ctx, in, info, handler)
	}
}
