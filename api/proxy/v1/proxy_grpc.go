package proxyv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	FrontendService_Publish_FullMethodName   = "/proxy.v1.FrontendService/Publish"
	BackendService_Subscribe_FullMethodName  = "/proxy.v1.BackendService/Subscribe"
	HealthService_Check_FullMethodName       = "/proxy.v1.HealthService/Check"
)

// --- FrontendService ---------------------------------------------------

// FrontendServiceClient is the client API for FrontendService.
type FrontendServiceClient interface {
	Publish(ctx context.Context, opts ...grpc.CallOption) (FrontendService_PublishClient, error)
}

type frontendServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFrontendServiceClient constructs a FrontendServiceClient over cc.
func NewFrontendServiceClient(cc grpc.ClientConnInterface) FrontendServiceClient {
	return &frontendServiceClient{cc}
}

func (c *frontendServiceClient) Publish(ctx context.Context, opts ...grpc.CallOption) (FrontendService_PublishClient, error) {
	stream, err := c.cc.NewStream(ctx, &FrontendService_ServiceDesc.Streams[0], FrontendService_Publish_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &frontendServicePublishClient{stream}, nil
}

// FrontendService_PublishClient is the client-streaming handle for Publish.
type FrontendService_PublishClient interface {
	Send(*Packet) error
	CloseAndRecv() (*PublishResponse, error)
	grpc.ClientStream
}

type frontendServicePublishClient struct {
	grpc.ClientStream
}

func (x *frontendServicePublishClient) Send(m *Packet) error {
	return x.ClientStream.SendMsg(m)
}

func (x *frontendServicePublishClient) CloseAndRecv() (*PublishResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(PublishResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// FrontendServiceServer is the server API for FrontendService.
type FrontendServiceServer interface {
	Publish(FrontendService_PublishServer) error
}

// UnimplementedFrontendServiceServer may be embedded to satisfy forward
// compatibility with new methods added to FrontendServiceServer.
type UnimplementedFrontendServiceServer struct{}

func (UnimplementedFrontendServiceServer) Publish(FrontendService_PublishServer) error {
	return status.Errorf(codes.Unimplemented, "method Publish not implemented")
}

// FrontendService_PublishServer is the server-side handle for Publish.
type FrontendService_PublishServer interface {
	SendAndClose(*PublishResponse) error
	Recv() (*Packet, error)
	grpc.ServerStream
}

type frontendServicePublishServer struct {
	grpc.ServerStream
}

func (x *frontendServicePublishServer) SendAndClose(m *PublishResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *frontendServicePublishServer) Recv() (*Packet, error) {
	m := new(Packet)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _FrontendService_Publish_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(FrontendServiceServer).Publish(&frontendServicePublishServer{stream})
}

// FrontendService_ServiceDesc is the grpc.ServiceDesc for FrontendService.
var FrontendService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "proxy.v1.FrontendService",
	HandlerType: (*FrontendServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Publish",
			Handler:       _FrontendService_Publish_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "proxy/v1/proxy.proto",
}

// RegisterFrontendServiceServer registers srv with s.
func RegisterFrontendServiceServer(s grpc.ServiceRegistrar, srv FrontendServiceServer) {
	s.RegisterService(&FrontendService_ServiceDesc, srv)
}

// --- BackendService ------------------------------------------------------

// BackendServiceClient is the client API for BackendService.
type BackendServiceClient interface {
	Subscribe(ctx context.Context, in *SubscriptionRequest, opts ...grpc.CallOption) (BackendService_SubscribeClient, error)
}

type backendServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBackendServiceClient constructs a BackendServiceClient over cc.
func NewBackendServiceClient(cc grpc.ClientConnInterface) BackendServiceClient {
	return &backendServiceClient{cc}
}

func (c *backendServiceClient) Subscribe(ctx context.Context, in *SubscriptionRequest, opts ...grpc.CallOption) (BackendService_SubscribeClient, error) {
	stream, err := c.cc.NewStream(ctx, &BackendService_ServiceDesc.Streams[0], BackendService_Subscribe_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &backendServiceSubscribeClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// BackendService_SubscribeClient is the server-streaming handle for Subscribe.
type BackendService_SubscribeClient interface {
	Recv() (*Packet, error)
	grpc.ClientStream
}

type backendServiceSubscribeClient struct {
	grpc.ClientStream
}

func (x *backendServiceSubscribeClient) Recv() (*Packet, error) {
	m := new(Packet)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// BackendServiceServer is the server API for BackendService.
type BackendServiceServer interface {
	Subscribe(*SubscriptionRequest, BackendService_SubscribeServer) error
}

// UnimplementedBackendServiceServer may be embedded to satisfy forward
// compatibility with new methods added to BackendServiceServer.
type UnimplementedBackendServiceServer struct{}

func (UnimplementedBackendServiceServer) Subscribe(*SubscriptionRequest, BackendService_SubscribeServer) error {
	return status.Errorf(codes.Unimplemented, "method Subscribe not implemented")
}

// BackendService_SubscribeServer is the server-side handle for Subscribe.
type BackendService_SubscribeServer interface {
	Send(*Packet) error
	grpc.ServerStream
}

type backendServiceSubscribeServer struct {
	grpc.ServerStream
}

func (x *backendServiceSubscribeServer) Send(m *Packet) error {
	return x.ServerStream.SendMsg(m)
}

func _BackendService_Subscribe_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscriptionRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(BackendServiceServer).Subscribe(m, &backendServiceSubscribeServer{stream})
}

// BackendService_ServiceDesc is the grpc.ServiceDesc for BackendService.
var BackendService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "proxy.v1.BackendService",
	HandlerType: (*BackendServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       _BackendService_Subscribe_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "proxy/v1/proxy.proto",
}

// RegisterBackendServiceServer registers srv with s.
func RegisterBackendServiceServer(s grpc.ServiceRegistrar, srv BackendServiceServer) {
	s.RegisterService(&BackendService_ServiceDesc, srv)
}

// --- HealthService ---------------------------------------------------------

// HealthServiceClient is the client API for HealthService.
type HealthServiceClient interface {
	Check(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error)
}

type healthServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewHealthServiceClient constructs a HealthServiceClient over cc.
func NewHealthServiceClient(cc grpc.ClientConnInterface) HealthServiceClient {
	return &healthServiceClient{cc}
}

func (c *healthServiceClient) Check(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error) {
	out := new(HealthCheckResponse)
	if err := c.cc.Invoke(ctx, HealthService_Check_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// HealthServiceServer is the server API for HealthService.
type HealthServiceServer interface {
	Check(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error)
}

// UnimplementedHealthServiceServer may be embedded to satisfy forward
// compatibility with new methods added to HealthServiceServer.
type UnimplementedHealthServiceServer struct{}

func (UnimplementedHealthServiceServer) Check(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Check not implemented")
}

func _HealthService_Check_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HealthServiceServer).Check(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: HealthService_Check_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HealthServiceServer).Check(ctx, req.(*HealthCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// HealthService_ServiceDesc is the grpc.ServiceDesc for HealthService.
var HealthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "proxy.v1.HealthService",
	HandlerType: (*HealthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Check",
			Handler:    _HealthService_Check_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proxy/v1/proxy.proto",
}

// RegisterHealthServiceServer registers srv with s.
func RegisterHealthServiceServer(s grpc.ServiceRegistrar, srv HealthServiceServer) {
	s.RegisterService(&HealthService_ServiceDesc, srv)
}
