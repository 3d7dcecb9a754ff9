package grpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
	"github.com/rzbill/seisproxy/internal/config"
	"github.com/rzbill/seisproxy/internal/metrics"
	"github.com/rzbill/seisproxy/internal/reactor"
	"github.com/rzbill/seisproxy/internal/registry"
	"github.com/rzbill/seisproxy/pkg/handle"
)

const bufSize = 1 << 20

func dialer(s *grpc.Server) func(context.Context, string) (net.Conn, error) {
	lis := bufconn.Listen(bufSize)
	go func() { _ = s.Serve(lis) }()
	return func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
}

// directFanout bypasses the proxy ingress queue and pump, delivering
// straight to the registry so these tests exercise the gRPC plumbing
// without timing dependence on the pump interval.
type directFanout struct{ reg *registry.Registry }

func (d directFanout) Submit(p *proxyv1.Packet) { d.reg.FanOut(p) }

type fixedPumpStatus bool

func (f fixedPumpStatus) PumpRunning() bool { return bool(f) }

func TestHealthOverGRPC(t *testing.T) {
	reg := registry.New(8, nil)
	frontendSvc := reactor.NewFrontendService(config.FrontendConfig{MaximumNumberOfPublishers: 4}, false, directFanout{reg}, nil, metrics.NewUnregistered())
	backendSvc := reactor.NewBackendService(config.BackendConfig{MaximumNumberOfSubscribers: 4, QueueCapacity: 8, SendTimeoutMillis: 5}, false, reg, handle.NewGenerator(), nil, metrics.NewUnregistered())
	health := NewHealthService(frontendSvc, backendSvc, fixedPumpStatus(true))

	srv, err := NewFrontend(config.FrontendConfig{MaximumMessageSizeBytes: 8192}, frontendSvc, health, nil)
	if err != nil {
		t.Fatalf("NewFrontend: %v", err)
	}

	d := dialer(srv.grpc)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(ctx, "bufnet", grpc.WithContextDialer(d), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	c := proxyv1.NewHealthServiceClient(conn)
	res, err := c.Check(ctx, &proxyv1.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.GetStatus() != "ok" {
		t.Fatalf("expected ok status, got %q", res.GetStatus())
	}
	if !res.GetPumpRunning() {
		t.Fatalf("expected pump_running true")
	}
}

func TestPublishOverGRPC(t *testing.T) {
	reg := registry.New(8, nil)
	frontendSvc := reactor.NewFrontendService(config.FrontendConfig{MaximumNumberOfPublishers: 4}, false, directFanout{reg}, nil, metrics.NewUnregistered())
	backendSvc := reactor.NewBackendService(config.BackendConfig{MaximumNumberOfSubscribers: 4, QueueCapacity: 8, SendTimeoutMillis: 5}, false, reg, handle.NewGenerator(), nil, metrics.NewUnregistered())
	health := NewHealthService(frontendSvc, backendSvc, fixedPumpStatus(true))

	srv, err := NewFrontend(config.FrontendConfig{MaximumMessageSizeBytes: 8192, MaximumNumberOfPublishers: 4}, frontendSvc, health, nil)
	if err != nil {
		t.Fatalf("NewFrontend: %v", err)
	}

	d := dialer(srv.grpc)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(ctx, "bufnet", grpc.WithContextDialer(d), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	c := proxyv1.NewFrontendServiceClient(conn)
	stream, err := c.Publish(ctx)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	packet := &proxyv1.Packet{
		StreamIdentifier: &proxyv1.StreamIdentifier{Network: "XX", Station: "AAA", Channel: "BHZ", LocationCode: "00"},
		StartTimeMicros:  1,
		NumberOfSamples:  10,
		SamplingRateHz:   100,
		DataType:         proxyv1.DataType_INT32,
	}
	if err := stream.Send(packet); err != nil {
		t.Fatalf("send: %v", err)
	}
	res, err := stream.CloseAndRecv()
	if err != nil {
		t.Fatalf("close and recv: %v", err)
	}
	if res.GetTotalPackets() != 1 || res.GetPacketsRejected() != 0 {
		t.Fatalf("unexpected publish response: %+v", res)
	}
}

func TestSubscribeOverGRPC(t *testing.T) {
	reg := registry.New(8, nil)
	frontendSvc := reactor.NewFrontendService(config.FrontendConfig{MaximumNumberOfPublishers: 4}, false, directFanout{reg}, nil, metrics.NewUnregistered())
	backendSvc := reactor.NewBackendService(config.BackendConfig{MaximumNumberOfSubscribers: 4, QueueCapacity: 8, SendTimeoutMillis: 5}, false, reg, handle.NewGenerator(), nil, metrics.NewUnregistered())
	health := NewHealthService(frontendSvc, backendSvc, fixedPumpStatus(true))

	srv, err := NewBackend(config.BackendConfig{MaximumNumberOfSubscribers: 4}, backendSvc, health, nil)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}

	d := dialer(srv.grpc)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(ctx, "bufnet", grpc.WithContextDialer(d), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	c := proxyv1.NewBackendServiceClient(conn)
	subCtx, subCancel := context.WithCancel(ctx)
	defer subCancel()
	stream, err := c.Subscribe(subCtx, &proxyv1.SubscriptionRequest{})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	for i := 0; i < 100 && reg.Count() == 0; i++ {
		time.Sleep(time.Millisecond)
	}
	reg.FanOut(&proxyv1.Packet{NumberOfSamples: 42})

	got, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if got.GetNumberOfSamples() != 42 {
		t.Fatalf("unexpected packet: %+v", got)
	}
}
