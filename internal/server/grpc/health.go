package grpcserver

import (
	"context"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
)

// publisherCounter, subscriberCounter, and pumpStatus are satisfied by
// reactor.FrontendService, reactor.BackendService, and proxy.Proxy
// respectively, kept as local interfaces so this package never imports
// internal/proxy or creates a cycle back through internal/reactor.
type publisherCounter interface {
	PublisherCount() int64
}

type subscriberCounter interface {
	SubscriberCount() int64
}

type pumpStatus interface {
	PumpRunning() bool
}

// HealthService implements proxyv1.HealthServiceServer, reporting whether
// the proxy's pump is still draining, alongside current publisher and
// subscriber counts.
type HealthService struct {
	proxyv1.UnimplementedHealthServiceServer
	publishers  publisherCounter
	subscribers subscriberCounter
	pump        pumpStatus
}

// NewHealthService constructs a HealthService reporting on the given
// frontend, backend, and proxy core.
func NewHealthService(publishers publisherCounter, subscribers subscriberCounter, pump pumpStatus) *HealthService {
	return &HealthService{publishers: publishers, subscribers: subscribers, pump: pump}
}

func (h *HealthService) Check(context.Context, *proxyv1.HealthCheckRequest) (*proxyv1.HealthCheckResponse, error) {
	running := h.pump.PumpRunning()
	status := "ok"
	if !running {
		status = "not_serving"
	}
	return &proxyv1.HealthCheckResponse{
		Status:      status,
		Publishers:  h.publishers.PublisherCount(),
		Subscribers: h.subscribers.SubscriberCount(),
		PumpRunning: running,
	}, nil
}
