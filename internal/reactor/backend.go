package reactor

import (
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
	"github.com/rzbill/seisproxy/internal/admission"
	"github.com/rzbill/seisproxy/internal/config"
	"github.com/rzbill/seisproxy/internal/metrics"
	"github.com/rzbill/seisproxy/internal/packetstream"
	"github.com/rzbill/seisproxy/internal/registry"
	"github.com/rzbill/seisproxy/pkg/handle"
	"github.com/rzbill/seisproxy/pkg/log"
)

// BackendService implements proxyv1.BackendServiceServer: one Subscribe
// call per subscriber, driving the C5 write-side poll loop that drains
// the registry's fan-out queue onto the wire.
type BackendService struct {
	proxyv1.UnimplementedBackendServiceServer

	cfg         config.BackendConfig
	tlsEnabled  bool
	cap         *admission.Cap
	registry    *registry.Registry
	handles     *handle.Generator
	sendTimeout time.Duration
	log         log.Logger
	metrics     *metrics.Handle
}

// NewBackendService constructs a BackendService bound to cfg, fanning
// out via reg. sendTimeout is the poll interval used when the local
// write-queue is empty (backend.send_timeout_millis, exposed so the
// source's hard-coded ~20ms sleep is configurable).
func NewBackendService(cfg config.BackendConfig, tlsEnabled bool, reg *registry.Registry, handles *handle.Generator, logger log.Logger, m *metrics.Handle) *BackendService {
	return &BackendService{
		cfg:         cfg,
		tlsEnabled:  tlsEnabled,
		cap:         admission.NewCap(cfg.MaximumNumberOfSubscribers),
		registry:    reg,
		handles:     handles,
		sendTimeout: time.Duration(cfg.SendTimeoutMillis) * time.Millisecond,
		log:         logger,
		metrics:     m,
	}
}

// SubscriberCount reports the number of subscribers currently admitted.
func (b *BackendService) SubscriberCount() int64 {
	return b.cap.Count()
}

// Subscribe implements the server-streaming egress RPC.
func (b *BackendService) Subscribe(req *proxyv1.SubscriptionRequest, stream proxyv1.BackendService_SubscribeServer) error {
	ctx := stream.Context()

	if b.tlsEnabled && b.cfg.AccessToken != "" {
		if !admission.CheckToken(b.cfg.AccessToken, tokenFromContext(ctx)) {
			return status.Error(codes.Unauthenticated, "missing or invalid auth token")
		}
	}
	if !b.cap.TryAcquire() {
		return status.Error(codes.ResourceExhausted, "maximum number of subscribers reached")
	}
	if b.metrics != nil {
		defer func() { b.metrics.SubscriberCount.Set(float64(b.cap.Count())) }()
		b.metrics.SubscriberCount.Set(float64(b.cap.Count()))
	}
	defer b.cap.Release()

	h := b.handles.Next()
	if err := b.registry.Subscribe(h); err != nil {
		return status.Error(codes.Unavailable, "proxy is shutting down")
	}
	defer b.registry.Unsubscribe(h)

	writeQueue, err := packetstream.New(b.cfg.QueueCapacity, b.log)
	if err != nil {
		return status.Error(codes.Internal, "failed to size subscriber write queue")
	}

	var sent int64
	for {
		if ctx.Err() != nil {
			return status.FromContextError(ctx.Err()).Err()
		}

		packet, ok := writeQueue.TryDequeue()
		if !ok {
			drained, drainErr := b.registry.Drain(h, b.cfg.QueueCapacity)
			if drainErr != nil {
				return status.Error(codes.Internal, "subscriber handle vanished from registry")
			}
			for _, p := range drained {
				writeQueue.Enqueue(p)
			}
			packet, ok = writeQueue.TryDequeue()
		}

		if !ok {
			select {
			case <-ctx.Done():
				return status.FromContextError(ctx.Err()).Err()
			case <-time.After(b.sendTimeout):
			}
			continue
		}

		if err := stream.Send(packet); err != nil {
			if ctx.Err() != nil {
				return status.Error(codes.Canceled, "subscribe stream cancelled")
			}
			return status.Error(codes.Unknown, err.Error())
		}
		sent++
	}
}
