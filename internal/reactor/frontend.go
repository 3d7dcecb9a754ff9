package reactor

import (
	"context"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
	"github.com/rzbill/seisproxy/internal/admission"
	"github.com/rzbill/seisproxy/internal/config"
	"github.com/rzbill/seisproxy/internal/metrics"
	"github.com/rzbill/seisproxy/pkg/log"
)

// Submitter accepts an admitted, normalized packet onto the proxy
// ingress queue. It never blocks and never errors back to the caller.
type Submitter interface {
	Submit(packet *proxyv1.Packet)
}

// FrontendService implements proxyv1.FrontendServiceServer: one Publish
// call per publisher, driving the C4 state machine over that publisher's
// streamed packets.
type FrontendService struct {
	proxyv1.UnimplementedFrontendServiceServer

	cfg        config.FrontendConfig
	tlsEnabled bool
	cap        *admission.Cap
	proxy      Submitter
	log        log.Logger
	metrics    *metrics.Handle
}

// NewFrontendService constructs a FrontendService bound to cfg and
// backed by proxy for submission. tlsEnabled gates whether the
// configured access token is enforced, per the external-interfaces
// contract: token enforcement requires TLS.
func NewFrontendService(cfg config.FrontendConfig, tlsEnabled bool, proxy Submitter, logger log.Logger, m *metrics.Handle) *FrontendService {
	return &FrontendService{
		cfg:        cfg,
		tlsEnabled: tlsEnabled,
		cap:        admission.NewCap(cfg.MaximumNumberOfPublishers),
		proxy:      proxy,
		log:        logger,
		metrics:    m,
	}
}

// PublisherCount reports the number of publishers currently admitted.
func (f *FrontendService) PublisherCount() int64 {
	return f.cap.Count()
}

// Publish implements the client-streaming ingest RPC.
func (f *FrontendService) Publish(stream proxyv1.FrontendService_PublishServer) error {
	ctx := stream.Context()

	if f.tlsEnabled && f.cfg.AccessToken != "" {
		if !admission.CheckToken(f.cfg.AccessToken, tokenFromContext(ctx)) {
			return status.Error(codes.Unauthenticated, "missing or invalid auth token")
		}
	}
	if !f.cap.TryAcquire() {
		return status.Error(codes.ResourceExhausted, "maximum number of publishers reached")
	}
	if f.metrics != nil {
		defer func() { f.metrics.PublisherCount.Set(float64(f.cap.Count())) }()
	}
	defer f.cap.Release()
	if f.metrics != nil {
		f.metrics.PublisherCount.Set(float64(f.cap.Count()))
	}

	invalid := admission.NewInvalidCounter(f.cfg.MaximumNumberOfConsecutiveInvalidMessages)
	var total, rejected int64

	for {
		packet, err := stream.Recv()
		if err == io.EOF {
			return stream.SendAndClose(&proxyv1.PublishResponse{
				TotalPackets:    total,
				PacketsRejected: rejected,
			})
		}
		if err != nil {
			if ctx.Err() == context.Canceled {
				return status.Error(codes.Canceled, "publish stream cancelled")
			}
			return err
		}

		total++
		normalize(packet)
		if !validate(packet) {
			rejected++
			if f.metrics != nil {
				f.metrics.PacketsRejected.WithLabelValues("invalid").Inc()
			}
			if invalid.Increment() {
				return status.Error(codes.InvalidArgument, "too many consecutive invalid packets")
			}
			continue
		}
		invalid.Reset()
		if f.metrics != nil {
			f.metrics.PacketsAdmitted.Inc()
		}
		f.proxy.Submit(packet)
	}
}

func tokenFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(admission.AuthTokenHeader)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
