package proxy

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
	"github.com/rzbill/seisproxy/internal/config"
	"github.com/rzbill/seisproxy/internal/dedup"
	"github.com/rzbill/seisproxy/internal/metrics"
	"github.com/rzbill/seisproxy/internal/packetstream"
	"github.com/rzbill/seisproxy/internal/registry"
	"github.com/rzbill/seisproxy/pkg/log"
)

// Proxy is the proxy core (C6): the shared ingress queue, the pump
// goroutine, and the lifecycle of the registry, duplicate detector, and
// both gRPC listeners.
type Proxy struct {
	cfg      config.ProxyConfig
	log      log.Logger
	metrics  *metrics.Handle
	registry *registry.Registry
	detector *dedup.Detector // nil when the duplicate detector is disabled
	ingress  *packetstream.Stream

	frontend Listener
	backend  Listener

	running  atomic.Bool
	pumpDone chan struct{}
	stopOnce sync.Once
}

// New constructs a Proxy. detector may be nil to disable duplicate
// filtering at ingress.
func New(cfg config.ProxyConfig, reg *registry.Registry, detector *dedup.Detector, frontend, backend Listener, logger log.Logger, m *metrics.Handle) (*Proxy, error) {
	ingress, err := packetstream.New(cfg.QueueCapacity, logger)
	if err != nil {
		return nil, err
	}
	return &Proxy{
		cfg:      cfg,
		log:      logger,
		metrics:  m,
		registry: reg,
		detector: detector,
		ingress:  ingress,
		frontend: frontend,
		backend:  backend,
	}, nil
}

// Submit hands packet to the ingress queue, applying the duplicate
// filter first when one is configured. It never blocks and never
// returns an error: a rejected duplicate (counted in PacketsDuplicate)
// and a full ingress queue (which drops its oldest packet, uncounted)
// are both silent outcomes, not failures visible to the caller.
func (p *Proxy) Submit(packet *proxyv1.Packet) {
	if p.detector != nil && !p.detector.Allow(packet) {
		if p.metrics != nil {
			p.metrics.PacketsDuplicate.Inc()
		}
		return
	}
	p.ingress.Enqueue(packet)
	if p.metrics != nil {
		p.metrics.IngressQueueDepth.Set(float64(p.ingress.Len()))
	}
}

// SetListeners attaches the frontend and backend listeners. Callers that
// must build the listeners' gRPC services after the Proxy itself exists
// (the services need the Proxy as their Submitter) construct the Proxy
// with nil listeners and call SetListeners once both are ready, before
// Start.
func (p *Proxy) SetListeners(frontend, backend Listener) {
	p.frontend = frontend
	p.backend = backend
}

// PumpRunning reports whether the pump goroutine is still draining the
// ingress queue.
func (p *Proxy) PumpRunning() bool {
	return p.running.Load()
}

// Start binds both listeners and launches the pump. The backend's
// listener goroutine is started before the frontend's, but the two bind
// concurrently: the frontend is not held back until the backend is
// bound, so it may begin accepting first. The returned group's Wait blocks until both
// listeners return, which normally happens only after Stop is called.
func (p *Proxy) Start(ctx context.Context, frontendAddr, backendAddr string) *errgroup.Group {
	p.running.Store(true)
	p.pumpDone = make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return p.backend.ListenAndServe(gctx, backendAddr) })
	g.Go(func() error { return p.frontend.ListenAndServe(gctx, frontendAddr) })

	go p.pump()
	return g
}

func (p *Proxy) pump() {
	defer close(p.pumpDone)
	interval := time.Duration(p.cfg.PumpIntervalMillis) * time.Millisecond
	for p.running.Load() {
		packet, ok := p.ingress.TryDequeue()
		if !ok {
			time.Sleep(interval)
			continue
		}
		p.registry.FanOut(packet)
		if p.metrics != nil {
			p.metrics.FanOutDeliveries.Inc()
			p.metrics.IngressQueueDepth.Set(float64(p.ingress.Len()))
		}
	}
}

// Stop sequences shutdown: stop the frontend first so producers fail
// over rather than stall, wait briefly, clear the running flag to stop
// the pump (clearing before joining it, unlike the source revision that
// joined first and could spin), wait briefly again to let subscribers
// drain, then stop the backend and the registry.
func (p *Proxy) Stop() {
	p.stopOnce.Do(func() {
		p.frontend.Close()
		time.Sleep(time.Duration(p.cfg.StopDrainMillis) * time.Millisecond)

		p.running.Store(false)
		if p.pumpDone != nil {
			<-p.pumpDone
		}

		time.Sleep(time.Duration(p.cfg.StopSettleMillis) * time.Millisecond)
		p.backend.Close()
		p.registry.Shutdown()
	})
}
