package runtime

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	cfgpkg "github.com/rzbill/seisproxy/internal/config"
	"github.com/rzbill/seisproxy/internal/dedup"
	"github.com/rzbill/seisproxy/internal/metrics"
	"github.com/rzbill/seisproxy/internal/proxy"
	"github.com/rzbill/seisproxy/internal/reactor"
	"github.com/rzbill/seisproxy/internal/registry"
	grpcserver "github.com/rzbill/seisproxy/internal/server/grpc"
	"github.com/rzbill/seisproxy/pkg/handle"
	"github.com/rzbill/seisproxy/pkg/log"
)

// Options for building the Runtime.
type Options struct {
	Config cfgpkg.Config
	Logger log.Logger
	// Registerer receives the runtime's Prometheus collectors. A nil
	// Registerer builds an unregistered metrics.Handle, useful for tests.
	Registerer prometheus.Registerer
}

// Runtime wires configuration, logging, metrics, and the proxy core
// (registry, duplicate detector, ingress pump, both gRPC listeners) for
// a single instance.
type Runtime struct {
	config  cfgpkg.Config
	log     log.Logger
	metrics *metrics.Handle
	proxy   *proxy.Proxy
}

// Open builds every component and wires them together, but does not bind
// any socket; call Start to begin serving.
func Open(opts Options) (*Runtime, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.NewLogger(log.WithLevel(log.InfoLevel), log.WithFormatter(&log.TextFormatter{}))
	}

	var m *metrics.Handle
	if opts.Registerer != nil {
		m = metrics.New(opts.Registerer)
	} else {
		m = metrics.NewUnregistered()
	}

	reg := registry.New(cfg.Backend.QueueCapacity, logger.With(log.Component("registry")))

	var detector *dedup.Detector
	if cfg.DuplicateDetector.CircularBufferSize > 0 || cfg.DuplicateDetector.CircularBufferDurationMillis > 0 {
		d, err := dedup.New(cfg.DuplicateDetector.CircularBufferSize, time.Duration(cfg.DuplicateDetector.CircularBufferDurationMillis)*time.Millisecond)
		if err != nil {
			return nil, err
		}
		detector = d
	}

	// The Proxy is the Submitter the frontend service needs, and the
	// frontend/backend gRPC services are the listeners the Proxy needs:
	// build the Proxy with its listeners unattached, wire the services
	// against it, then attach the listeners it drives.
	p, err := proxy.New(cfg.Proxy, reg, detector, nil, nil, logger.With(log.Component("proxy")), m)
	if err != nil {
		return nil, err
	}

	frontendSvc := reactor.NewFrontendService(cfg.Frontend, cfg.Frontend.TLSEnabled(), p, logger.With(log.Component("frontend")), m)
	backendSvc := reactor.NewBackendService(cfg.Backend, cfg.Backend.TLSEnabled(), reg, handle.NewGenerator(), logger.With(log.Component("backend")), m)
	health := grpcserver.NewHealthService(frontendSvc, backendSvc, p)

	frontendSrv, err := grpcserver.NewFrontend(cfg.Frontend, frontendSvc, health, logger.With(log.Component("frontend_server")))
	if err != nil {
		return nil, err
	}
	backendSrv, err := grpcserver.NewBackend(cfg.Backend, backendSvc, health, logger.With(log.Component("backend_server")))
	if err != nil {
		return nil, err
	}
	p.SetListeners(frontendSrv, backendSrv)

	return &Runtime{config: cfg, log: logger, metrics: m, proxy: p}, nil
}

// Start binds both gRPC listeners and launches the pump. The returned
// group's Wait blocks until both listeners return, which normally
// happens only once Close is called or ctx is cancelled.
func (r *Runtime) Start(ctx context.Context) *errgroup.Group {
	return r.proxy.Start(ctx, r.config.Frontend.Addr(), r.config.Backend.Addr())
}

// Close sequences the proxy core's shutdown.
func (r *Runtime) Close() error {
	r.proxy.Stop()
	return nil
}

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// Metrics exposes the runtime's metrics handle for tests and HTTP
// exposition wiring.
func (r *Runtime) Metrics() *metrics.Handle { return r.metrics }
