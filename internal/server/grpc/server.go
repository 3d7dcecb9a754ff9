package grpcserver

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
	"github.com/rzbill/seisproxy/internal/config"
	"github.com/rzbill/seisproxy/internal/reactor"
	"github.com/rzbill/seisproxy/pkg/log"
)

// Server owns a single gRPC server instance and its listener. The proxy
// core drives it through ListenAndServe/Close, satisfying
// internal/proxy.Listener.
type Server struct {
	grpc *grpc.Server
	lis  net.Listener
	log  log.Logger
}

// NewFrontend builds the publisher-facing server: FrontendService plus
// Health, bound with cfg's message-size limit and, when configured, TLS.
func NewFrontend(cfg config.FrontendConfig, svc *reactor.FrontendService, health proxyv1.HealthServiceServer, logger log.Logger) (*Server, error) {
	opts, err := serverOptions(cfg.TLSEnabled(), cfg.ServerCertificatePath, cfg.ServerKeyPath, cfg.MaximumMessageSizeBytes)
	if err != nil {
		return nil, fmt.Errorf("grpcserver: frontend tls: %w", err)
	}
	s := grpc.NewServer(opts...)
	proxyv1.RegisterFrontendServiceServer(s, svc)
	proxyv1.RegisterHealthServiceServer(s, health)
	return &Server{grpc: s, log: logger}, nil
}

// NewBackend builds the subscriber-facing server: BackendService plus
// Health, bound with TLS when configured.
func NewBackend(cfg config.BackendConfig, svc *reactor.BackendService, health proxyv1.HealthServiceServer, logger log.Logger) (*Server, error) {
	opts, err := serverOptions(cfg.TLSEnabled(), cfg.ServerCertificatePath, cfg.ServerKeyPath, 0)
	if err != nil {
		return nil, fmt.Errorf("grpcserver: backend tls: %w", err)
	}
	s := grpc.NewServer(opts...)
	proxyv1.RegisterBackendServiceServer(s, svc)
	proxyv1.RegisterHealthServiceServer(s, health)
	return &Server{grpc: s, log: logger}, nil
}

func serverOptions(tlsEnabled bool, certPath, keyPath string, maxRecvMsgSize int) ([]grpc.ServerOption, error) {
	var opts []grpc.ServerOption
	if maxRecvMsgSize > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(maxRecvMsgSize))
	}
	if tlsEnabled {
		creds, err := credentials.NewServerTLSFromFile(certPath, keyPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, grpc.Creds(creds))
	}
	return opts, nil
}

// ListenAndServe binds to addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.grpc.Serve(l) }()
	select {
	case <-ctx.Done():
		s.grpc.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// Close stops the server and closes the listener.
func (s *Server) Close() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	if s.lis != nil {
		_ = s.lis.Close()
	}
}
