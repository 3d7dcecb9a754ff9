// Package grpcserver hosts the two gRPC listeners the proxy core drives
// through the proxy.Listener interface: the frontend (Publish + Health)
// and the backend (Subscribe + Health).
//
// Example:
//
//	front, _ := grpcserver.NewFrontend(cfg.Frontend, frontendSvc, health, logger)
//	back, _ := grpcserver.NewBackend(cfg.Backend, backendSvc, health, logger)
//	p, _ := proxy.New(cfg.Proxy, reg, detector, front, back, logger, m)
package grpcserver
