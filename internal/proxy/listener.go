package proxy

import "context"

// Listener is satisfied by internal/server/grpc.Server: a single gRPC
// listener that serves until its context is cancelled or ListenAndServe
// returns, and can also be stopped directly via Close.
type Listener interface {
	ListenAndServe(ctx context.Context, addr string) error
	Close()
}
