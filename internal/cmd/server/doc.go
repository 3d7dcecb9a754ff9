// Package serverrun exposes the shared Run entrypoint the CLI uses to
// start the proxy's frontend and backend gRPC listeners, handling
// lifecycle and shutdown.
//
// Example:
//
//	opts := serverrun.Options{Config: config.Default()}
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = serverrun.Run(ctx, opts)
package serverrun
