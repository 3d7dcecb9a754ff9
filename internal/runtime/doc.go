// Package runtime wires configuration, logging, metrics, and the proxy
// core into a single running instance. It exposes Open, Start and Close;
// Start binds the configured frontend and backend addresses itself.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(runtime.Options{Config: cfg, Logger: logger})
//	defer rt.Close()
//	g := rt.Start(ctx)
//	_ = g.Wait()
package runtime
