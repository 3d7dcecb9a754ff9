package serverrun

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"

	cfgpkg "github.com/rzbill/seisproxy/internal/config"
	"github.com/rzbill/seisproxy/internal/runtime"
	logpkg "github.com/rzbill/seisproxy/pkg/log"
)

func getenvDefault(key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

// small indirection over os.Getenv so tests can substitute it
var getenv = func(key string) string { return os.Getenv(key) }

// Options configures a Run invocation.
type Options struct {
	Config cfgpkg.Config
}

// Run opens the runtime, starts both gRPC listeners, and blocks until
// ctx is cancelled or a SIGINT/SIGTERM arrives, then sequences shutdown.
func Run(ctx context.Context, opts Options) error {
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := opts.Config

	var formatter logpkg.Formatter
	switch strings.ToLower(getenvDefault("SEISPROXY_LOG_FORMAT", "text")) {
	case "json":
		formatter = &logpkg.JSONFormatter{}
	default:
		formatter = &logpkg.TextFormatter{}
	}

	procLogger := logpkg.NewLogger(
		logpkg.WithLevel(cfg.General.LogLevel()),
		logpkg.WithFormatter(formatter),
	).With(logpkg.Component(cfg.General.ApplicationName))
	logpkg.RedirectStdLog(procLogger)

	procLogger.Info("starting seisproxy",
		logpkg.Str("frontend_addr", cfg.Frontend.Addr()),
		logpkg.Str("backend_addr", cfg.Backend.Addr()),
		logpkg.Str("max_message_size", humanize.Bytes(uint64(cfg.Frontend.MaximumMessageSizeBytes))),
		logpkg.Int("max_publishers", cfg.Frontend.MaximumNumberOfPublishers),
		logpkg.Int("max_subscribers", cfg.Backend.MaximumNumberOfSubscribers),
		logpkg.Str("ingress_queue_capacity", humanize.Comma(int64(cfg.Proxy.QueueCapacity))),
	)

	rt, err := runtime.Open(runtime.Options{Config: cfg, Logger: procLogger})
	if err != nil {
		return err
	}

	g := rt.Start(sctx)

	<-sctx.Done()
	procLogger.Info("shutdown signal received, draining")
	if err := rt.Close(); err != nil {
		procLogger.Error("runtime close failed", logpkg.Err(err))
	}
	return g.Wait()
}
