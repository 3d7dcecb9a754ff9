package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Handle bundles every metric the proxy records. It is constructed once by
// the runtime and threaded into the reactors and the proxy core (pump)
// rather than referenced through a global.
type Handle struct {
	PacketsAdmitted  prometheus.Counter
	PacketsRejected  *prometheus.CounterVec
	PacketsDuplicate prometheus.Counter
	PacketsDropped   *prometheus.CounterVec
	FanOutDeliveries prometheus.Counter
	FanOutFailures   prometheus.Counter

	PublisherCount        prometheus.Gauge
	SubscriberCount       prometheus.Gauge
	IngressQueueDepth     prometheus.Gauge
	SubscriberQueueDepth  prometheus.Gauge
	DuplicateCacheEntries prometheus.Gauge
}

// New builds a Handle and registers every metric with reg. Passing a
// prometheus.NewRegistry() isolates tests from the default global registry;
// passing prometheus.DefaultRegisterer wires the process-wide /metrics
// endpoint.
func New(reg prometheus.Registerer) *Handle {
	h := &Handle{
		PacketsAdmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seisproxy",
			Subsystem: "frontend",
			Name:      "packets_admitted_total",
			Help:      "Packets accepted from publishers and enqueued onto the ingress queue.",
		}),
		PacketsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seisproxy",
			Subsystem: "frontend",
			Name:      "packets_rejected_total",
			Help:      "Packets rejected by the frontend, labeled by reason.",
		}, []string{"reason"}),
		PacketsDuplicate: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seisproxy",
			Subsystem: "dedup",
			Name:      "packets_duplicate_total",
			Help:      "Packets identified as duplicates and dropped before fan-out.",
		}),
		PacketsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seisproxy",
			Subsystem: "proxy",
			Name:      "packets_dropped_total",
			Help:      "Packets dropped due to a full bounded queue, labeled by queue.",
		}, []string{"queue"}),
		FanOutDeliveries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seisproxy",
			Subsystem: "registry",
			Name:      "fanout_deliveries_total",
			Help:      "Packets taken from the ingress queue and fanned out to the registry.",
		}),
		FanOutFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seisproxy",
			Subsystem: "registry",
			Name:      "fanout_failures_total",
			Help:      "Per-subscriber deliveries skipped because the subscriber's stream was full or closed.",
		}),
		PublisherCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seisproxy",
			Subsystem: "frontend",
			Name:      "publishers",
			Help:      "Currently connected publishers.",
		}),
		SubscriberCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seisproxy",
			Subsystem: "backend",
			Name:      "subscribers",
			Help:      "Currently connected subscribers.",
		}),
		IngressQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seisproxy",
			Subsystem: "proxy",
			Name:      "ingress_queue_depth",
			Help:      "Packets currently buffered in the proxy's ingress queue.",
		}),
		SubscriberQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seisproxy",
			Subsystem: "registry",
			Name:      "subscriber_queue_depth_total",
			Help:      "Sum of packets currently buffered across all subscriber streams.",
		}),
		DuplicateCacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seisproxy",
			Subsystem: "dedup",
			Name:      "cache_entries",
			Help:      "Fingerprints currently held by the duplicate detector.",
		}),
	}

	reg.MustRegister(
		h.PacketsAdmitted,
		h.PacketsRejected,
		h.PacketsDuplicate,
		h.PacketsDropped,
		h.FanOutDeliveries,
		h.FanOutFailures,
		h.PublisherCount,
		h.SubscriberCount,
		h.IngressQueueDepth,
		h.SubscriberQueueDepth,
		h.DuplicateCacheEntries,
	)
	return h
}

// NewUnregistered builds a Handle backed by its own private registry,
// useful in unit tests that only want to assert on counter values without
// touching the process-wide default registry.
func NewUnregistered() *Handle {
	return New(prometheus.NewRegistry())
}
