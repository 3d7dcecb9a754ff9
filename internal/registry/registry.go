package registry

import (
	"errors"
	"sync"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
	"github.com/rzbill/seisproxy/internal/packetstream"
	"github.com/rzbill/seisproxy/pkg/handle"
	"github.com/rzbill/seisproxy/pkg/log"
)

// ErrShutdown is returned by Subscribe once the registry has been shut down.
var ErrShutdown = errors.New("registry: shut down")

// ErrUnknownHandle is returned by Drain for a handle with no live stream.
var ErrUnknownHandle = errors.New("registry: unknown subscriber handle")

// Registry is the subscription registry (C2): a single mutex guarding a
// map from subscriber handle to an exclusively-owned packetstream.Stream.
type Registry struct {
	log            log.Logger
	streamCapacity int

	mu      sync.Mutex
	streams map[handle.Handle]*packetstream.Stream
	running bool
}

// New constructs a Registry whose streams are each created with
// streamCapacity (the configured backend.queue_capacity).
func New(streamCapacity int, logger log.Logger) *Registry {
	return &Registry{
		log:            logger,
		streamCapacity: streamCapacity,
		streams:        make(map[handle.Handle]*packetstream.Stream),
		running:        true,
	}
}

// Subscribe inserts a fresh stream for handle if one is not already
// present. Subscribe is idempotent: subscribing an already-registered
// handle is a no-op, not an error. Fails with ErrShutdown once Shutdown
// has been called.
func (r *Registry) Subscribe(h handle.Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return ErrShutdown
	}
	if _, ok := r.streams[h]; ok {
		return nil
	}
	s, err := packetstream.New(r.streamCapacity, r.log)
	if err != nil {
		return err
	}
	r.streams[h] = s
	return nil
}

// Unsubscribe removes and destroys the stream for handle. Unsubscribing
// an absent handle is a no-op, logged as a warning.
func (r *Registry) Unsubscribe(h handle.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.streams[h]; !ok {
		if r.log != nil {
			r.log.Warn("registry: unsubscribe of unknown handle", log.Str("handle", h.String()))
		}
		return
	}
	delete(r.streams, h)
}

// FanOut enqueues packet onto every live subscriber's stream, in
// iteration order under a single lock acquisition. A failure enqueuing
// to one stream is logged and does not abort delivery to the rest.
func (r *Registry) FanOut(packet *proxyv1.Packet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for h, s := range r.streams {
		r.enqueueOne(h, s, packet)
	}
}

func (r *Registry) enqueueOne(h handle.Handle, s *packetstream.Stream, packet *proxyv1.Packet) {
	defer func() {
		if rec := recover(); rec != nil && r.log != nil {
			r.log.Error("registry: panic delivering packet to subscriber, skipping",
				log.Str("handle", h.String()), log.Any("panic", rec))
		}
	}()
	s.Enqueue(packet)
}

// Drain pops up to max packets from handle's stream, in FIFO order.
// Fails with ErrUnknownHandle if handle has no live stream.
func (r *Registry) Drain(h handle.Handle, max int) ([]*proxyv1.Packet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.streams[h]
	if !ok {
		return nil, ErrUnknownHandle
	}
	return s.DrainUpTo(max), nil
}

// Count reports the current number of live subscribers.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.streams)
}

// Shutdown flips the running flag and clears every entry. Subsequent
// Subscribe calls fail with ErrShutdown.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	r.streams = make(map[handle.Handle]*packetstream.Stream)
}
