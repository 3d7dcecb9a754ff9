package packetstream

import (
	"errors"
	"sync"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
	"github.com/rzbill/seisproxy/pkg/log"
)

// ErrNonPositiveCapacity is returned by New when capacity is less than 1.
var ErrNonPositiveCapacity = errors.New("packetstream: capacity must be >= 1")

// Stream is a bounded FIFO of packets with a fixed capacity. It never
// blocks a producer: once full, Enqueue drops the oldest buffered packet
// to make room for the newest one.
//
// A subscriber's Stream is created for exactly the lifetime of one
// subscribe RPC and is owned exclusively by its entry in the
// subscription registry. The proxy core's ingress queue and each backend
// reactor's local write queue are Streams as well.
type Stream struct {
	log log.Logger

	mu       sync.Mutex
	buf      []*proxyv1.Packet
	capacity int
	head     int // index of the oldest buffered packet
	size     int // number of buffered packets, 0 <= size <= capacity
}

// New constructs a Stream with the given capacity. Capacity must be >= 1;
// this is the only failure mode, and it is rejected at construction
// rather than tolerated at runtime.
func New(capacity int, logger log.Logger) (*Stream, error) {
	if capacity < 1 {
		return nil, ErrNonPositiveCapacity
	}
	return &Stream{
		log:      logger,
		buf:      make([]*proxyv1.Packet, capacity),
		capacity: capacity,
	}, nil
}

// Enqueue pushes packet onto the stream. If the stream is at capacity,
// the oldest buffered packet is discarded first. Enqueue never blocks
// and never returns an error to the caller: a slow or stalled subscriber
// must not stall the producer side of the fan-out.
func (s *Stream) Enqueue(packet *proxyv1.Packet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.size >= s.capacity {
		if _, ok := s.popLocked(); !ok {
			if s.log != nil {
				s.log.Warn("packetstream: enqueue found a full stream but pop failed, dropping incoming packet")
			}
			return
		}
	}
	s.pushLocked(packet)
}

// TryDequeue returns the oldest buffered packet, or (nil, false) if the
// stream is empty. It never blocks.
func (s *Stream) TryDequeue() (*proxyv1.Packet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.popLocked()
}

// DrainUpTo pops up to max packets in FIFO order, for the registry's
// drain operation. It never blocks.
func (s *Stream) DrainUpTo(max int) []*proxyv1.Packet {
	if max <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*proxyv1.Packet, 0, min(max, s.size))
	for len(out) < max {
		p, ok := s.popLocked()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

// Len reports the current occupancy.
func (s *Stream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Capacity reports the configured capacity.
func (s *Stream) Capacity() int {
	return s.capacity
}

func (s *Stream) pushLocked(packet *proxyv1.Packet) {
	tail := (s.head + s.size) % s.capacity
	s.buf[tail] = packet
	s.size++
}

func (s *Stream) popLocked() (*proxyv1.Packet, bool) {
	if s.size == 0 {
		return nil, false
	}
	p := s.buf[s.head]
	s.buf[s.head] = nil
	s.head = (s.head + 1) % s.capacity
	s.size--
	return p, true
}
