package dedup

import (
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
)

// ErrNoBound is returned by New when neither a size nor a duration bound
// is configured; at least one is required.
var ErrNoBound = errors.New("dedup: at least one of size or duration bound is required")

// Detector is the duplicate detector (C3): a bounded set of recent
// packet fingerprints, combining a size bound (oldest fingerprint
// evicted first) with an optional time bound (fingerprints older than
// the configured duration evicted), the AND of whichever bounds are
// configured.
type Detector struct {
	cache *expirable.LRU[uint64, struct{}]
}

// New constructs a Detector. size <= 0 means no size bound (size-bounded
// eviction disabled); ttl <= 0 means no time bound. At least one must be
// positive.
func New(size int, ttl time.Duration) (*Detector, error) {
	if size <= 0 && ttl <= 0 {
		return nil, ErrNoBound
	}
	if size < 0 {
		size = 0
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Detector{cache: expirable.NewLRU[uint64, struct{}](size, nil, ttl)}, nil
}

// Allow reports whether packet has not been seen before (and records its
// fingerprint if so). A previously-seen fingerprint, not yet evicted by
// either bound, returns false.
//
// Peek is used rather than Get so that checking admission never
// refreshes an entry's recency: eviction order reflects insertion order,
// matching the oldest-fingerprint-evicted-first semantics. Unlike
// Contains, Peek treats an entry past its TTL as absent.
func (d *Detector) Allow(packet *proxyv1.Packet) bool {
	fp := Fingerprint(packet)
	if _, ok := d.cache.Peek(fp); ok {
		return false
	}
	d.cache.Add(fp, struct{}{})
	return true
}

// Len reports the number of fingerprints currently tracked.
func (d *Detector) Len() int {
	return d.cache.Len()
}
