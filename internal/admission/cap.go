package admission

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Cap gates admission against a fixed maximum using a weighted
// semaphore rather than a hand-rolled atomic compare-and-swap loop: one
// unit of weight per admitted publisher or subscriber.
type Cap struct {
	sem     *semaphore.Weighted
	current atomic.Int64
}

// NewCap constructs a Cap admitting up to max concurrent holders. A
// non-positive max is treated as 1, so a misconfigured cap still
// rejects rather than admitting unboundedly.
func NewCap(max int) *Cap {
	if max <= 0 {
		max = 1
	}
	return &Cap{sem: semaphore.NewWeighted(int64(max))}
}

// TryAcquire admits one holder if the cap has not been reached,
// returning true on success. Never blocks: a cap at its limit is
// rejected immediately rather than waiting for a slot to free up.
func (c *Cap) TryAcquire() bool {
	if !c.sem.TryAcquire(1) {
		return false
	}
	c.current.Add(1)
	return true
}

// Release returns one holder's slot to the cap.
func (c *Cap) Release() {
	c.sem.Release(1)
	c.current.Add(-1)
}

// Count reports the current number of admitted holders.
func (c *Cap) Count() int64 {
	return c.current.Load()
}
