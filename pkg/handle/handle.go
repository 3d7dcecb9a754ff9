package handle

import (
	"strconv"
	"sync/atomic"
)

// Handle is an opaque subscriber or publisher identity. The zero value is
// never issued by a Generator and can be used as a sentinel for "unset".
type Handle uint64

// String renders the handle for logging.
func (h Handle) String() string { return strconv.FormatUint(uint64(h), 10) }

// Generator produces strictly increasing Handles, starting at 1.
//
// The runtime gives one Generator to the backend reactor, which draws a
// Handle per subscribe call; Next is safe for concurrent use.
type Generator struct {
	next atomic.Uint64
}

// NewGenerator returns a Generator whose first Next() call yields Handle(1).
func NewGenerator() *Generator {
	return &Generator{}
}

// Next allocates and returns the next Handle. Never returns the zero value.
func (g *Generator) Next() Handle {
	return Handle(g.next.Add(1))
}
