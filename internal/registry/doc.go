// Package registry implements the subscription registry (C2): a
// single-mutex map from subscriber handle to an exclusively-owned
// packetstream.Stream, plus fan-out of admitted packets to every live
// subscriber.
//
// Fan-out is the hot path; a single mutex is used deliberately rather
// than a per-stream lock, since every fan-out already touches every
// entry and a per-stream lock would still need a stable snapshot of the
// entry set to iterate safely.
package registry
