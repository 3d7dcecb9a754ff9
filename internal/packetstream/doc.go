// Package packetstream implements the bounded, drop-oldest-on-overflow
// FIFO that backs every subscriber in the fan-out registry.
//
// A Stream never blocks its producer: once full, Enqueue discards the
// oldest buffered packet to make room for the newest one, trading
// completeness for a subscriber that cannot stall the proxy.
package packetstream
