// Package dedup implements the duplicate detector (C3): a bounded set of
// recent packet fingerprints used as an optional ingress admission
// filter.
//
// A fingerprint identifies a packet by its stream identity and sample
// window, not its payload bytes, so that two transmissions of the same
// burst (e.g. from a publisher that was scaled up before its
// predecessor was purged) are recognized as duplicates without
// comparing payloads.
package dedup
